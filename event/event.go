// Package event 实现求解器的事件面。
// UI事件流形成全序,每个事件触发一次求解;滑杆连发事件经
// 去抖合并,只需反映最新输入的输出。求解同步完成,新事件
// 自然取代尚未反映的旧结果,不需要显式取消。
package event

import (
	"sync"
	"time"

	"github.com/bep/debounce"

	"github.com/psyco6h7h-lab/BEE-sim-sub000/debug"
	"github.com/psyco6h7h-lab/BEE-sim-sub000/solver"
	"github.com/psyco6h7h-lab/BEE-sim-sub000/types"
)

// Type 注册的事件类型标记
type Type uint8

// 求解器接受的输入事件类型
const (
	StructuralChange Type = iota + 1 // 结构变化(添加/删除/拖动端子/导线增减)
	ValueChange                      // 数值变化(滑杆移动)
	SwitchToggled                    // 开关切换
)

// String 事件类型名称
func (t Type) String() string {
	switch t {
	case StructuralChange:
		return "structural-change"
	case ValueChange:
		return "value-change"
	case SwitchToggled:
		return "switch-toggled"
	}
	return "unknown"
}

// Event 输入事件
type Event struct {
	Type      Type              // 事件类型
	Component types.ComponentID // 相关元件,可为空
}

// DefaultDebounce 滑杆事件合并窗口
const DefaultDebounce = 50 * time.Millisecond

// Surface 求解事件面
// 持有UI层图的只读引用,事件到达时克隆求解并把新图与摘要
// 推送给订阅者;输入图从不被原地修改,也不发布部分结果。
// 数值事件在推送线程上先克隆快照,合并窗口在计时器线程
// 求解的是快照而非活动图,与UI线程的后续写入互不接触。
type Surface struct {
	mu        sync.Mutex
	graph     *types.Graph          // UI层所有的图
	pending   *types.Graph          // 最近一次数值事件的快照
	subs      []func(solver.Result) // 订阅者
	debounced func(func())          // 滑杆事件合并
	last      solver.Result         // 最近一次输出
	solved    bool
}

// NewSurface 创建事件面
// interval ≤ 0 时使用默认合并窗口。
func NewSurface(g *types.Graph, interval time.Duration) *Surface {
	if interval <= 0 {
		interval = DefaultDebounce
	}
	return &Surface{
		graph:     g,
		debounced: debounce.New(interval),
	}
}

// Replace 替换整个输入图(载入文档),订阅者保持不变
func (s *Surface) Replace(g *types.Graph) {
	s.mu.Lock()
	s.graph = g
	s.mu.Unlock()
}

// Subscribe 注册输出订阅者(渲染层)
func (s *Surface) Subscribe(fn func(solver.Result)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Push 接收输入事件
// 结构变化与开关切换立即求解;数值变化在推送线程上克隆快照
// 后进入合并窗口,窗口内的连发只保留最新快照、只产生一次输出。
func (s *Surface) Push(ev Event) {
	switch ev.Type {
	case ValueChange:
		debug.EventsCoalesced.Inc()
		s.mu.Lock()
		s.pending = s.graph.Clone()
		s.mu.Unlock()
		s.debounced(s.resolvePending)
	default:
		s.Resolve()
	}
}

// resolvePending 合并窗口到期,求解最新的数值事件快照
// 在计时器线程执行,只接触快照,不读活动图。
func (s *Surface) resolvePending() {
	s.mu.Lock()
	snap := s.pending
	s.pending = nil
	s.mu.Unlock()
	if snap == nil {
		return
	}
	s.publish(snap)
}

// Resolve 立即执行一次求解并发布结果
// 活动图已包含未到期快照中的数值,丢弃快照保持最新优先。
func (s *Surface) Resolve() solver.Result {
	s.mu.Lock()
	g := s.graph
	s.pending = nil
	s.mu.Unlock()
	return s.publish(g)
}

// publish 求解给定的图并把结果推送给订阅者
func (s *Surface) publish(g *types.Graph) solver.Result {
	s.mu.Lock()
	start := time.Now()
	res := solver.Solve(g)
	debug.SolvesTotal.Inc()
	debug.SolveDuration.Observe(float64(time.Since(start).Microseconds()))
	s.last = res
	s.solved = true
	subs := make([]func(solver.Result), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()
	for _, fn := range subs {
		fn(res)
	}
	return res
}

// Last 最近一次输出
func (s *Surface) Last() (solver.Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last, s.solved
}
