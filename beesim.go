// Package beesim 电路构建器工作区。
// 把图的编辑操作翻译成求解事件:每次放置、移动、调值、
// 开关切换都推入事件面,订阅者收到带派生字段的新图。
package beesim

import (
	"fmt"
	"time"

	"github.com/psyco6h7h-lab/BEE-sim-sub000/event"
	"github.com/psyco6h7h-lab/BEE-sim-sub000/load"
	"github.com/psyco6h7h-lab/BEE-sim-sub000/solver"
	"github.com/psyco6h7h-lab/BEE-sim-sub000/types"
)

// Workspace 交互式电路构建器
type Workspace struct {
	graph   *types.Graph
	surface *event.Surface
}

// New 创建空工作区
// debounce ≤ 0 时滑杆事件使用默认合并窗口。
func New(debounce time.Duration) *Workspace {
	g := types.NewGraph()
	return &Workspace{
		graph:   g,
		surface: event.NewSurface(g, debounce),
	}
}

// Graph UI层所有的图
func (w *Workspace) Graph() *types.Graph { return w.graph }

// Surface 求解事件面,供渲染层订阅输出
func (w *Workspace) Surface() *event.Surface { return w.surface }

// Place 放置元件并触发结构事件
func (w *Workspace) Place(kind types.Kind, a, b types.Point, value float64) *types.Component {
	comp := w.graph.Add(types.NewComponent(kind, a, b, value))
	w.surface.Push(event.Event{Type: event.StructuralChange, Component: comp.ID})
	return comp
}

// Move 移动元件端子并触发结构事件
func (w *Workspace) Move(id types.ComponentID, a, b types.Point) error {
	comp, ok := w.graph.Get(id)
	if !ok {
		return fmt.Errorf("元件不存在: %s", id)
	}
	comp.Terminals[0], comp.Terminals[1] = a, b
	w.surface.Push(event.Event{Type: event.StructuralChange, Component: id})
	return nil
}

// Remove 删除元件并触发结构事件
func (w *Workspace) Remove(id types.ComponentID) error {
	if _, ok := w.graph.Get(id); !ok {
		return fmt.Errorf("元件不存在: %s", id)
	}
	w.graph.Remove(id)
	w.surface.Push(event.Event{Type: event.StructuralChange, Component: id})
	return nil
}

// SetValue 修改元件值并触发数值事件,连发经合并窗口
func (w *Workspace) SetValue(id types.ComponentID, value float64) error {
	comp, ok := w.graph.Get(id)
	if !ok {
		return fmt.Errorf("元件不存在: %s", id)
	}
	if value < 0 {
		return fmt.Errorf("元件值不得为负: %v", value)
	}
	comp.Value = value
	w.surface.Push(event.Event{Type: event.ValueChange, Component: id})
	return nil
}

// Toggle 切换开关状态并触发开关事件
func (w *Workspace) Toggle(id types.ComponentID) error {
	comp, ok := w.graph.Get(id)
	if !ok {
		return fmt.Errorf("元件不存在: %s", id)
	}
	if comp.Kind != types.KindSwitch {
		return fmt.Errorf("元件不是开关: %s", comp.Kind)
	}
	comp.SwitchClosed = !comp.SwitchClosed
	w.surface.Push(event.Event{Type: event.SwitchToggled, Component: id})
	return nil
}

// Solve 立即求解当前图
func (w *Workspace) Solve() solver.Result {
	return w.surface.Resolve()
}

// LoadFile 载入工作区文档,替换当前图并触发结构事件
func (w *Workspace) LoadFile(path string) error {
	g, err := load.Load(path)
	if err != nil {
		return err
	}
	w.graph = g
	w.surface.Replace(g)
	w.surface.Push(event.Event{Type: event.StructuralChange})
	return nil
}

// SaveFile 保存当前图到工作区文档
func (w *Workspace) SaveFile(path string) error {
	return load.Save(path, w.graph)
}
