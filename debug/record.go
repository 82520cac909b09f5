// Package debug 记录求解历史并以网页形式输出曲线与连接图,
// 同时承载求解指标。只消费求解输出,不参与求解本身。
package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/psyco6h7h-lab/BEE-sim-sub000/solver"
	"github.com/psyco6h7h-lab/BEE-sim-sub000/types"
)

// Record 记录历史状态
// 以求解序号为横轴累积每个元件的电压电流,并保存最近一次
// 提取的节点连接信息供连接图使用。
type Record struct {
	mu       sync.Mutex
	Labels   []string             // 元件标签列表
	Links    [][2]string          // 元件↔节点连接
	Seq      []int                // 求解序号列
	Voltage  map[string][]float64 // 电压列
	Current  map[string][]float64 // 电流列
	Summarys []types.Summary      // 摘要列
}

// NewRecord 初始化
func NewRecord() *Record {
	return &Record{
		Voltage: map[string][]float64{},
		Current: map[string][]float64{},
	}
}

// label 元件标签 "kind(id前8位)"
func label(comp *types.Component) string {
	id := string(comp.ID)
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("%s(%s)", comp.Kind, id)
}

// Update 记录一次求解
func (list *Record) Update(res solver.Result) {
	list.mu.Lock()
	defer list.mu.Unlock()
	g := res.Graph
	ex := solver.Extract(g)
	list.Labels = list.Labels[:0]
	list.Links = list.Links[:0]
	for _, id := range g.SortedIDs() {
		comp := g.Components[id]
		lb := label(comp)
		list.Labels = append(list.Labels, lb)
		if ep, ok := ex.Endpoints[id]; ok {
			list.Links = append(list.Links, [2]string{lb, nodeName(ep.A)})
			list.Links = append(list.Links, [2]string{lb, nodeName(ep.B)})
		}
		// 中途加入的元件补零对齐到当前序号,保持各列等长
		for len(list.Voltage[lb]) < len(list.Seq) {
			list.Voltage[lb] = append(list.Voltage[lb], 0)
		}
		for len(list.Current[lb]) < len(list.Seq) {
			list.Current[lb] = append(list.Current[lb], 0)
		}
		list.Voltage[lb] = append(list.Voltage[lb], comp.Voltage)
		list.Current[lb] = append(list.Current[lb], comp.Current)
	}
	list.Seq = append(list.Seq, len(list.Seq))
	list.Summarys = append(list.Summarys, res.Summary)
}

// nodeName 节点显示名称
func nodeName(n solver.NodeID) string {
	return fmt.Sprintf("Node(%d,%d)", n.X, n.Y)
}

// Render 格式化输出记录内容
func (list *Record) Render(w io.Writer) error {
	list.mu.Lock()
	defer list.mu.Unlock()
	return json.NewEncoder(w).Encode(struct {
		Labels   []string
		Links    [][2]string
		Seq      []int
		Voltage  map[string][]float64
		Current  map[string][]float64
		Summarys []types.Summary
	}{list.Labels, list.Links, list.Seq, list.Voltage, list.Current, list.Summarys})
}
