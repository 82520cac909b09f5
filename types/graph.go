package types

import "sort"

// Graph 元件集合
// 无序集合,结构字段归UI层所有;求解器按值语义接收并返回新图。
type Graph struct {
	Components map[ComponentID]*Component // 元件列表
}

// NewGraph 创建空图
func NewGraph() *Graph {
	return &Graph{Components: map[ComponentID]*Component{}}
}

// Add 添加元件
func (g *Graph) Add(comp *Component) *Component {
	g.Components[comp.ID] = comp
	return comp
}

// Get 获取元件
func (g *Graph) Get(id ComponentID) (*Component, bool) {
	comp, ok := g.Components[id]
	return comp, ok
}

// Remove 删除元件
func (g *Graph) Remove(id ComponentID) {
	delete(g.Components, id)
}

// Len 元件数量
func (g *Graph) Len() int { return len(g.Components) }

// Clone 深拷贝整个图
func (g *Graph) Clone() *Graph {
	out := NewGraph()
	for id, comp := range g.Components {
		out.Components[id] = comp.Clone()
	}
	return out
}

// SortedIDs 按ID排序的元件列表,用于确定性遍历与导出
func (g *Graph) SortedIDs() []ComponentID {
	ids := make([]ComponentID, 0, len(g.Components))
	for id := range g.Components {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
