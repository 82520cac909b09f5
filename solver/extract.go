// Package solver 实现电路构建器的稳态求解流水线:
// 节点提取 → 拓扑分类 → 等效电阻归约 → 电流电压分配 → 显示量后处理。
// 求解是同步纯函数,输入图不被修改,输出为带派生字段的新图。
package solver

import (
	"github.com/psyco6h7h-lab/BEE-sim-sub000/types"

	// 触发元件类型注册
	_ "github.com/psyco6h7h-lab/BEE-sim-sub000/element"
)

// NodeID 节点标识,取合并后等价类中字典序最小的节点键作为代表
type NodeID = types.NodeKey

// Endpoints 元件两端所属节点
type Endpoints struct {
	A NodeID // 端子a所属节点
	B NodeID // 端子b所属节点
}

// Extraction 节点提取结果
// 导线折叠进节点身份:提取完成后导线两端共享同一节点,
// Endpoints 仅覆盖非导线元件。
type Extraction struct {
	Nodes     map[NodeID]struct{}                // 节点集合
	Endpoints map[types.ComponentID]Endpoints    // 非导线元件端点
	Incident  map[NodeID][]types.ComponentID     // 节点关联的非导线元件
}

// Extract 提取节点
// 端子按四舍五入后的整数坐标归并;导线通过并查集合并其两端,
// 代表节点取键字典序最小者,与发现顺序无关。空图产生空输出。
func Extract(g *types.Graph) *Extraction {
	uf := newUnionFind()
	for _, comp := range g.Components {
		uf.add(comp.Terminals[0].Key())
		uf.add(comp.Terminals[1].Key())
		if comp.Kind == types.KindWire {
			uf.union(comp.Terminals[0].Key(), comp.Terminals[1].Key())
		}
	}
	ex := &Extraction{
		Nodes:     map[NodeID]struct{}{},
		Endpoints: map[types.ComponentID]Endpoints{},
		Incident:  map[NodeID][]types.ComponentID{},
	}
	for _, id := range g.SortedIDs() {
		comp := g.Components[id]
		if comp.Kind == types.KindWire {
			continue
		}
		ep := Endpoints{
			A: uf.find(comp.Terminals[0].Key()),
			B: uf.find(comp.Terminals[1].Key()),
		}
		ex.Endpoints[id] = ep
		ex.Nodes[ep.A] = struct{}{}
		ex.Nodes[ep.B] = struct{}{}
		ex.Incident[ep.A] = append(ex.Incident[ep.A], id)
		if ep.B != ep.A {
			ex.Incident[ep.B] = append(ex.Incident[ep.B], id)
		}
	}
	return ex
}

// unionFind 节点键并查集
// 合并时保留字典序较小的键作为根,保证代表节点确定。
type unionFind struct {
	parent map[types.NodeKey]types.NodeKey
}

func newUnionFind() *unionFind {
	return &unionFind{parent: map[types.NodeKey]types.NodeKey{}}
}

func (uf *unionFind) add(k types.NodeKey) {
	if _, ok := uf.parent[k]; !ok {
		uf.parent[k] = k
	}
}

func (uf *unionFind) find(k types.NodeKey) types.NodeKey {
	uf.add(k)
	root := k
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	// 路径压缩
	for uf.parent[k] != root {
		k, uf.parent[k] = uf.parent[k], root
	}
	return root
}

func (uf *unionFind) union(a, b types.NodeKey) {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return
	}
	if rb.Less(ra) {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
}
