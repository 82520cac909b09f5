package solver

import (
	"sort"

	"github.com/psyco6h7h-lab/BEE-sim-sub000/types"
)

// Topology 拓扑分类结果
// 各组互不相交;元件同时满足两类时并联成员身份优先。
type Topology struct {
	Series         map[types.ComponentID]struct{} // 串联链成员
	ParallelGroups [][]types.ComponentID          // 并联束列表
}

// nodePair 无序节点对
type nodePair struct {
	Lo NodeID
	Hi NodeID
}

func makePair(ep Endpoints) nodePair {
	if ep.B.Less(ep.A) {
		return nodePair{Lo: ep.B, Hi: ep.A}
	}
	return nodePair{Lo: ep.A, Hi: ep.B}
}

// Classify 启发式拓扑分类
// 共享两端节点的两个以上非电源元件构成一个并联束
// (度数大于2的节点必然由此产生分支),其余非电源、非导线
// 元件默认归入串联链。该启发式面向单电池教学电路,
// 桥式/多回路网络会被误分类,未分组元件退化为串联处理。
func Classify(g *types.Graph, ex *Extraction) *Topology {
	topo := &Topology{Series: map[types.ComponentID]struct{}{}}
	groups := map[nodePair][]types.ComponentID{}
	for _, id := range g.SortedIDs() {
		comp := g.Components[id]
		ep, ok := ex.Endpoints[id]
		if !ok || comp.Kind == types.KindBattery {
			continue
		}
		if ep.A == ep.B {
			// 自环按短路的串联成员处理
			topo.Series[id] = struct{}{}
			continue
		}
		groups[makePair(ep)] = append(groups[makePair(ep)], id)
	}
	pairs := make([]nodePair, 0, len(groups))
	for pair := range groups {
		pairs = append(pairs, pair)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Lo != pairs[j].Lo {
			return pairs[i].Lo.Less(pairs[j].Lo)
		}
		return pairs[i].Hi.Less(pairs[j].Hi)
	})
	for _, pair := range pairs {
		members := groups[pair]
		if len(members) >= 2 {
			sort.Slice(members, func(i, j int) bool { return members[i] < members[j] })
			topo.ParallelGroups = append(topo.ParallelGroups, members)
			continue
		}
		for _, id := range members {
			topo.Series[id] = struct{}{}
		}
	}
	return topo
}

// InParallel 元件是否属于某个并联束
func (topo *Topology) InParallel(id types.ComponentID) bool {
	for _, group := range topo.ParallelGroups {
		for _, member := range group {
			if member == id {
				return true
			}
		}
	}
	return false
}
