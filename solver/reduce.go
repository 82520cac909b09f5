package solver

import (
	"math"

	"github.com/psyco6h7h-lab/BEE-sim-sub000/types"
)

// Bundle 并联束归约结果
type Bundle struct {
	Members []types.ComponentID // 束内成员
	REq     float64             // 束等效电阻
}

// Reduction 等效电阻归约结果
type Reduction struct {
	REq     float64  // 电池两端总等效电阻
	Bundles []Bundle // 各并联束的归约
}

// memberResistance 单个元件进入归约的电阻
// 自环按短路、悬空端子按开路处理;其余取类型表中的直流模型,
// 并夹在有限带内避免除零与NaN。
func memberResistance(g *types.Graph, ex *Extraction, id types.ComponentID) float64 {
	comp := g.Components[id]
	ep := ex.Endpoints[id]
	if ep.A == ep.B {
		return types.RShort
	}
	if len(ex.Incident[ep.A]) < 2 || len(ex.Incident[ep.B]) < 2 {
		return types.ROpen
	}
	r := comp.Kind.Model().Resistance(comp)
	switch {
	case math.IsNaN(r), r < types.RShort:
		return types.RShort
	case r > types.ROpen:
		return types.ROpen
	}
	return r
}

// reduceBundle 并联束等效电阻
// 倒数和的倒数;任一成员电阻落入零支配带时整束视为零电阻。
func reduceBundle(g *types.Graph, ex *Extraction, members []types.ComponentID) float64 {
	recip := 0.0
	for _, id := range members {
		r := memberResistance(g, ex, id)
		if r <= types.ZeroDomBand {
			return types.RShort
		}
		recip += 1 / r
	}
	if recip <= 0 {
		return types.ROpen
	}
	return 1 / recip
}

// Reduce 计算电池两端的标量等效电阻
// 串联链成员电阻求和,并联束先各自归约再计入总和,
// 电池贡献内阻。早退条件(无电池/开关断开)由 Solve 在此之前判定。
func Reduce(g *types.Graph, ex *Extraction, topo *Topology) *Reduction {
	red := &Reduction{}
	total := 0.0
	for _, id := range g.SortedIDs() {
		comp := g.Components[id]
		if comp.Kind == types.KindBattery {
			total += types.RBattery
			continue
		}
		if _, ok := topo.Series[id]; ok {
			total += memberResistance(g, ex, id)
		}
	}
	for _, members := range topo.ParallelGroups {
		bundle := Bundle{
			Members: members,
			REq:     reduceBundle(g, ex, members),
		}
		red.Bundles = append(red.Bundles, bundle)
		total += bundle.REq
	}
	switch {
	case total < types.RShort:
		total = types.RShort
	case total > types.ROpen:
		total = types.ROpen
	}
	red.REq = total
	return red
}
