package solver

import "github.com/psyco6h7h-lab/BEE-sim-sub000/types"

// Distribute 按欧姆定律与基尔霍夫定律分配电流电压
// 纯函数:同一 (图,拓扑,归约,源电压) 输入重复执行结果一致。
// 当前约定全部输出为正幅值,不跟踪参考方向。
func Distribute(g *types.Graph, ex *Extraction, topo *Topology, red *Reduction, vsrc float64) float64 {
	itot := vsrc / red.REq
	for _, comp := range g.Components {
		switch comp.Kind {
		case types.KindBattery:
			comp.Current = itot
			comp.Voltage = comp.Value
		case types.KindWire:
			comp.Current = itot
			comp.Voltage = 0
		default:
			if _, ok := topo.Series[comp.ID]; ok {
				comp.Current = itot
				comp.Voltage = itot * memberResistance(g, ex, comp.ID)
			}
		}
	}
	// 并联束成员共享束电压 V = I_tot·R_bundle
	for _, bundle := range red.Bundles {
		vb := itot * bundle.REq
		for _, id := range bundle.Members {
			comp := g.Components[id]
			comp.Voltage = vb
			comp.Current = vb / memberResistance(g, ex, id)
		}
	}
	return itot
}
