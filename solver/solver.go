package solver

import "github.com/psyco6h7h-lab/BEE-sim-sub000/types"

// Result 一次求解的完整输出
type Result struct {
	Graph   *types.Graph  // 带派生字段的新图
	Summary types.Summary // 状态面板摘要
}

// Solve 求解电路
// 输入图按值语义处理:结构字段只读,派生字段写入返回的新图。
// 早退条件(图中无电池、任一开关断开)返回零状态输出与
// ITot=0、REq=+Inf 的摘要,不产生错误。
func Solve(g *types.Graph) Result {
	out := g.Clone()
	vsrc, hasBattery, allClosed := surveySources(out)
	if !hasBattery || !allClosed {
		ZeroState(out)
		return Result{Graph: out, Summary: types.InactiveSummary(vsrc)}
	}
	for _, comp := range out.Components {
		comp.ResetOutputs()
	}
	ex := Extract(out)
	topo := Classify(out, ex)
	red := Reduce(out, ex, topo)
	itot := Distribute(out, ex, topo, red, vsrc)
	PostPass(out)
	return Result{
		Graph: out,
		Summary: types.Summary{
			VSrc: vsrc,
			ITot: itot,
			REq:  red.REq,
			PTot: vsrc * itot,
		},
	}
}

// surveySources 源电压合计与早退条件检查
func surveySources(g *types.Graph) (vsrc float64, hasBattery, allClosed bool) {
	allClosed = true
	for _, comp := range g.Components {
		switch comp.Kind {
		case types.KindBattery:
			hasBattery = true
			vsrc += comp.Value
		case types.KindSwitch:
			if !comp.SwitchClosed {
				allClosed = false
			}
		}
	}
	if !hasBattery {
		vsrc = 0
	}
	return vsrc, hasBattery, allClosed
}
