package solver

import (
	"math"
	"testing"

	"github.com/psyco6h7h-lab/BEE-sim-sub000/types"
)

func pt(x, y float64) types.Point { return types.Point{X: x, Y: y} }

func place(g *types.Graph, kind types.Kind, ax, ay, bx, by, value float64) *types.Component {
	return g.Add(types.NewComponent(kind, pt(ax, ay), pt(bx, by), value))
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// simpleLamp 电池12V—闭合开关—灯泡10Ω—导线回到电池
func simpleLamp() *types.Graph {
	g := types.NewGraph()
	place(g, types.KindBattery, 0, 0, 0, 100, 12)
	place(g, types.KindSwitch, 0, 100, 100, 100, 0)
	place(g, types.KindBulb, 100, 100, 100, 0, 10)
	place(g, types.KindWire, 100, 0, 0, 0, 0)
	return g
}

func TestSimpleLamp(t *testing.T) {
	g := simpleLamp()
	res := Solve(g)
	if abs(res.Summary.ITot-1.2) > 0.01 {
		t.Errorf("回路电流不正确: 期望 1.2, 实际 %v", res.Summary.ITot)
	}
	var bulb *types.Component
	for _, comp := range res.Graph.Components {
		if comp.Kind == types.KindBulb {
			bulb = comp
		}
	}
	if abs(bulb.Voltage-12) > 0.05 {
		t.Errorf("灯泡电压不正确: 期望 12, 实际 %v", bulb.Voltage)
	}
	if bulb.Brightness != 1 {
		t.Errorf("灯泡亮度不正确: 期望 1, 实际 %v", bulb.Brightness)
	}
	if !bulb.Animated() {
		t.Errorf("回路电流应达到动画门限: %v", bulb.Current)
	}
	if abs(res.Summary.VSrc-12) > 1e-9 {
		t.Errorf("源电压不正确: 期望 12, 实际 %v", res.Summary.VSrc)
	}
}

func TestOpenSwitch(t *testing.T) {
	g := simpleLamp()
	for _, comp := range g.Components {
		if comp.Kind == types.KindSwitch {
			comp.SwitchClosed = false
		}
	}
	res := Solve(g)
	if res.Summary.Active() {
		t.Fatalf("断开开关后电路仍然活动: REq=%v", res.Summary.REq)
	}
	if res.Summary.ITot != 0 {
		t.Errorf("断开开关后电流不为零: %v", res.Summary.ITot)
	}
	for _, comp := range res.Graph.Components {
		if comp.Current != 0 || comp.Voltage != 0 {
			t.Errorf("零状态输出字段未清零: %s I=%v V=%v", comp.Kind, comp.Current, comp.Voltage)
		}
		if comp.Kind == types.KindBulb && comp.Brightness != 0 {
			t.Errorf("零状态灯泡亮度不为零: %v", comp.Brightness)
		}
		if comp.Kind == types.KindSwitch && comp.LeverAngleDeg != types.LeverOpenDeg {
			t.Errorf("断开开关拨杆角度不正确: 期望 45, 实际 %v", comp.LeverAngleDeg)
		}
	}
}

func TestResistorOverload(t *testing.T) {
	// 电池24V—闭合开关—灯泡10Ω—电阻5Ω—回路
	g := types.NewGraph()
	place(g, types.KindBattery, 0, 0, 0, 100, 24)
	place(g, types.KindSwitch, 0, 100, 100, 100, 0)
	place(g, types.KindBulb, 100, 100, 100, 50, 10)
	resistor := place(g, types.KindResistor, 100, 50, 100, 0, 5)
	place(g, types.KindWire, 100, 0, 0, 0, 0)
	res := Solve(g)
	if abs(res.Summary.ITot-1.6) > 0.01 {
		t.Errorf("回路电流不正确: 期望 1.6, 实际 %v", res.Summary.ITot)
	}
	out := res.Graph.Components[resistor.ID]
	if !out.Overloaded {
		t.Errorf("电阻应过载: P=%v W", out.Current*out.Current*5)
	}
}

func TestTwoResistorsParallel(t *testing.T) {
	// 电池12V,两个10Ω电阻并联,无串联负载
	g := types.NewGraph()
	place(g, types.KindBattery, 0, 0, 0, 100, 12)
	r1 := place(g, types.KindResistor, 0, 100, 0, 0, 10)
	r2 := place(g, types.KindResistor, 0, 100, 0, 0, 10)
	res := Solve(g)
	if abs(res.Summary.REq-5) > 0.01 {
		t.Errorf("等效电阻不正确: 期望 5, 实际 %v", res.Summary.REq)
	}
	if abs(res.Summary.ITot-2.4) > 0.01 {
		t.Errorf("回路电流不正确: 期望 2.4, 实际 %v", res.Summary.ITot)
	}
	for _, id := range []types.ComponentID{r1.ID, r2.ID} {
		out := res.Graph.Components[id]
		if abs(out.Voltage-12) > 0.05 {
			t.Errorf("并联电阻电压不正确: 期望 12, 实际 %v", out.Voltage)
		}
		if abs(out.Current-1.2) > 0.01 {
			t.Errorf("并联电阻电流不正确: 期望 1.2, 实际 %v", out.Current)
		}
	}
}

func TestSeriesPlusParallel(t *testing.T) {
	// 电池12V—电阻2Ω—(10Ω ∥ 10Ω)—回路
	g := types.NewGraph()
	place(g, types.KindBattery, 0, 0, 0, 100, 12)
	series := place(g, types.KindResistor, 0, 100, 50, 100, 2)
	p1 := place(g, types.KindResistor, 50, 100, 50, 0, 10)
	p2 := place(g, types.KindResistor, 50, 100, 50, 0, 10)
	place(g, types.KindWire, 50, 0, 0, 0, 0)
	res := Solve(g)
	if abs(res.Summary.REq-7) > 0.01 {
		t.Errorf("等效电阻不正确: 期望 7, 实际 %v", res.Summary.REq)
	}
	if abs(res.Summary.ITot-12.0/7.0) > 0.01 {
		t.Errorf("回路电流不正确: 期望 %v, 实际 %v", 12.0/7.0, res.Summary.ITot)
	}
	sOut := res.Graph.Components[series.ID]
	if abs(sOut.Current-res.Summary.ITot) > 1e-9 {
		t.Errorf("串联电阻电流应等于回路电流: %v != %v", sOut.Current, res.Summary.ITot)
	}
	for _, id := range []types.ComponentID{p1.ID, p2.ID} {
		out := res.Graph.Components[id]
		if abs(out.Voltage-8.571) > 0.05 {
			t.Errorf("并联成员电压不正确: 期望 8.571, 实际 %v", out.Voltage)
		}
		if abs(out.Current-0.857) > 0.01 {
			t.Errorf("并联成员电流不正确: 期望 0.857, 实际 %v", out.Current)
		}
	}
}

func TestNoBattery(t *testing.T) {
	// 只有灯泡和导线
	g := types.NewGraph()
	place(g, types.KindBulb, 0, 0, 100, 0, 10)
	place(g, types.KindWire, 100, 0, 0, 0, 0)
	res := Solve(g)
	if res.Summary.Active() {
		t.Fatalf("无电池电路不应活动: REq=%v", res.Summary.REq)
	}
	if res.Summary.VSrc != 0 || res.Summary.ITot != 0 || res.Summary.PTot != 0 {
		t.Errorf("无电池摘要不正确: %+v", res.Summary)
	}
	for _, comp := range res.Graph.Components {
		if comp.Current != 0 || comp.Brightness != 0 {
			t.Errorf("零状态元件字段未清零: %+v", comp)
		}
	}
}

func TestParallelSelfHalves(t *testing.T) {
	// 同一对节点间重复放置的电阻使有效电阻减半
	single := types.NewGraph()
	place(single, types.KindBattery, 0, 0, 0, 100, 12)
	place(single, types.KindResistor, 0, 100, 0, 0, 10)
	dup := types.NewGraph()
	place(dup, types.KindBattery, 0, 0, 0, 100, 12)
	place(dup, types.KindResistor, 0, 100, 0, 0, 10)
	place(dup, types.KindResistor, 0, 100, 0, 0, 10)
	rSingle := Solve(single).Summary.REq
	rDup := Solve(dup).Summary.REq
	if abs(rDup-rSingle/2) > 0.05 {
		t.Errorf("重复元件未使电阻减半: 单个 %v, 重复 %v", rSingle, rDup)
	}
}

func TestClosedSwitchShortsResistor(t *testing.T) {
	// 闭合开关与电阻并联:束电流走开关,电阻电流近零
	g := types.NewGraph()
	place(g, types.KindBattery, 0, 0, 0, 100, 12)
	resistor := place(g, types.KindResistor, 0, 100, 0, 0, 10)
	sw := place(g, types.KindSwitch, 0, 100, 0, 0, 0)
	res := Solve(g)
	rOut := res.Graph.Components[resistor.ID]
	swOut := res.Graph.Components[sw.ID]
	if rOut.Current > 0.01 {
		t.Errorf("被短路电阻电流应近零: %v", rOut.Current)
	}
	if abs(swOut.Current-res.Summary.ITot) > res.Summary.ITot*0.01 {
		t.Errorf("束电流应流经开关: 开关 %v, 回路 %v", swOut.Current, res.Summary.ITot)
	}
}

func TestIdempotence(t *testing.T) {
	first := Solve(simpleLamp())
	second := Solve(first.Graph)
	for id, a := range first.Graph.Components {
		b := second.Graph.Components[id]
		if abs(a.Current-b.Current) > 1e-12 || abs(a.Voltage-b.Voltage) > 1e-12 ||
			abs(a.Brightness-b.Brightness) > 1e-12 || a.Overloaded != b.Overloaded ||
			abs(a.Charge-b.Charge) > 1e-12 || a.LeverAngleDeg != b.LeverAngleDeg {
			t.Errorf("重复求解派生字段不一致: %s %+v != %+v", a.Kind, a, b)
		}
	}
	if first.Summary != second.Summary {
		t.Errorf("重复求解摘要不一致: %+v != %+v", first.Summary, second.Summary)
	}
}

func TestOhmLawPerMember(t *testing.T) {
	// 不在并联束内的纯电阻成员满足 |V − I·R| ≤ ε
	g := types.NewGraph()
	place(g, types.KindBattery, 0, 0, 0, 100, 24)
	place(g, types.KindResistor, 0, 100, 50, 100, 4)
	place(g, types.KindBulb, 50, 100, 50, 0, 8)
	place(g, types.KindWire, 50, 0, 0, 0, 0)
	res := Solve(g)
	for _, comp := range res.Graph.Components {
		if comp.Kind != types.KindResistor && comp.Kind != types.KindBulb {
			continue
		}
		if diff := abs(comp.Voltage - comp.Current*comp.Value); diff > 1e-6 {
			t.Errorf("欧姆定律不成立: %s |V−IR|=%v", comp.Kind, diff)
		}
	}
}

func TestKirchhoffVoltageSum(t *testing.T) {
	// 串联链各成员压降之和(含并联束一次)等于电池电压
	g := types.NewGraph()
	place(g, types.KindBattery, 0, 0, 0, 100, 12)
	place(g, types.KindResistor, 0, 100, 50, 100, 2)
	place(g, types.KindResistor, 50, 100, 50, 0, 10)
	place(g, types.KindResistor, 50, 100, 50, 0, 10)
	place(g, types.KindWire, 50, 0, 0, 0, 0)
	res := Solve(g)
	ex := Extract(res.Graph)
	topo := Classify(res.Graph, ex)
	sum := 0.0
	for id := range topo.Series {
		sum += res.Graph.Components[id].Voltage
	}
	for _, group := range topo.ParallelGroups {
		sum += res.Graph.Components[group[0]].Voltage
	}
	if abs(sum-12) > 0.05 {
		t.Errorf("基尔霍夫电压和不正确: 期望 12, 实际 %v", sum)
	}
}

func TestKirchhoffCurrentAgree(t *testing.T) {
	// 正幅值约定下串联成员两侧电流一致
	g := simpleLamp()
	res := Solve(g)
	itot := res.Summary.ITot
	for _, comp := range res.Graph.Components {
		if comp.Kind == types.KindBattery || comp.Kind == types.KindWire {
			continue
		}
		if abs(comp.Current-itot) > 1e-9 {
			t.Errorf("串联成员电流不一致: %s %v != %v", comp.Kind, comp.Current, itot)
		}
	}
}

func TestOutputRanges(t *testing.T) {
	res := Solve(simpleLamp())
	for _, comp := range res.Graph.Components {
		if comp.Brightness < 0 || comp.Brightness > 1 {
			t.Errorf("亮度超出范围: %v", comp.Brightness)
		}
		if comp.LeverAngleDeg != types.LeverClosedDeg && comp.LeverAngleDeg != types.LeverOpenDeg {
			t.Errorf("拨杆角度超出取值: %v", comp.LeverAngleDeg)
		}
	}
}

func TestDanglingTerminal(t *testing.T) {
	// 悬空端子按开路处理,电流近零
	g := types.NewGraph()
	place(g, types.KindBattery, 0, 0, 0, 100, 12)
	place(g, types.KindResistor, 0, 100, 50, 100, 10)
	res := Solve(g)
	if res.Summary.ITot > 1e-6 {
		t.Errorf("悬空电路电流应近零: %v", res.Summary.ITot)
	}
	for _, comp := range res.Graph.Components {
		if comp.Animated() {
			t.Errorf("悬空电路不应播放电流动画: %s I=%v", comp.Kind, comp.Current)
		}
	}
}

func TestCapacitorOpenAndCharge(t *testing.T) {
	// 电容稳态开路:回路电流近零,电容电压接近源电压,电荷 Q=C·V
	g := types.NewGraph()
	place(g, types.KindBattery, 0, 0, 0, 100, 12)
	place(g, types.KindResistor, 0, 100, 50, 100, 10)
	capComp := place(g, types.KindCapacitor, 50, 100, 50, 0, 0.001)
	place(g, types.KindWire, 50, 0, 0, 0, 0)
	res := Solve(g)
	if res.Summary.ITot > 1e-6 {
		t.Errorf("电容稳态回路电流应近零: %v", res.Summary.ITot)
	}
	out := res.Graph.Components[capComp.ID]
	if abs(out.Voltage-12) > 0.1 {
		t.Errorf("电容电压不正确: 期望 ≈12, 实际 %v", out.Voltage)
	}
	if abs(out.Charge-0.001*out.Voltage) > 1e-12 {
		t.Errorf("电容电荷不正确: 期望 %v, 实际 %v", 0.001*out.Voltage, out.Charge)
	}
}

func TestInputGraphNotMutated(t *testing.T) {
	g := simpleLamp()
	Solve(g)
	for _, comp := range g.Components {
		if comp.Current != 0 || comp.Voltage != 0 || comp.Brightness != 0 {
			t.Errorf("求解修改了输入图: %+v", comp)
		}
	}
}

func TestEmptyGraph(t *testing.T) {
	res := Solve(types.NewGraph())
	if res.Summary.Active() || !math.IsInf(res.Summary.REq, 1) {
		t.Errorf("空图摘要不正确: %+v", res.Summary)
	}
	if res.Graph.Len() != 0 {
		t.Errorf("空图输出应为空: %d", res.Graph.Len())
	}
}
