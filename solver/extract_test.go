package solver

import (
	"testing"

	"github.com/psyco6h7h-lab/BEE-sim-sub000/types"
)

func TestExtractEmpty(t *testing.T) {
	ex := Extract(types.NewGraph())
	if len(ex.Nodes) != 0 || len(ex.Endpoints) != 0 {
		t.Errorf("空图应产生空输出: %d 节点 %d 端点", len(ex.Nodes), len(ex.Endpoints))
	}
}

func TestExtractRounding(t *testing.T) {
	// 坐标四舍五入后相等的端子属于同一节点
	g := types.NewGraph()
	r1 := place(g, types.KindResistor, 0, 0, 99.6, 0.4, 10)
	r2 := place(g, types.KindResistor, 100.3, -0.2, 200, 0, 10)
	ex := Extract(g)
	if ex.Endpoints[r1.ID].B != ex.Endpoints[r2.ID].A {
		t.Errorf("四舍五入端子未归并: %v != %v", ex.Endpoints[r1.ID].B, ex.Endpoints[r2.ID].A)
	}
	if len(ex.Nodes) != 3 {
		t.Errorf("节点数量不正确: 期望 3, 实际 %d", len(ex.Nodes))
	}
}

func TestExtractWireFolding(t *testing.T) {
	// 导线两端折叠为同一节点,导线不出现在端点表中
	g := types.NewGraph()
	r1 := place(g, types.KindResistor, 0, 0, 100, 0, 10)
	wire := place(g, types.KindWire, 100, 0, 200, 0, 0)
	r2 := place(g, types.KindResistor, 200, 0, 300, 0, 10)
	ex := Extract(g)
	if _, ok := ex.Endpoints[wire.ID]; ok {
		t.Errorf("导线不应出现在端点表中")
	}
	if ex.Endpoints[r1.ID].B != ex.Endpoints[r2.ID].A {
		t.Errorf("导线未合并节点: %v != %v", ex.Endpoints[r1.ID].B, ex.Endpoints[r2.ID].A)
	}
}

func TestExtractWireChainDeterministic(t *testing.T) {
	// 导线链合并后的代表节点取字典序最小键,与发现顺序无关
	g := types.NewGraph()
	place(g, types.KindWire, 300, 0, 200, 0, 0)
	place(g, types.KindWire, 100, 0, 200, 0, 0)
	r := place(g, types.KindResistor, 300, 0, 300, 100, 10)
	ex := Extract(g)
	want := types.NodeKey{X: 100, Y: 0}
	if ex.Endpoints[r.ID].A != want {
		t.Errorf("代表节点不正确: 期望 %v, 实际 %v", want, ex.Endpoints[r.ID].A)
	}
}

func TestExtractSelfLoop(t *testing.T) {
	// 自环元件两端同节点,数据模型允许
	g := types.NewGraph()
	r := place(g, types.KindResistor, 0, 0, 0.2, -0.3, 10)
	ex := Extract(g)
	ep := ex.Endpoints[r.ID]
	if ep.A != ep.B {
		t.Errorf("自环端点应相同: %v %v", ep.A, ep.B)
	}
	if len(ex.Nodes) != 1 {
		t.Errorf("自环节点数量不正确: %d", len(ex.Nodes))
	}
}
