package element

import "github.com/psyco6h7h-lab/BEE-sim-sub000/types"

// WireKind 定义元件
var WireKind = types.Register(types.KindWire, &Wire{&Config{name: "wire"}})

// Wire 导线
// 语义上等价于合并两端节点,提取阶段折叠进节点身份,
// 电阻模型仅在退化场合作为零电阻元件参与。
type Wire struct{ *Config }

// Resistance 近零正电阻
func (Wire) Resistance(comp *types.Component) float64 {
	return types.RShort
}
