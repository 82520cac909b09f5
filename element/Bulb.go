package element

import "github.com/psyco6h7h-lab/BEE-sim-sub000/types"

// BulbKind 定义元件
var BulbKind = types.Register(types.KindBulb, &Bulb{&Config{name: "bulb"}})

// Bulb 灯泡
type Bulb struct{ *Config }

// Resistance 灯丝电阻值
func (Bulb) Resistance(comp *types.Component) float64 {
	return clampResistance(comp.Value)
}

// PostPass 亮度计算
// 耗散功率 P = I²R,亮度为 P 与额定功率(6W)之比并截断到 [0,1];
// 电流不超过 10mA 时视觉上熄灭,亮度强制为 0。
func (Bulb) PostPass(comp *types.Component) {
	if comp.Current <= types.BulbOffCurrent {
		comp.Brightness = 0
		return
	}
	power := comp.Current * comp.Current * clampResistance(comp.Value)
	ratio := power / types.BulbRatedPower
	switch {
	case ratio < 0:
		ratio = 0
	case ratio > 1:
		ratio = 1
	}
	comp.Brightness = ratio
}
