package element

import "github.com/psyco6h7h-lab/BEE-sim-sub000/types"

// SwitchKind 定义元件
var SwitchKind = types.Register(types.KindSwitch, &Switch{&Config{name: "switch"}})

// Switch 开关
type Switch struct{ *Config }

// Resistance 导通/关断电阻
func (Switch) Resistance(comp *types.Component) float64 {
	if comp.SwitchClosed {
		return types.RShort // 导通状态
	}
	return types.ROpen // 关断状态
}

// PostPass 拨杆角度,闭合 0° 断开 45°
func (Switch) PostPass(comp *types.Component) {
	if comp.SwitchClosed {
		comp.LeverAngleDeg = types.LeverClosedDeg
	} else {
		comp.LeverAngleDeg = types.LeverOpenDeg
	}
}
