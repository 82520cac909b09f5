package element

import "github.com/psyco6h7h-lab/BEE-sim-sub000/types"

// ResistorKind 定义元件
var ResistorKind = types.Register(types.KindResistor, &Resistor{&Config{name: "resistor"}})

// Resistor 电阻
type Resistor struct{ *Config }

// Resistance 标称电阻值
func (Resistor) Resistance(comp *types.Component) float64 {
	return clampResistance(comp.Value)
}

// PostPass 过载判定
// 超过任一教学限值(功率0.25W/电流100mA/电压50V)即过载,
// 限值属于元件类型而非单个实例。
func (Resistor) PostPass(comp *types.Component) {
	power := comp.Current * comp.Current * clampResistance(comp.Value)
	comp.Overloaded = power > types.ResistorMaxPower ||
		comp.Current > types.ResistorMaxCurrent ||
		comp.Voltage > types.ResistorMaxVoltage
}
