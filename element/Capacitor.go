package element

import (
	"math"

	"github.com/psyco6h7h-lab/BEE-sim-sub000/types"
)

// CapacitorKind 定义元件
var CapacitorKind = types.Register(types.KindCapacitor, &Capacitor{Config: &Config{name: "capacitor"}, age: -1})

// Capacitor 电容
// 直流稳态下视为开路。age 为可选的伪时间充电近似:
// 置为非负秒数后电容电阻按 RC 曲线从短路爬升到开路,
// 用于演示充电过程;默认关闭,正确性不依赖该近似。
type Capacitor struct {
	*Config
	age float64 // 模拟充电时长(s),负值表示关闭
}

// SetAge 设置伪时间充电时长,负值关闭近似
func SetAge(age float64) {
	capModel := types.KindCapacitor.Model().(*Capacitor)
	capModel.age = age
}

// Resistance 稳态开路电阻,可选按充电时长缩放
func (c *Capacitor) Resistance(comp *types.Component) float64 {
	if c.age < 0 {
		return types.ROpen
	}
	// 教学时间常数: τ = 100·C,避免法拉级以下电容瞬间充满
	tau := 100 * clampResistance(comp.Value)
	ramp := 1 - math.Exp(-c.age/tau)
	return clampResistance(types.RShort + (types.ROpen-types.RShort)*ramp)
}

// PostPass 电荷量 Q = C·V
func (c *Capacitor) PostPass(comp *types.Component) {
	comp.Charge = comp.Value * comp.Voltage
}
