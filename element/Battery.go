package element

import "github.com/psyco6h7h-lab/BEE-sim-sub000/types"

// BatteryKind 定义元件
var BatteryKind = types.Register(types.KindBattery, &Battery{&Config{name: "battery"}})

// Battery 电池
type Battery struct{ *Config }

// Resistance 电池内阻
// 电池在串联求和中只贡献内阻,端电压由分配器直接写入。
func (Battery) Resistance(comp *types.Component) float64 {
	return types.RBattery
}
