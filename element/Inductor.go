package element

import "github.com/psyco6h7h-lab/BEE-sim-sub000/types"

// InductorKind 定义元件
var InductorKind = types.Register(types.KindInductor, &Inductor{&Config{name: "inductor"}})

// Inductor 电感
type Inductor struct{ *Config }

// Resistance 直流稳态下视为短路
func (Inductor) Resistance(comp *types.Component) float64 {
	return types.RShort
}
