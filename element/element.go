// Package element 以查表方式实现七种元件的直流行为。
// 每个元件一个文件,通过包级变量在 types 注册表中登记,
// 与元件相关的直流电阻模型和显示量后处理都收拢在各自文件内。
package element

import (
	"math"

	"github.com/psyco6h7h-lab/BEE-sim-sub000/types"
)

// Config 元件静态配置
// 配置在注册时初始化,整个生命周期保持不变。
type Config struct {
	name string // 文档中使用的标识符
}

// Name 元件名称
func (c *Config) Name() string { return c.name }

// PostPass 显示量后处理(空实现)
// 具体元件类型通过重写该方法实现自定义显示行为。
func (*Config) PostPass(comp *types.Component) {}

// clampResistance 将电阻限制在有限带内,避免除零与NaN
func clampResistance(r float64) float64 {
	switch {
	case math.IsNaN(r), r < types.RShort:
		return types.RShort
	case r > types.ROpen:
		return types.ROpen
	}
	return r
}
