package solver

import "github.com/psyco6h7h-lab/BEE-sim-sub000/types"

// PostPass 显示量后处理
// 分配完成后执行一次,把原始电流电压翻译为各类型的显示字段:
// 灯泡亮度、电阻过载、电容电荷、开关拨杆角度。
func PostPass(g *types.Graph) {
	for _, comp := range g.Components {
		if model := comp.Kind.Model(); model != nil {
			model.PostPass(comp)
		}
	}
}

// ZeroState 零状态输出
// 早退(无电池/开关断开)时所有元件电流电压清零,
// 再跑一遍后处理:亮度归零、过载复位,开关拨杆角度
// 仍按 SwitchClosed 给出。
func ZeroState(g *types.Graph) {
	for _, comp := range g.Components {
		comp.ResetOutputs()
	}
	PostPass(g)
}
