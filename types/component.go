package types

import (
	"math"

	"github.com/google/uuid"
)

// ComponentID 元件唯一标识
type ComponentID string

// NewComponentID 生成元件标识
func NewComponentID() ComponentID {
	return ComponentID(uuid.NewString())
}

// Point 工作区坐标
type Point struct {
	X float64 // 横坐标
	Y float64 // 纵坐标
}

// NodeKey 节点键,端子坐标四舍五入到整数网格
// 两个端子键相等即属于同一节点,节点除此键外没有独立身份。
type NodeKey struct {
	X int
	Y int
}

// Key 端子坐标对应的节点键
func (p Point) Key() NodeKey {
	return NodeKey{X: int(math.Round(p.X)), Y: int(math.Round(p.Y))}
}

// Less 节点键字典序,用于确定性选取代表节点
func (k NodeKey) Less(o NodeKey) bool {
	if k.Y != o.Y {
		return k.Y < o.Y
	}
	return k.X < o.X
}

// Component 工作区上放置的电路元件
// 结构字段由UI层创建与修改,求解器只写入派生输出字段。
type Component struct {
	ID           ComponentID // 元件ID
	Kind         Kind        // 元件类型
	Terminals    [2]Point    // 端子坐标(有序对,连接位置)
	Value        float64     // 元件值: 电池→伏特 电阻/灯泡→欧姆 电容→法拉 电感→亨利
	SwitchClosed bool        // 开关状态(仅开关,初始为闭合)

	// 派生输出字段,由求解器写入,渲染层读取
	Current       float64 // 电流(A),a→b方向为正
	Voltage       float64 // 电压降(V),从a到b
	Brightness    float64 // 灯泡亮度 [0,1]
	Overloaded    bool    // 电阻过载
	Charge        float64 // 电容电荷(C)
	LeverAngleDeg float64 // 开关拨杆角度
}

// NewComponent 创建元件
func NewComponent(kind Kind, a, b Point, value float64) *Component {
	return &Component{
		ID:           NewComponentID(),
		Kind:         kind,
		Terminals:    [2]Point{a, b},
		Value:        value,
		SwitchClosed: kind == KindSwitch, // 开关初始为闭合
	}
}

// Clone 复制元件
func (c *Component) Clone() *Component {
	cp := *c
	return &cp
}

// Animated 电流是否达到动画门限
// 渲染层据此决定是否播放电流动画,悬空或近零电流不播放。
func (c *Component) Animated() bool {
	return c.Current > CurrentEps
}

// ResetOutputs 派生输出字段清零
func (c *Component) ResetOutputs() {
	c.Current = 0
	c.Voltage = 0
	c.Brightness = 0
	c.Overloaded = false
	c.Charge = 0
	c.LeverAngleDeg = 0
}
