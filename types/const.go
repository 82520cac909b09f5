package types

// 电阻模型常量定义
// 取值保证不为零且开路/短路与有限电阻之间至少相差六个数量级,
// 使开路与短路在串并联合成中占据支配地位。
const (
	RShort   = 1e-6 // 短路电阻(导线/闭合开关/电感稳态)
	ROpen    = 1e12 // 开路电阻(电容稳态/断开开关/悬空引脚)
	RBattery = 1e-3 // 电池内阻
)

// 显示量常量定义
const (
	BulbRatedPower     = 6.0  // 灯泡额定功率(W)
	BulbOffCurrent     = 1e-2 // 灯泡熄灭电流阈值(A)
	ResistorMaxPower   = 0.25 // 电阻过载功率上限(W)
	ResistorMaxCurrent = 0.1  // 电阻过载电流上限(A)
	ResistorMaxVoltage = 50.0 // 电阻过载电压上限(V)
	LeverClosedDeg     = 0.0  // 开关闭合时拨杆角度
	LeverOpenDeg       = 45.0 // 开关断开时拨杆角度
)

// 求解参数常量定义
const (
	CurrentEps  = 1e-6 // 电流动画门限(A),低于此值渲染层不播放电流动画
	ZeroDomBand = 1e-5 // 并联束零支配判定带
)
