package types

import "math"

// Summary 求解摘要,供状态面板使用
// 电路不活动时以 ITot=0 且 REq=+Inf 表达,不产生错误。
type Summary struct {
	VSrc float64 // 总源电压(V)
	ITot float64 // 回路电流(A)
	REq  float64 // 总等效电阻(Ω)
	PTot float64 // 总功率(W)
}

// InactiveSummary 不活动电路的摘要
func InactiveSummary(vsrc float64) Summary {
	return Summary{VSrc: vsrc, ITot: 0, REq: math.Inf(1), PTot: 0}
}

// Active 电路是否活动
func (s Summary) Active() bool {
	return !math.IsInf(s.REq, 1)
}
