package scene

import "fmt"

// TransformerInput 理想变压器实验参数
type TransformerInput struct {
	PrimaryVoltage float64 // 初级电压(V)
	PrimaryTurns   float64 // 初级匝数
	SecondaryTurns float64 // 次级匝数
	LoadResistance float64 // 次级负载(Ω),0表示空载
}

// TransformerResult 理想变压器实验结果
type TransformerResult struct {
	Ratio             float64 // 匝数比 N1/N2
	SecondaryVoltage  float64 // 次级电压(V)
	SecondaryCurrent  float64 // 次级电流(A)
	PrimaryCurrent    float64 // 初级电流(A)
	ReflectedLoad     float64 // 折算到初级的负载(Ω)
	PowerTransferred  float64 // 传输功率(W)
	StepUp            bool    // 是否升压
}

// SolveTransformer 理想变压器稳态关系
// V2 = V1·N2/N1;负载存在时 I2 = V2/RL, I1 = I2·N2/N1,
// 折算负载 RL' = RL·(N1/N2)²;理想模型功率守恒。
func SolveTransformer(in TransformerInput) (TransformerResult, error) {
	if in.PrimaryTurns <= 0 || in.SecondaryTurns <= 0 {
		return TransformerResult{}, fmt.Errorf("匝数必须为正: %+v", in)
	}
	if in.LoadResistance < 0 {
		return TransformerResult{}, fmt.Errorf("负载不得为负: %v", in.LoadResistance)
	}
	ratio := in.PrimaryTurns / in.SecondaryTurns
	out := TransformerResult{
		Ratio:            ratio,
		SecondaryVoltage: in.PrimaryVoltage / ratio,
		StepUp:           in.SecondaryTurns > in.PrimaryTurns,
	}
	if in.LoadResistance > 0 {
		out.SecondaryCurrent = out.SecondaryVoltage / in.LoadResistance
		out.PrimaryCurrent = out.SecondaryCurrent / ratio
		out.ReflectedLoad = in.LoadResistance * ratio * ratio
		out.PowerTransferred = out.SecondaryVoltage * out.SecondaryCurrent
	}
	return out, nil
}

// SecondaryInductance 次级电感 L2 = L1·(N2/N1)²
func SecondaryInductance(primary, primaryTurns, secondaryTurns float64) float64 {
	if primaryTurns <= 0 {
		return 0
	}
	n := secondaryTurns / primaryTurns
	return primary * n * n
}
