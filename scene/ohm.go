// Package scene 提供四个公式实验场景(欧姆/基尔霍夫/变压器)的计算部分。
// 这些场景只是教科书公式的消费者,不调用电路构建器的求解器,
// 也不属于求解核心;动画与界面由外部协作方承担。
package scene

import "fmt"

// OhmResult 欧姆定律实验结果
type OhmResult struct {
	Voltage    float64 // 电压(V)
	Current    float64 // 电流(A)
	Resistance float64 // 电阻(Ω)
	Power      float64 // 功率(W)
}

// OhmFromVR 由电压电阻求电流 I = V/R
func OhmFromVR(voltage, resistance float64) (OhmResult, error) {
	if resistance <= 0 {
		return OhmResult{}, fmt.Errorf("电阻必须为正: %v", resistance)
	}
	current := voltage / resistance
	return ohmResult(voltage, current, resistance), nil
}

// OhmFromVI 由电压电流求电阻 R = V/I
func OhmFromVI(voltage, current float64) (OhmResult, error) {
	if current == 0 {
		return OhmResult{}, fmt.Errorf("电流不得为零")
	}
	return ohmResult(voltage, current, voltage/current), nil
}

// OhmFromIR 由电流电阻求电压 V = I·R
func OhmFromIR(current, resistance float64) (OhmResult, error) {
	if resistance <= 0 {
		return OhmResult{}, fmt.Errorf("电阻必须为正: %v", resistance)
	}
	return ohmResult(current*resistance, current, resistance), nil
}

func ohmResult(v, i, r float64) OhmResult {
	return OhmResult{Voltage: v, Current: i, Resistance: r, Power: v * i}
}
