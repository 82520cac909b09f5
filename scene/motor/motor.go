// Package motor 提供电机实验场景的直流稳态模型。
package motor

import (
	"fmt"
	"math"
)

// MotorType 电机类型
type MotorType uint

const (
	ShuntMotor  MotorType = iota // 并励直流电机
	SeriesMotor                  // 串励直流电机
)

// String 电机类型名称
func (t MotorType) String() string {
	switch t {
	case ShuntMotor:
		return "shunt"
	case SeriesMotor:
		return "series"
	}
	return "unknown"
}

// Params 电机稳态参数
type Params struct {
	Voltage     float64 // 端电压(V)
	ArmatureRes float64 // 电枢电阻(Ω)
	FieldRes    float64 // 励磁绕组电阻(Ω),串励时与电枢串联
	KEmf        float64 // 反电动势常数(V·s/rad)
	KTorque     float64 // 转矩常数(N·m/A)
	LoadTorque  float64 // 负载转矩(N·m)
}

// State 电机稳态结果
type State struct {
	Current  float64 // 电枢电流(A)
	BackEMF  float64 // 反电动势(V)
	SpeedRad float64 // 角速度(rad/s)
	SpeedRPM float64 // 转速(RPM)
	Torque   float64 // 输出转矩(N·m)
	PowerIn  float64 // 输入功率(W)
	PowerOut float64 // 输出机械功率(W)
}

// SteadyState 直流电机稳态工作点
// 并励: T = kT·I ⇒ I = T/kT, E = V − I·Ra, ω = E/kE。
// 串励: 磁通正比于电流, T = kT·I² ⇒ I = √(T/kT),
// E = V − I(Ra+Rf), ω = E/(kE·I)。
// 反电动势为负表示负载超出电机能力(堵转),返回错误。
func (t MotorType) SteadyState(p Params) (State, error) {
	if p.ArmatureRes <= 0 || p.KEmf <= 0 || p.KTorque <= 0 {
		return State{}, fmt.Errorf("电机参数必须为正: %+v", p)
	}
	if p.LoadTorque <= 0 {
		return State{}, fmt.Errorf("负载转矩必须为正: %v", p.LoadTorque)
	}
	var st State
	switch t {
	case ShuntMotor:
		st.Current = p.LoadTorque / p.KTorque
		st.BackEMF = p.Voltage - st.Current*p.ArmatureRes
		if st.BackEMF <= 0 {
			return State{}, fmt.Errorf("负载超出电机能力(堵转): E=%v", st.BackEMF)
		}
		st.SpeedRad = st.BackEMF / p.KEmf
	case SeriesMotor:
		st.Current = math.Sqrt(p.LoadTorque / p.KTorque)
		st.BackEMF = p.Voltage - st.Current*(p.ArmatureRes+p.FieldRes)
		if st.BackEMF <= 0 {
			return State{}, fmt.Errorf("负载超出电机能力(堵转): E=%v", st.BackEMF)
		}
		st.SpeedRad = st.BackEMF / (p.KEmf * st.Current)
	default:
		return State{}, fmt.Errorf("未知电机类型: %d", t)
	}
	st.SpeedRPM = st.SpeedRad * 60 / (2 * math.Pi)
	st.Torque = p.LoadTorque
	st.PowerIn = p.Voltage * st.Current
	st.PowerOut = st.Torque * st.SpeedRad
	return st, nil
}
