package scene

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// KirchhoffInput 基尔霍夫实验的两回路电路
// 左回路含电压源V1与电阻R1,右回路含电压源V2与电阻R2,
// 公共支路为R3;两个网孔电流均取顺时针方向。
type KirchhoffInput struct {
	V1 float64 // 左回路电压源(V)
	V2 float64 // 右回路电压源(V)
	R1 float64 // 左回路电阻(Ω)
	R2 float64 // 右回路电阻(Ω)
	R3 float64 // 公共支路电阻(Ω)
}

// KirchhoffResult 两回路求解结果
type KirchhoffResult struct {
	Mesh1  float64 // 左网孔电流(A)
	Mesh2  float64 // 右网孔电流(A)
	I1     float64 // R1支路电流(A)
	I2     float64 // R2支路电流(A)
	I3     float64 // 公共支路电流(A),方向为两网孔电流之差
	VDrop1 float64 // R1压降(V)
	VDrop2 float64 // R2压降(V)
	VDrop3 float64 // R3压降(V)
}

// SolveKirchhoff 网孔分析求解两回路电路
// KVL方程组:
//
//	V1 = i1(R1+R3) − i2·R3
//	−V2 = −i1·R3 + i2(R2+R3)
func SolveKirchhoff(in KirchhoffInput) (KirchhoffResult, error) {
	if in.R1 <= 0 || in.R2 <= 0 || in.R3 <= 0 {
		return KirchhoffResult{}, fmt.Errorf("电阻必须为正: %+v", in)
	}
	a := mat.NewDense(2, 2, []float64{
		in.R1 + in.R3, -in.R3,
		-in.R3, in.R2 + in.R3,
	})
	b := mat.NewVecDense(2, []float64{in.V1, -in.V2})
	var x mat.VecDense
	if err := x.SolveVec(a, b); err != nil {
		return KirchhoffResult{}, fmt.Errorf("网孔方程求解失败: %w", err)
	}
	i1, i2 := x.AtVec(0), x.AtVec(1)
	return KirchhoffResult{
		Mesh1:  i1,
		Mesh2:  i2,
		I1:     i1,
		I2:     i2,
		I3:     i1 - i2,
		VDrop1: i1 * in.R1,
		VDrop2: i2 * in.R2,
		VDrop3: (i1 - i2) * in.R3,
	}, nil
}
