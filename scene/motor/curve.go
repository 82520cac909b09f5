package motor

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// CurvePoint 转矩-转速曲线上的一点
type CurvePoint struct {
	Torque   float64 // 负载转矩(N·m)
	SpeedRPM float64 // 对应稳态转速(RPM)
	Current  float64 // 对应电枢电流(A)
}

// TorqueSpeedCurve 扫描负载转矩得到转矩-转速特性
// 从minT到maxT均匀取steps个点,跳过堵转区间的点。
func (t MotorType) TorqueSpeedCurve(p Params, minT, maxT float64, steps int) ([]CurvePoint, error) {
	if steps < 2 {
		return nil, fmt.Errorf("采样点数过少: %d", steps)
	}
	if minT <= 0 || maxT <= minT {
		return nil, fmt.Errorf("转矩区间非法: [%v,%v]", minT, maxT)
	}
	step := (maxT - minT) / float64(steps-1)
	pts := make([]CurvePoint, 0, steps)
	for i := 0; i < steps; i++ {
		p.LoadTorque = minT + float64(i)*step
		st, err := t.SteadyState(p)
		if err != nil {
			continue
		}
		pts = append(pts, CurvePoint{Torque: p.LoadTorque, SpeedRPM: st.SpeedRPM, Current: st.Current})
	}
	if len(pts) == 0 {
		return nil, fmt.Errorf("区间内全部堵转")
	}
	return pts, nil
}

// RenderCurve 将转矩-转速曲线渲染为PNG文件
func (t MotorType) RenderCurve(p Params, minT, maxT float64, steps int, path string) error {
	pts, err := t.TorqueSpeedCurve(p, minT, maxT, steps)
	if err != nil {
		return err
	}
	xys := make(plotter.XYs, len(pts))
	for i, cp := range pts {
		xys[i].X = cp.Torque
		xys[i].Y = cp.SpeedRPM
	}
	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("%s motor torque-speed", t)
	pl.X.Label.Text = "Torque (N·m)"
	pl.Y.Label.Text = "Speed (RPM)"
	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("曲线构造失败: %w", err)
	}
	pl.Add(line, plotter.NewGrid())
	return pl.Save(6*vg.Inch, 4*vg.Inch, path)
}
