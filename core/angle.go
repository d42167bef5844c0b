package core

import "math"

// AngleDecimals 派生角度（如椭圆旋转角）保留的小数位数
const AngleDecimals = 6

const (
	DegToRad = math.Pi / 180.0
	RadToDeg = 180.0 / math.Pi
)

// RoundAngle 按 AngleDecimals 四舍五入
func RoundAngle(deg float64) float64 {
	p := math.Pow(10, AngleDecimals)
	return math.Round(deg*p) / p
}

// NormalizeAngle 把角度归一化到 [0, 360)
func NormalizeAngle(deg float64) float64 {
	a := math.Mod(deg, 360)
	if a < 0 {
		a += 360
	}
	return a
}
