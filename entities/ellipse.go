package entities

import (
	"math"

	"github.com/yk35/netDXF/core"
)

// Ellipse 椭圆（弧）。Center 为世界坐标；Rotation 是长轴在实体坐标系中的角度（度）。
type Ellipse struct {
	BaseEntity
	Center     core.Point
	MajorAxis  float64 // 长轴全长
	MinorAxis  float64 // 短轴全长
	Rotation   float64
	StartAngle float64
	EndAngle   float64
}

func init() {
	Register("ELLIPSE", decodeWith(func() *Ellipse { return &Ellipse{BaseEntity: newBase("ELLIPSE")} }))
}

func (e *Ellipse) Kind() Kind { return KindEllipse }

// IsFull 是否为完整椭圆
func (e *Ellipse) IsFull() bool {
	return e.StartAngle == 0 && e.EndAngle == 360
}

func (e *Ellipse) Parse(s *Session) error {
	var (
		axis       core.Point // 长轴端点，相对圆心，世界坐标
		ratio      float64
		start, end = 0.0, 2 * math.Pi
	)
	err := s.walk(&e.BaseEntity, func(t core.Tag) error {
		switch t.Code {
		case 10:
			e.Center.X = t.AsFloat()
		case 20:
			e.Center.Y = t.AsFloat()
		case 30:
			e.Center.Z = t.AsFloat()
		case 11:
			axis.X = t.AsFloat()
		case 21:
			axis.Y = t.AsFloat()
		case 31:
			axis.Z = t.AsFloat()
		case 40:
			ratio = t.AsFloat()
		case 41:
			start = t.AsFloat()
		case 42:
			end = t.AsFloat()
		}
		return nil
	})
	if err != nil {
		return err
	}

	e.setAxis(core.WCSToOCS(axis, e.Normal).XY(), ratio)
	e.StartAngle, e.EndAngle = parametricAngles(start, end, ratio)
	return nil
}

// setAxis 由实体坐标系中的长轴向量计算轴长和旋转角
func (e *Ellipse) setAxis(axis core.Point2, ratio float64) {
	e.MajorAxis = 2 * axis.Length()
	e.MinorAxis = e.MajorAxis * ratio
	e.Rotation = core.RoundAngle(core.NormalizeAngle(axis.Angle() * core.RadToDeg))
}

// parametricAngles 把参数角（弧度）换算成从圆心看去的几何角（度）
func parametricAngles(start, end, ratio float64) (float64, float64) {
	if math.Abs(end-start-2*math.Pi) < 1e-10 || start == end {
		return 0, 360
	}
	polar := func(p float64) float64 {
		return core.NormalizeAngle(math.Atan2(ratio*math.Sin(p), math.Cos(p)) * core.RadToDeg)
	}
	return polar(start), polar(end)
}
