package entities

import "github.com/yk35/netDXF/core"

// Arc 圆弧。Center 为世界坐标，起止角度相对实体坐标系 X 轴（度）。
type Arc struct {
	BaseEntity
	Center     core.Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
	Thickness  float64
}

func init() {
	Register("ARC", decodeWith(func() *Arc { return &Arc{BaseEntity: newBase("ARC")} }))
}

func (a *Arc) Kind() Kind { return KindArc }

func (a *Arc) Parse(s *Session) error {
	var center core.Point // 实体坐标
	err := s.walk(&a.BaseEntity, func(t core.Tag) error {
		switch t.Code {
		case 10:
			center.X = t.AsFloat()
		case 20:
			center.Y = t.AsFloat()
		case 30:
			center.Z = t.AsFloat()
		case 40:
			a.Radius = t.AsFloat()
		case 50:
			a.StartAngle = t.AsFloat()
		case 51:
			a.EndAngle = t.AsFloat()
		case 39:
			a.Thickness = t.AsFloat()
		}
		return nil
	})
	if err != nil {
		return err
	}
	a.Center = core.OCSToWCS(center, a.Normal)
	return nil
}
