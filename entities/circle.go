package entities

import "github.com/yk35/netDXF/core"

// Circle 圆。Center 为世界坐标。
type Circle struct {
	BaseEntity
	Center    core.Point
	Radius    float64
	Thickness float64
}

func init() {
	Register("CIRCLE", decodeWith(func() *Circle { return &Circle{BaseEntity: newBase("CIRCLE")} }))
}

func (c *Circle) Kind() Kind { return KindCircle }

func (c *Circle) Parse(s *Session) error {
	var center core.Point
	err := s.walk(&c.BaseEntity, func(t core.Tag) error {
		switch t.Code {
		case 10:
			center.X = t.AsFloat()
		case 20:
			center.Y = t.AsFloat()
		case 30:
			center.Z = t.AsFloat()
		case 40:
			c.Radius = t.AsFloat()
		case 39:
			c.Thickness = t.AsFloat()
		}
		return nil
	})
	if err != nil {
		return err
	}
	c.Center = core.OCSToWCS(center, c.Normal)
	return nil
}
