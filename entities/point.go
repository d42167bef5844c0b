package entities

import "github.com/yk35/netDXF/core"

type Point struct {
	BaseEntity
	Location  core.Point
	Thickness float64
}

func init() {
	Register("POINT", decodeWith(func() *Point { return &Point{BaseEntity: newBase("POINT")} }))
}

func (p *Point) Kind() Kind { return KindPoint }

func (p *Point) Parse(s *Session) error {
	return s.walk(&p.BaseEntity, func(t core.Tag) error {
		switch t.Code {
		case 10:
			p.Location.X = t.AsFloat()
		case 20:
			p.Location.Y = t.AsFloat()
		case 30:
			p.Location.Z = t.AsFloat()
		case 39:
			p.Thickness = t.AsFloat()
		}
		return nil
	})
}
