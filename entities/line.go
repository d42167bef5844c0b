package entities

import "github.com/yk35/netDXF/core"

type Line struct {
	BaseEntity
	Start, End core.Point
	Thickness  float64
}

func init() {
	Register("LINE", decodeWith(func() *Line { return &Line{BaseEntity: newBase("LINE")} }))
}

func (l *Line) Kind() Kind { return KindLine }

func (l *Line) Parse(s *Session) error {
	return s.walk(&l.BaseEntity, func(t core.Tag) error {
		switch t.Code {
		case 10:
			l.Start.X = t.AsFloat()
		case 20:
			l.Start.Y = t.AsFloat()
		case 30:
			l.Start.Z = t.AsFloat()
		case 11:
			l.End.X = t.AsFloat()
		case 21:
			l.End.Y = t.AsFloat()
		case 31:
			l.End.Z = t.AsFloat()
		case 39:
			l.Thickness = t.AsFloat()
		}
		return nil
	})
}
