package entities

import "github.com/yk35/netDXF/core"

type LWVertex struct {
	Location   core.Point2
	BeginWidth float64
	EndWidth   float64
	Bulge      float64
}

// LWPolyline 轻量多段线，顶点为实体坐标，Z 由 Elevation 给出
type LWPolyline struct {
	BaseEntity
	Vertices      []LWVertex
	Closed        bool
	ConstantWidth float64
	Elevation     float64
	Thickness     float64
}

func init() {
	Register("LWPOLYLINE", decodeWith(func() *LWPolyline { return &LWPolyline{BaseEntity: newBase("LWPOLYLINE")} }))
}

func (l *LWPolyline) Kind() Kind { return KindLWPolyline }

func (l *LWPolyline) Parse(s *Session) error {
	return s.walk(&l.BaseEntity, func(t core.Tag) error {
		// 组码 10 开始一个新顶点，其后的 20/40/41/42 都属于它
		last := len(l.Vertices) - 1
		switch t.Code {
		case 10:
			l.Vertices = append(l.Vertices, LWVertex{Location: core.Point2{X: t.AsFloat()}})
		case 20:
			if last >= 0 {
				l.Vertices[last].Location.Y = t.AsFloat()
			}
		case 40:
			if last >= 0 {
				l.Vertices[last].BeginWidth = t.AsFloat()
			}
		case 41:
			if last >= 0 {
				l.Vertices[last].EndWidth = t.AsFloat()
			}
		case 42:
			if last >= 0 {
				l.Vertices[last].Bulge = t.AsFloat()
			}
		case 43:
			l.ConstantWidth = t.AsFloat()
		case 38:
			l.Elevation = t.AsFloat()
		case 39:
			l.Thickness = t.AsFloat()
		case 70:
			l.Closed = t.AsInt()&PolylineFlagClosed != 0
		}
		return nil
	})
}
