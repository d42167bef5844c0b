package entities

import "github.com/yk35/netDXF/core"

// quad 读取 10..13 / 20..23 / 30..33 四个角点
type quad [4]core.Point

func (q *quad) parse(t core.Tag) bool {
	i := t.Code % 10
	if i > 3 {
		return false
	}
	switch t.Code / 10 {
	case 1:
		q[i].X = t.AsFloat()
	case 2:
		q[i].Y = t.AsFloat()
	case 3:
		q[i].Z = t.AsFloat()
	default:
		return false
	}
	return true
}

// Face3d 三维面，角点为世界坐标
type Face3d struct {
	BaseEntity
	Vertices  [4]core.Point
	EdgeFlags int // 组码 70，不可见边
}

func init() {
	Register("3DFACE", decodeWith(func() *Face3d { return &Face3d{BaseEntity: newBase("3DFACE")} }))
	Register("SOLID", decodeWith(func() *Solid { return &Solid{BaseEntity: newBase("SOLID")} }))
}

func (f *Face3d) Kind() Kind { return KindFace3d }

func (f *Face3d) Parse(s *Session) error {
	var q quad
	err := s.walk(&f.BaseEntity, func(t core.Tag) error {
		if !q.parse(t) && t.Code == 70 {
			f.EdgeFlags = t.AsInt()
		}
		return nil
	})
	f.Vertices = q
	return err
}

// Solid 二维填充四边形，角点为实体坐标
type Solid struct {
	BaseEntity
	Vertices  [4]core.Point
	Thickness float64
}

func (f *Solid) Kind() Kind { return KindSolid }

func (f *Solid) Parse(s *Session) error {
	var q quad
	err := s.walk(&f.BaseEntity, func(t core.Tag) error {
		if !q.parse(t) && t.Code == 39 {
			f.Thickness = t.AsFloat()
		}
		return nil
	})
	f.Vertices = q
	return err
}
