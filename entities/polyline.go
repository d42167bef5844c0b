package entities

import (
	"math"

	"github.com/yk35/netDXF/core"
)

// POLYLINE 组码 70 标志位
const (
	PolylineFlagClosed       = 1
	PolylineFlag3D           = 8
	PolylineFlagPolygonMesh  = 16
	PolylineFlagPolyfaceMesh = 64
)

// VERTEX 组码 70 标志位
const (
	VertexFlag3D           = 32
	VertexFlagPolygonMesh  = 64
	VertexFlagPolyfaceMesh = 128
)

// RawVertex VERTEX 记录的全部字段，尚未区分多段线种类
type RawVertex struct {
	BaseEntity
	Location   core.Point
	BeginWidth float64
	EndWidth   float64
	Bulge      float64
	Flags      int
	Indexes    [4]int16 // 组码 71..74，多面网格的面顶点索引（从 1 开始，负数表示不可见边）
}

// RawPolyline POLYLINE 头部和顶点序列的原始表示
type RawPolyline struct {
	BaseEntity
	Flags        int
	Elevation    core.Point // 组码 10/20/30，只有 Z 有意义
	DefaultWidth [2]float64 // 组码 40/41
	Thickness    float64
	Vertices     []*RawVertex
	EndSequence  *EndSequence
}

func init() {
	Register("POLYLINE", func(s *Session) (Entity, error) {
		raw, err := DecodeRawPolyline(s)
		if err != nil {
			return nil, err
		}
		return raw.Convert(), nil
	})
}

// DecodeRawPolyline 读取 POLYLINE 头部、全部 VERTEX 和 SEQEND
func DecodeRawPolyline(s *Session) (*RawPolyline, error) {
	p := &RawPolyline{BaseEntity: newBase("POLYLINE")}
	err := s.walk(&p.BaseEntity, func(t core.Tag) error {
		switch t.Code {
		case 10:
			p.Elevation.X = t.AsFloat()
		case 20:
			p.Elevation.Y = t.AsFloat()
		case 30:
			p.Elevation.Z = t.AsFloat()
		case 39:
			p.Thickness = t.AsFloat()
		case 40:
			p.DefaultWidth[0] = t.AsFloat()
		case 41:
			p.DefaultWidth[1] = t.AsFloat()
		case 70:
			p.Flags = t.AsInt()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for s.Tag().Is(0, "VERTEX") {
		v, err := decodeVertex(s, p.DefaultWidth)
		if err != nil {
			return nil, err
		}
		p.Vertices = append(p.Vertices, v)
	}
	if !s.Tag().Is(0, "SEQEND") {
		if err = s.Scanner.Err(); err != nil {
			return nil, err
		}
		return nil, core.NewMissingStructureError(s.Pos(), "VERTEX or SEQEND", s.Tag())
	}
	if p.EndSequence, err = decodeEndSequence(s); err != nil {
		return nil, err
	}
	return p, nil
}

func decodeVertex(s *Session, width [2]float64) (*RawVertex, error) {
	v := &RawVertex{
		BaseEntity: newBase("VERTEX"),
		BeginWidth: width[0],
		EndWidth:   width[1],
	}
	err := s.walk(&v.BaseEntity, func(t core.Tag) error {
		switch t.Code {
		case 10:
			v.Location.X = t.AsFloat()
		case 20:
			v.Location.Y = t.AsFloat()
		case 30:
			v.Location.Z = t.AsFloat()
		case 40:
			v.BeginWidth = t.AsFloat()
		case 41:
			v.EndWidth = t.AsFloat()
		case 42:
			v.Bulge = t.AsFloat()
		case 70:
			v.Flags = t.AsInt()
		case 71, 72, 73, 74:
			idx := t.AsInt()
			if idx < math.MinInt16 || idx > math.MaxInt16 {
				return core.NewInvalidValueError(s.Pos(), "polyface vertex index %d out of range", idx)
			}
			v.Indexes[t.Code-71] = int16(idx)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Closed 组码 70 的闭合位
func (p *RawPolyline) Closed() bool {
	return p.Flags&PolylineFlagClosed != 0
}

// Convert 按组码 70 把原始多段线转换为三维多段线、多面网格或二维多段线之一
func (p *RawPolyline) Convert() Entity {
	switch {
	case p.Flags&PolylineFlagPolyfaceMesh != 0:
		return p.PolyfaceMesh()
	case p.Flags&PolylineFlag3D != 0:
		return p.Polyline3D()
	default:
		return p.Polyline2D()
	}
}

func (p *RawPolyline) base(typeName string) BaseEntity {
	b := p.BaseEntity
	b.TypeName = typeName
	return b
}

// Vertex3D 三维顶点：只保留位置和句柄
type Vertex3D struct {
	Handle   string
	Location core.Point
}

type Polyline3D struct {
	BaseEntity
	Vertices    []Vertex3D
	Closed      bool
	EndSequence *EndSequence
}

func (p *Polyline3D) Kind() Kind { return KindPolyline3D }

func (p *RawPolyline) Polyline3D() *Polyline3D {
	out := &Polyline3D{
		BaseEntity:  p.base("POLYLINE"),
		Closed:      p.Closed(),
		EndSequence: p.EndSequence,
	}
	for _, v := range p.Vertices {
		out.Vertices = append(out.Vertices, Vertex3D{Handle: v.Handle, Location: v.Location})
	}
	return out
}

// PolyfaceFace 多面网格的一个面，Indexes 为非零的顶点索引
type PolyfaceFace struct {
	Handle  string
	Indexes []int16
}

type PolyfaceMesh struct {
	BaseEntity
	Vertices    []Vertex3D
	Faces       []PolyfaceFace
	EndSequence *EndSequence
}

func (p *PolyfaceMesh) Kind() Kind { return KindPolyfaceMesh }

// PolyfaceMesh 同一串顶点按标志拆分：64|128 为网格顶点，仅 128 为面
func (p *RawPolyline) PolyfaceMesh() *PolyfaceMesh {
	out := &PolyfaceMesh{
		BaseEntity:  p.base("POLYLINE"),
		EndSequence: p.EndSequence,
	}
	for _, v := range p.Vertices {
		switch {
		case v.Flags&(VertexFlagPolygonMesh|VertexFlagPolyfaceMesh) == VertexFlagPolygonMesh|VertexFlagPolyfaceMesh:
			out.Vertices = append(out.Vertices, Vertex3D{Handle: v.Handle, Location: v.Location})
		case v.Flags&VertexFlagPolyfaceMesh != 0:
			face := PolyfaceFace{Handle: v.Handle}
			for _, idx := range v.Indexes {
				if idx != 0 {
					face.Indexes = append(face.Indexes, idx)
				}
			}
			out.Faces = append(out.Faces, face)
		}
	}
	return out
}

// Vertex2D 二维顶点
type Vertex2D struct {
	Handle     string
	Location   core.Point2
	BeginWidth float64
	EndWidth   float64
	Bulge      float64
}

// Polyline2D 二维多段线，顶点为实体坐标
type Polyline2D struct {
	BaseEntity
	Vertices    []Vertex2D
	Closed      bool
	Elevation   float64
	Thickness   float64
	EndSequence *EndSequence
}

func (p *Polyline2D) Kind() Kind { return KindPolyline2D }

func (p *RawPolyline) Polyline2D() *Polyline2D {
	out := &Polyline2D{
		BaseEntity:  p.base("POLYLINE"),
		Closed:      p.Closed(),
		Elevation:   p.Elevation.Z,
		Thickness:   p.Thickness,
		EndSequence: p.EndSequence,
	}
	for _, v := range p.Vertices {
		out.Vertices = append(out.Vertices, Vertex2D{
			Handle:     v.Handle,
			Location:   v.Location.XY(),
			BeginWidth: v.BeginWidth,
			EndWidth:   v.EndWidth,
			Bulge:      v.Bulge,
		})
	}
	return out
}
