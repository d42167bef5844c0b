package entities

import (
	"github.com/yk35/netDXF/core"
)

// HatchFill 填充方式
type HatchFill int

const (
	HatchPatternFill HatchFill = 0
	HatchSolidFill   HatchFill = 1
)

// HatchPatternType 组码 76
type HatchPatternType int

const (
	PatternUserDefined HatchPatternType = 0
	PatternPredefined  HatchPatternType = 1
	PatternCustom      HatchPatternType = 2
)

// HatchStyle 组码 75
type HatchStyle int

const (
	HatchStyleNormal HatchStyle = 0
	HatchStyleOuter  HatchStyle = 1
	HatchStyleIgnore HatchStyle = 2
)

// HatchPatternLine 图案线定义。角度相对于填充整体角度，偏移向量已转到填充局部坐标并除以比例。
type HatchPatternLine struct {
	Angle       float64
	Origin      core.Point2
	Offset      core.Point2
	DashPattern []float64 // 正数为实线，负数为间隔，已除以比例
}

type HatchPattern struct {
	Name            string
	Fill            HatchFill
	Type            HatchPatternType
	Style           HatchStyle
	Angle           float64
	Scale           float64
	Double          bool
	LineDefinitions []HatchPatternLine
}

// HatchBoundaryPath 一条边界路径，Edges 由 *Line、*Arc、*Ellipse、*LWPolyline 组成
type HatchBoundaryPath struct {
	Flags int
	Edges []Entity
}

type Hatch struct {
	BaseEntity
	Pattern       *HatchPattern
	BoundaryPaths []*HatchBoundaryPath
	Elevation     float64
	Associative   bool
	SeedPoints    []core.Point2
}

func init() {
	Register("HATCH", decodeWith(func() *Hatch {
		return &Hatch{
			BaseEntity: newBase("HATCH"),
			Pattern:    &HatchPattern{Scale: 1},
		}
	}))
}

func (h *Hatch) Kind() Kind { return KindHatch }

func (h *Hatch) Parse(s *Session) error {
	err := s.walk(&h.BaseEntity, func(t core.Tag) error {
		switch t.Code {
		case 2:
			h.Pattern.Name = t.AsString()
		case 30:
			h.Elevation = t.AsFloat()
		case 70:
			h.Pattern.Fill = HatchFill(t.AsInt())
		case 71:
			h.Associative = t.AsInt() != 0
		case 91:
			n, err := checkCount(s.Pos(), t)
			if err != nil {
				return err
			}
			paths, err := readBoundaryPaths(s, n)
			if err != nil {
				return err
			}
			h.BoundaryPaths = append(h.BoundaryPaths, paths...)
		case 75:
			h.Pattern.Style = HatchStyle(t.AsInt())
		case 76:
			h.Pattern.Type = HatchPatternType(t.AsInt())
		case 52:
			h.Pattern.Angle = t.AsFloat()
		case 41:
			h.Pattern.Scale = t.AsFloat()
		case 77:
			h.Pattern.Double = t.AsInt() != 0
		case 78:
			n, err := checkCount(s.Pos(), t)
			if err != nil {
				return err
			}
			lines, err := readPatternLines(s, n, h.Pattern.Angle, h.Pattern.Scale)
			if err != nil {
				return err
			}
			h.Pattern.LineDefinitions = lines
		case 98:
			n, err := checkCount(s.Pos(), t)
			if err != nil {
				return err
			}
			seeds, err := readSeedPoints(s, n)
			if err != nil {
				return err
			}
			h.SeedPoints = seeds
		}
		return nil
	})
	if err != nil {
		return err
	}
	h.placeEdges()
	return nil
}

// placeEdges 边界子实体沿用填充的图层等属性，并把实体坐标下的圆心、端点换算到世界坐标
func (h *Hatch) placeEdges() {
	for _, path := range h.BoundaryPaths {
		for _, edge := range path.Edges {
			edge.Base().inherit(&h.BaseEntity)
			switch e := edge.(type) {
			case *Line:
				e.Start = h.toWorld(e.Start)
				e.End = h.toWorld(e.End)
			case *Arc:
				e.Center = h.toWorld(e.Center)
			case *Ellipse:
				e.Center = h.toWorld(e.Center)
			case *LWPolyline:
				e.Elevation = h.Elevation
			}
		}
	}
}

// toWorld 边界数据是填充平面内的二维点，Z 取填充的标高
func (h *Hatch) toWorld(p core.Point) core.Point {
	p.Z = h.Elevation
	return core.OCSToWCS(p, h.Normal)
}

// readSeedPoints 进入时当前标签为 (98, n)
func readSeedPoints(s *Session, n int) ([]core.Point2, error) {
	s.Next()
	var seeds []core.Point2
	for i := 0; i < n; i++ {
		x, err := s.expect(10)
		if err != nil {
			return nil, err
		}
		y, err := s.expect(20)
		if err != nil {
			return nil, err
		}
		seeds = append(seeds, core.Point2{X: x.AsFloat(), Y: y.AsFloat()})
	}
	return seeds, nil
}
