package utils

import (
	"math"

	"github.com/yk35/netDXF/core"
	"github.com/yk35/netDXF/entities"
)

// BBox 代表包围盒（世界坐标）
type BBox struct {
	Min core.Point
	Max core.Point
}

// EmptyBBox 返回不包含任何点的包围盒，Extend 之后才有效
func EmptyBBox() BBox {
	return BBox{
		Min: core.Point{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64},
		Max: core.Point{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64},
	}
}

func (b BBox) IsEmpty() bool {
	return b.Min.X > b.Max.X
}

// Extend 扩展到包含点 p
func (b BBox) Extend(points ...core.Point) BBox {
	for _, p := range points {
		b.Min = core.Point{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y), Z: math.Min(b.Min.Z, p.Z)}
		b.Max = core.Point{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y), Z: math.Max(b.Max.Z, p.Z)}
	}
	return b
}

func (b BBox) Union(o BBox) BBox {
	if o.IsEmpty() {
		return b
	}
	return b.Extend(o.Min, o.Max)
}

// Corners 包围盒的 8 个角点
func (b BBox) Corners() []core.Point {
	return []core.Point{
		{X: b.Min.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Max.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Max.Z},
	}
}

// TransformBBox 执行矩阵变换：将块内局部包围盒变换到插入点所在的坐标
func TransformBBox(local BBox, ins *entities.Insert) BBox {
	if local.IsEmpty() {
		return local
	}
	box := EmptyBBox()
	for _, p := range local.Corners() {
		box = box.Extend(TransformPoint(p, ins))
	}
	return box
}

// sphere 圆、圆弧按整圆的外接立方体估算
func sphere(center core.Point, radius float64) BBox {
	r := core.Point{X: radius, Y: radius, Z: radius}
	return EmptyBBox().Extend(center.Sub(r), center.Add(r))
}

// GetEntityBBoxWCS 计算实体的世界坐标包围盒。插入块递归计算块内实体后再做插入变换。
func GetEntityBBoxWCS(entity entities.Entity) BBox {
	box := EmptyBBox()
	switch e := entity.(type) {
	case *entities.Line:
		return box.Extend(e.Start, e.End)
	case *entities.Point:
		return box.Extend(e.Location)
	case *entities.Circle:
		return sphere(e.Center, e.Radius)
	case *entities.Arc:
		return sphere(e.Center, e.Radius)
	case *entities.Ellipse:
		return sphere(e.Center, e.MajorAxis/2)
	case *entities.Face3d:
		return box.Extend(e.Vertices[:]...)
	case *entities.Solid:
		for _, v := range e.Vertices {
			box = box.Extend(core.OCSToWCS(v, e.Normal))
		}
	case *entities.LWPolyline:
		for _, v := range e.Vertices {
			box = box.Extend(core.OCSToWCS(v.Location.To3(e.Elevation), e.Normal))
		}
	case *entities.Polyline2D:
		for _, v := range e.Vertices {
			box = box.Extend(core.OCSToWCS(v.Location.To3(e.Elevation), e.Normal))
		}
	case *entities.Polyline3D:
		for _, v := range e.Vertices {
			box = box.Extend(v.Location)
		}
	case *entities.PolyfaceMesh:
		for _, v := range e.Vertices {
			box = box.Extend(v.Location)
		}
	case *entities.Text:
		return box.Extend(core.OCSToWCS(e.Position, e.Normal))
	case *entities.AttributeDefinition:
		return box.Extend(core.OCSToWCS(e.Position, e.Normal))
	case *entities.Hatch:
		for _, path := range e.BoundaryPaths {
			box = box.Union(Extents(path.Edges))
		}
	case *entities.Insert:
		if e.Block == nil || len(e.Block.Entities) == 0 {
			return box.Extend(e.InsertionPoint)
		}
		return TransformBBox(Extents(e.Block.Entities), e)
	}
	return box
}

// Extents 一组实体的总包围盒；没有可计算的实体时返回空包围盒
func Extents(ents []entities.Entity) BBox {
	box := EmptyBBox()
	for _, e := range ents {
		box = box.Union(GetEntityBBoxWCS(e))
	}
	return box
}
