package utils

import (
	"math"

	"github.com/yk35/netDXF/core"
	"github.com/yk35/netDXF/entities"
)

// TransformPoint 将块内局部坐标点经过 Insert 变换转换到父级/世界坐标
func TransformPoint(p core.Point, ins *entities.Insert) core.Point {
	rad := ins.Rotation * core.DegToRad
	cos, sin := math.Cos(rad), math.Sin(rad)

	// 0. 以块基点为原点
	if ins.Block != nil {
		p = p.Sub(ins.Block.BasePoint)
	}

	// 1. 缩放
	tx := p.X * ins.Scale.X
	ty := p.Y * ins.Scale.Y
	tz := p.Z * ins.Scale.Z

	// 2. 旋转
	rx := tx*cos - ty*sin
	ry := tx*sin + ty*cos

	// 3. 平移
	return core.Point{
		X: rx + ins.InsertionPoint.X,
		Y: ry + ins.InsertionPoint.Y,
		Z: tz + ins.InsertionPoint.Z,
	}
}
