package core

import (
	"math"

	"github.com/zooyer/golib/xmath"
)

// arbitraryAxisThreshold 任意轴算法的阈值 1/64
const arbitraryAxisThreshold = 1.0 / 64.0

// epsilon 判断法向量是否为世界 Z 轴时的容差
const epsilon = 1e-12

// OCS 由法向量确定的实体坐标系，三个轴都在世界坐标下表示
type OCS struct {
	AX, AY, AZ Point
}

// NewOCS 按任意轴算法由法向量构造右手坐标系：
// 法向量 X、Y 分量都小于 1/64 时以世界 Y 轴为种子，否则以世界 Z 轴为种子。
func NewOCS(normal Point) OCS {
	az := normal.Normalize()
	var seed Point
	if math.Abs(az.X) < arbitraryAxisThreshold && math.Abs(az.Y) < arbitraryAxisThreshold {
		seed = Point{Y: 1}
	} else {
		seed = UnitZ
	}
	ax := seed.Cross(az).Normalize()
	ay := az.Cross(ax).Normalize()
	return OCS{AX: ax, AY: ay, AZ: az}
}

// ToWorld 实体坐标 -> 世界坐标
func (o OCS) ToWorld(p Point) Point {
	return o.AX.Scale(p.X).Add(o.AY.Scale(p.Y)).Add(o.AZ.Scale(p.Z))
}

// ToObject 世界坐标 -> 实体坐标
func (o OCS) ToObject(p Point) Point {
	return Point{X: o.AX.Dot(p), Y: o.AY.Dot(p), Z: o.AZ.Dot(p)}
}

// IsWorldZ 法向量是否为 +Z（此时变换是恒等变换）
func IsWorldZ(normal Point) bool {
	return xmath.Equal(normal.X, 0, epsilon) && xmath.Equal(normal.Y, 0, epsilon) && normal.Z > 0
}

// OCSToWCS 把以 normal 为法向量的实体坐标点转换到世界坐标
func OCSToWCS(p, normal Point) Point {
	if IsWorldZ(normal) {
		return p
	}
	return NewOCS(normal).ToWorld(p)
}

// WCSToOCS 把世界坐标点转换到以 normal 为法向量的实体坐标
func WCSToOCS(p, normal Point) Point {
	if IsWorldZ(normal) {
		return p
	}
	return NewOCS(normal).ToObject(p)
}
