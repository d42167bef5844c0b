package core

import "math"

// Point 代表三维空间中的一个点（或向量）
type Point struct {
	X, Y, Z float64
}

// Point2 代表平面上的一个点
type Point2 struct {
	X, Y float64
}

// UnitZ 世界坐标 Z 轴，所有实体法向量的默认值
var UnitZ = Point{Z: 1}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y, p.Z + q.Z} }

func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y, p.Z - q.Z} }

func (p Point) Scale(k float64) Point { return Point{p.X * k, p.Y * k, p.Z * k} }

func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y + p.Z*q.Z }

func (p Point) Cross(q Point) Point {
	return Point{
		X: p.Y*q.Z - p.Z*q.Y,
		Y: p.Z*q.X - p.X*q.Z,
		Z: p.X*q.Y - p.Y*q.X,
	}
}

func (p Point) Length() float64 { return math.Sqrt(p.Dot(p)) }

// Normalize 返回单位向量；零向量原样返回
func (p Point) Normalize() Point {
	l := p.Length()
	if l == 0 {
		return p
	}
	return p.Scale(1 / l)
}

// XY 丢弃 Z 分量
func (p Point) XY() Point2 { return Point2{p.X, p.Y} }

func (p Point2) Sub(q Point2) Point2 { return Point2{p.X - q.X, p.Y - q.Y} }

func (p Point2) Length() float64 { return math.Hypot(p.X, p.Y) }

// Angle 返回向量与 X 轴的夹角（弧度）
func (p Point2) Angle() float64 { return math.Atan2(p.Y, p.X) }

// To3 以 z 补齐为三维点
func (p Point2) To3(z float64) Point { return Point{p.X, p.Y, z} }
