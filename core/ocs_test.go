package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertPoint(t *testing.T, want, got Point) {
	t.Helper()
	const delta = 1e-9
	assert.InDelta(t, want.X, got.X, delta, "X")
	assert.InDelta(t, want.Y, got.Y, delta, "Y")
	assert.InDelta(t, want.Z, got.Z, delta, "Z")
}

func TestOCS_IdentityForWorldZ(t *testing.T) {
	p := Point{X: 1.25, Y: -3, Z: 7}
	assert.Equal(t, p, OCSToWCS(p, UnitZ))
	assert.Equal(t, p, WCSToOCS(p, UnitZ))

	o := NewOCS(UnitZ)
	assertPoint(t, Point{X: 1}, o.AX)
	assertPoint(t, Point{Y: 1}, o.AY)
	assertPoint(t, UnitZ, o.AZ)
}

func TestOCS_NegativeZ(t *testing.T) {
	// 法向量 -Z：X 轴翻转，Y 轴不变
	p := OCSToWCS(Point{X: 2, Y: 3, Z: 1}, Point{Z: -1})
	assertPoint(t, Point{X: -2, Y: 3, Z: -1}, p)
}

func TestOCS_SeedWorldZ(t *testing.T) {
	// 法向量为 +X，种子是世界 Z：AX = Z × X = Y
	o := NewOCS(Point{X: 1})
	assertPoint(t, Point{Y: 1}, o.AX)
	assertPoint(t, Point{Z: 1}, o.AY)
}

func TestOCS_RoundTrip(t *testing.T) {
	normal := Point{X: 0.3, Y: -0.5, Z: 0.8}
	p := Point{X: 10, Y: -4, Z: 2.5}

	w := OCSToWCS(p, normal)
	assertPoint(t, p, WCSToOCS(w, normal))

	o := NewOCS(normal)
	assert.InDelta(t, 0, o.AX.Dot(o.AY), 1e-12)
	assert.InDelta(t, 0, o.AX.Dot(o.AZ), 1e-12)
	assertPoint(t, o.AZ, o.AX.Cross(o.AY))
}

func TestAngles(t *testing.T) {
	assert.Equal(t, 350.0, NormalizeAngle(-10))
	assert.Equal(t, 0.0, NormalizeAngle(360))
	assert.Equal(t, 30.0, RoundAngle(30.0000000001))
	assert.InDelta(t, math.Pi, 180*DegToRad, 1e-15)
}

func TestColorFromCode(t *testing.T) {
	c, visible := ColorFromCode(-3)
	assert.Equal(t, Color(3), c)
	assert.False(t, visible)

	c, visible = ColorFromCode(256)
	assert.True(t, c.IsByLayer())
	assert.True(t, visible)
	assert.Equal(t, "ByBlock", ColorByBlock.String())

	// 超出索引范围的值不能回绕成普通颜色
	c, visible = ColorFromCode(65537)
	assert.True(t, c.IsByLayer())
	assert.True(t, visible)
	c, visible = ColorFromCode(-300)
	assert.True(t, c.IsByLayer())
	assert.False(t, visible)
}

func TestNewOCS_SmallNegativeComponents(t *testing.T) {
	// |x|、|y| 都小于 1/64，即使分量为负也以世界 Y 轴为种子
	o := NewOCS(Point{X: -0.001, Y: -0.001, Z: 1})
	assert.Greater(t, o.AX.X, 0.99)
	assert.InDelta(t, 0, o.AX.Y, 1e-12)
	assert.InDelta(t, 0, o.ToObject(o.ToWorld(Point{X: 1, Y: 2, Z: 3})).Sub(Point{X: 1, Y: 2, Z: 3}).Length(), 1e-12)
}
