package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yk35/netDXF/core"
	"github.com/yk35/netDXF/entities"
)

func newInsert(block *entities.Block, at core.Point, rotation float64) *entities.Insert {
	return &entities.Insert{
		Block:          block,
		InsertionPoint: at,
		Scale:          core.Point{X: 1, Y: 1, Z: 1},
		Rotation:       rotation,
	}
}

func assertNear(t *testing.T, want, got core.Point) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9)
	assert.InDelta(t, want.Y, got.Y, 1e-9)
	assert.InDelta(t, want.Z, got.Z, 1e-9)
}

func TestGetAttrs(t *testing.T) {
	block := &entities.Block{
		Name: "DoorBlock",
		AttributeDefinitions: map[string]*entities.AttributeDefinition{
			"SIZE":  {Tag: "SIZE", TextProps: entities.TextProps{Value: "800"}},
			"COLOR": {Tag: "COLOR", TextProps: entities.TextProps{Value: "white"}},
		},
	}
	ins := newInsert(block, core.Point{}, 0)
	ins.Attributes = []*entities.Attribute{{Tag: "SIZE", TextProps: entities.TextProps{Value: "900"}}}

	assert.Equal(t, map[string]string{"SIZE": "900", "COLOR": "white"}, GetAttrs(ins))
	assert.Equal(t, "white", GetAttr(ins, "COLOR"))
	assert.Empty(t, GetAttr(ins, "MISSING"))
}

func TestTransformPoint(t *testing.T) {
	block := &entities.Block{BasePoint: core.Point{X: 1}}
	ins := newInsert(block, core.Point{X: 10, Y: 10}, 90)
	ins.Scale = core.Point{X: 2, Y: 2, Z: 1}

	// (3,0) 相对基点为 (2,0)，放大到 (4,0)，旋转 90° 到 (0,4)
	assertNear(t, core.Point{X: 10, Y: 14}, TransformPoint(core.Point{X: 3}, ins))
}

func TestWalkInserts_Nested(t *testing.T) {
	inner := &entities.Block{Name: "Inner"}
	outer := &entities.Block{Name: "Outer", Entities: []entities.Entity{
		newInsert(inner, core.Point{X: 1}, 0),
	}}
	top := newInsert(outer, core.Point{X: 5, Y: 5}, 90)

	var got []*entities.Insert
	WalkInserts([]entities.Entity{&entities.Line{}, top}, func(ins *entities.Insert) {
		got = append(got, ins)
	})

	require.Len(t, got, 2)
	assert.Same(t, top, got[0])
	assert.Same(t, inner, got[1].Block)
	assertNear(t, core.Point{X: 5, Y: 6}, got[1].InsertionPoint)
	assert.Equal(t, 90.0, got[1].Rotation)
}

func TestExtents(t *testing.T) {
	block := &entities.Block{Entities: []entities.Entity{
		&entities.Line{Start: core.Point{}, End: core.Point{X: 2}},
	}}
	ents := []entities.Entity{
		&entities.Circle{Center: core.Point{X: 10, Y: 10}, Radius: 1},
		&entities.LWPolyline{
			BaseEntity: entities.BaseEntity{Normal: core.UnitZ},
			Vertices:   []entities.LWVertex{{Location: core.Point2{X: -1, Y: 0}}},
			Elevation:  0,
		},
		newInsert(block, core.Point{Y: 20}, 90),
	}

	box := Extents(ents)
	require.False(t, box.IsEmpty())
	assertNear(t, core.Point{X: -1, Y: 0, Z: -1}, box.Min)
	assertNear(t, core.Point{X: 11, Y: 22, Z: 1}, box.Max)

	assert.True(t, Extents(nil).IsEmpty())
}

func TestBBox_Union(t *testing.T) {
	a := EmptyBBox().Extend(core.Point{X: 1, Y: 1})
	b := EmptyBBox().Extend(core.Point{X: -1, Y: 3})

	u := a.Union(b).Union(EmptyBBox())
	assert.Equal(t, core.Point{X: -1, Y: 1}, u.Min)
	assert.Equal(t, core.Point{X: 1, Y: 3}, u.Max)
	assert.Len(t, u.Corners(), 8)
}
