package entities

import (
	"strings"

	"github.com/yk35/netDXF/core"
	"github.com/yk35/netDXF/tables"
)

// Kind 实体种类
type Kind int

const (
	KindArc Kind = iota
	KindCircle
	KindEllipse
	KindPoint
	KindFace3d
	KindSolid
	KindInsert
	KindLine
	KindPolyline2D
	KindPolyline3D
	KindPolyfaceMesh
	KindLWPolyline
	KindText
	KindAttributeDefinition
	KindAttribute
	KindHatch
)

var kindNames = [...]string{
	"Arc", "Circle", "Ellipse", "Point", "Face3d", "Solid", "Insert", "Line",
	"Polyline2D", "Polyline3D", "PolyfaceMesh", "LightWeightPolyline",
	"Text", "AttributeDefinition", "Attribute", "Hatch",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// Entity 是一切几何实体的接口
type Entity interface {
	Type() string
	Kind() Kind
	Base() *BaseEntity
}

// BaseEntity 存放所有实体通用的属性（句柄、图层、颜色、线型、法向量、扩展数据）
type BaseEntity struct {
	TypeName string
	Handle   string
	Layer    *tables.Layer
	LineType *tables.LineType
	Color    core.Color
	Normal   core.Point
	XData    []*ExtendedData

	layerName    string
	lineTypeName string
}

func newBase(typeName string) BaseEntity {
	return BaseEntity{
		TypeName: typeName,
		Color:    core.ColorByLayer,
		Normal:   core.UnitZ,
	}
}

func (b *BaseEntity) Type() string { return b.TypeName }

func (b *BaseEntity) Base() *BaseEntity { return b }

// parse 处理公共组码，返回是否已处理
func (b *BaseEntity) parse(t core.Tag) bool {
	switch t.Code {
	case 5:
		b.Handle = t.AsString()
	case 8:
		b.layerName = t.AsString()
	case 6:
		b.lineTypeName = t.AsString()
	case 62:
		b.Color, _ = core.ColorFromCode(t.AsInt())
	case 210:
		b.Normal.X = t.AsFloat()
	case 220:
		b.Normal.Y = t.AsFloat()
	case 230:
		b.Normal.Z = t.AsFloat()
	default:
		return false
	}
	return true
}

// resolve 把图层、线型名称解析为表记录
func (b *BaseEntity) resolve(s *Session) {
	b.Layer = s.Tables.Layer(b.layerName)
	b.LineType = s.Tables.LineType(b.lineTypeName)
}

// inherit 让子实体（填充边界等）沿用父实体的公共属性
func (b *BaseEntity) inherit(parent *BaseEntity) {
	b.Layer = parent.Layer
	b.LineType = parent.LineType
	b.Color = parent.Color
	b.Normal = parent.Normal
}

// DecodeFunc 从当前 (0, 类型名) 标签开始解码一个实体，返回时停在下一个 0 组码
type DecodeFunc func(s *Session) (Entity, error)

var registry = map[string]DecodeFunc{}

// Register 允许以后动态扩展新的实体类型
func Register(typeName string, decode DecodeFunc) {
	registry[strings.ToUpper(typeName)] = decode
}

// Lookup 根据实体名称查找解码器
func Lookup(typeName string) (DecodeFunc, bool) {
	decode, ok := registry[strings.ToUpper(strings.TrimSpace(typeName))]
	return decode, ok
}

type parser interface {
	Entity
	Parse(s *Session) error
}

// decodeWith 把 "创建 + Parse" 包装成 DecodeFunc；解析失败时不返回半成品
func decodeWith[T parser](newEntity func() T) DecodeFunc {
	return func(s *Session) (Entity, error) {
		e := newEntity()
		if err := e.Parse(s); err != nil {
			return nil, err
		}
		return e, nil
	}
}
