package entities

import (
	"github.com/yk35/netDXF/core"
	"github.com/yk35/netDXF/tables"
)

// EndSequence SEQEND 记录：结束 INSERT 属性序列或 POLYLINE 顶点序列
type EndSequence struct {
	Handle string
	Layer  *tables.Layer
}

// decodeEndSequence 进入时当前标签为 (0, SEQEND)
func decodeEndSequence(s *Session) (*EndSequence, error) {
	b := newBase("SEQEND")
	if err := s.walk(&b, func(core.Tag) error { return nil }); err != nil {
		return nil, err
	}
	return &EndSequence{Handle: b.Handle, Layer: b.Layer}, nil
}

type Insert struct {
	BaseEntity
	Block          *Block
	InsertionPoint core.Point
	Scale          core.Point
	Rotation       float64
	Attributes     []*Attribute
	EndSequence    *EndSequence
}

func init() {
	Register("INSERT", decodeWith(func() *Insert {
		return &Insert{
			BaseEntity: newBase("INSERT"),
			Scale:      core.Point{X: 1, Y: 1, Z: 1}, // 默认缩放为 1
		}
	}))
}

func (i *Insert) Kind() Kind { return KindInsert }

// Attribute 按标签查找属性
func (i *Insert) Attribute(tag string) (*Attribute, bool) {
	for _, a := range i.Attributes {
		if a.Tag == tag {
			return a, true
		}
	}
	return nil, false
}

func (i *Insert) Parse(s *Session) error {
	var (
		pos           = s.Pos()
		blockName     string
		hasAttributes bool
	)
	err := s.walk(&i.BaseEntity, func(t core.Tag) error {
		switch t.Code {
		case 2:
			blockName = t.AsString()
		case 10:
			i.InsertionPoint.X = t.AsFloat()
		case 20:
			i.InsertionPoint.Y = t.AsFloat()
		case 30:
			i.InsertionPoint.Z = t.AsFloat()
		case 41:
			i.Scale.X = t.AsFloat()
		case 42:
			i.Scale.Y = t.AsFloat()
		case 43:
			i.Scale.Z = t.AsFloat()
		case 50:
			i.Rotation = t.AsFloat()
		case 66:
			hasAttributes = t.AsInt() == 1
		}
		return nil
	})
	if err != nil {
		return err
	}

	block, ok := s.Blocks.Get(blockName)
	if !ok {
		return core.NewInvalidReferenceError(pos, "block", blockName)
	}
	i.Block = block

	// 如果紧跟着 ATTRIB，则继续在当前流中抓取直到 SEQEND
	if !hasAttributes && !s.Tag().Is(0, "ATTRIB") {
		i.EndSequence = &EndSequence{Layer: i.Layer}
		return nil
	}
	for s.Tag().Is(0, "ATTRIB") {
		attrPos := s.Pos()
		a := &Attribute{BaseEntity: newBase("ATTRIB"), TextProps: newTextProps()}
		if err = a.Parse(s); err != nil {
			return err
		}
		def, ok := block.AttributeDefinitions[a.Tag]
		if !ok {
			return core.NewInvalidReferenceError(attrPos, "attribute definition", a.Tag)
		}
		a.Definition = def
		i.Attributes = append(i.Attributes, a)
	}
	if !s.Tag().Is(0, "SEQEND") {
		if err = s.Scanner.Err(); err != nil {
			return err
		}
		return core.NewMissingStructureError(s.Pos(), "SEQEND", s.Tag())
	}
	i.EndSequence, err = decodeEndSequence(s)
	return err
}
