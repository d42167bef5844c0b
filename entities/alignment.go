package entities

import (
	"github.com/yk35/netDXF/core"
	"github.com/yk35/netDXF/tables"
)

// TextAlignment 文字对齐点
type TextAlignment int

const (
	BaselineLeft TextAlignment = iota
	BaselineCenter
	BaselineRight
	BottomLeft
	BottomCenter
	BottomRight
	MiddleLeft
	MiddleCenter
	MiddleRight
	TopLeft
	TopCenter
	TopRight
)

var alignmentNames = [...]string{
	"BaselineLeft", "BaselineCenter", "BaselineRight",
	"BottomLeft", "BottomCenter", "BottomRight",
	"MiddleLeft", "MiddleCenter", "MiddleRight",
	"TopLeft", "TopCenter", "TopRight",
}

func (a TextAlignment) String() string {
	if a < 0 || int(a) >= len(alignmentNames) {
		return "Unknown"
	}
	return alignmentNames[a]
}

// alignments 以 [垂直][水平] 索引：垂直 0 基线 1 底 2 中 3 顶；水平 0 左 1 中 2 右
var alignments = [4][3]TextAlignment{
	{BaselineLeft, BaselineCenter, BaselineRight},
	{BottomLeft, BottomCenter, BottomRight},
	{MiddleLeft, MiddleCenter, MiddleRight},
	{TopLeft, TopCenter, TopRight},
}

// AlignmentOf 由水平（72）和垂直（73/74）对齐值查表。
// 水平 4（Middle）按中心处理，其他超出表的组合退回基线左对齐。
func AlignmentOf(horizontal, vertical int) TextAlignment {
	if horizontal == 4 && vertical == 0 {
		return MiddleCenter
	}
	if horizontal < 0 || horizontal > 2 || vertical < 0 || vertical > 3 {
		return BaselineLeft
	}
	return alignments[vertical][horizontal]
}

// TextProps 文字、属性定义、属性共用的字段
type TextProps struct {
	Value          string
	Style          *tables.TextStyle
	Position       core.Point // 锚点：基线左对齐取第一对齐点，否则取第二对齐点
	BasePoint      core.Point // 组码 10
	AlignmentPoint core.Point // 组码 11
	Height         float64
	WidthFactor    float64
	Rotation       float64
	ObliqueAngle   float64
	Thickness      float64
	Alignment      TextAlignment

	styleName  string
	horizontal int
	vertical   int
}

func newTextProps() TextProps {
	return TextProps{WidthFactor: 1}
}

// parse 处理文字公共组码；verticalCode 为垂直对齐组码（TEXT 为 73，ATTDEF/ATTRIB 为 74）
func (p *TextProps) parse(t core.Tag, verticalCode int) bool {
	switch t.Code {
	case 1:
		p.Value = t.Value
	case 7:
		p.styleName = t.AsString()
	case 10:
		p.BasePoint.X = t.AsFloat()
	case 20:
		p.BasePoint.Y = t.AsFloat()
	case 30:
		p.BasePoint.Z = t.AsFloat()
	case 11:
		p.AlignmentPoint.X = t.AsFloat()
	case 21:
		p.AlignmentPoint.Y = t.AsFloat()
	case 31:
		p.AlignmentPoint.Z = t.AsFloat()
	case 39:
		p.Thickness = t.AsFloat()
	case 40:
		p.Height = t.AsFloat()
	case 41:
		p.WidthFactor = t.AsFloat()
	case 50:
		p.Rotation = t.AsFloat()
	case 51:
		p.ObliqueAngle = t.AsFloat()
	case 72:
		p.horizontal = t.AsInt()
	case verticalCode:
		p.vertical = t.AsInt()
	default:
		return false
	}
	return true
}

func (p *TextProps) finish(s *Session) {
	p.Style = s.Tables.TextStyle(p.styleName)
	p.Alignment = AlignmentOf(p.horizontal, p.vertical)
	if p.Alignment == BaselineLeft {
		p.Position = p.BasePoint
	} else {
		p.Position = p.AlignmentPoint
	}
}
