package tables

import "github.com/yk35/netDXF/core"

// 默认记录名称
const (
	DefaultLayer     = "0"
	DefaultTextStyle = "Standard"
	DefaultFont      = "simplex.shx"
	LineTypeByLayer  = "ByLayer"
	LineTypeByBlock  = "ByBlock"
	LineTypeSolid    = "Continuous"
)

type AppReg struct {
	Name   string
	Handle string
}

func (a *AppReg) EntryName() string { return a.Name }

type Layer struct {
	Name     string
	Handle   string
	Color    core.Color
	Visible  bool
	Flags    int
	LineType *LineType
}

func (l *Layer) EntryName() string { return l.Name }

type LineType struct {
	Name        string
	Handle      string
	Description string
	Length      float64   // 组码 40，图案总长
	Segments    []float64 // 组码 49，正数为实线，负数为间隔
}

func (l *LineType) EntryName() string { return l.Name }

type TextStyle struct {
	Name         string
	Handle       string
	Font         string
	Height       float64
	WidthFactor  float64
	ObliqueAngle float64
	Vertical     bool
	Backward     bool
	UpsideDown   bool
}

func (t *TextStyle) EntryName() string { return t.Name }

// Registry 一次解码会话内的四张资源表
type Registry struct {
	AppRegs    *Table[*AppReg]
	Layers     *Table[*Layer]
	LineTypes  *Table[*LineType]
	TextStyles *Table[*TextStyle]
}

func NewRegistry() *Registry {
	r := &Registry{
		AppRegs: NewTable(func(name string) *AppReg {
			return &AppReg{Name: name}
		}, func(dst, src *AppReg) { *dst = *src }),
		LineTypes: NewTable(func(name string) *LineType {
			return &LineType{Name: name}
		}, func(dst, src *LineType) { *dst = *src }),
		TextStyles: NewTable(func(name string) *TextStyle {
			return &TextStyle{Name: name, Font: DefaultFont, WidthFactor: 1}
		}, func(dst, src *TextStyle) { *dst = *src }),
	}
	r.Layers = NewTable(func(name string) *Layer {
		return &Layer{
			Name:     name,
			Color:    core.ColorWhite,
			Visible:  true,
			LineType: r.LineTypes.Resolve(LineTypeSolid),
		}
	}, func(dst, src *Layer) { *dst = *src })
	return r
}

// Layer 按名称解析图层，空名称视为 "0"
func (r *Registry) Layer(name string) *Layer {
	if name == "" {
		name = DefaultLayer
	}
	return r.Layers.Resolve(name)
}

// LineType 按名称解析线型，空名称视为随层
func (r *Registry) LineType(name string) *LineType {
	if name == "" {
		name = LineTypeByLayer
	}
	return r.LineTypes.Resolve(name)
}

// TextStyle 按名称解析文字样式，空名称视为 "Standard"
func (r *Registry) TextStyle(name string) *TextStyle {
	if name == "" {
		name = DefaultTextStyle
	}
	return r.TextStyles.Resolve(name)
}

func (r *Registry) AppReg(name string) *AppReg {
	return r.AppRegs.Resolve(name)
}
