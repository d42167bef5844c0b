package core

import "strconv"

// Color 索引颜色（ACI）。0 = 随块，256 = 随层，1..255 = 索引色
type Color int16

const (
	ColorByBlock Color = 0
	ColorByLayer Color = 256
	ColorWhite   Color = 7
)

func (c Color) IsByLayer() bool { return c == ColorByLayer }

func (c Color) IsByBlock() bool { return c == ColorByBlock }

func (c Color) String() string {
	switch c {
	case ColorByLayer:
		return "ByLayer"
	case ColorByBlock:
		return "ByBlock"
	}
	return strconv.Itoa(int(c))
}

// ColorFromCode 解析组码 62 的有符号值：负数表示不可见，绝对值为颜色索引。
// 绝对值超过 256 的索引按随层处理。
func ColorFromCode(v int) (c Color, visible bool) {
	visible = true
	if v < 0 {
		visible = false
		v = -v
	}
	if v > int(ColorByLayer) {
		return ColorByLayer, visible
	}
	return Color(v), visible
}
