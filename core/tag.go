package core

import (
	"strconv"
	"strings"
)

// Tag 代表 DXF 中的一组标签对（组码 + 值）
type Tag struct {
	Code  int
	Value string
}

// EOF 是流结束时的哨兵标签
var EOF = Tag{Code: 0, Value: "EOF"}

// Is 判断标签是否为指定组码和值（值不区分大小写）
func (t Tag) Is(code int, value string) bool {
	return t.Code == code && strings.EqualFold(strings.TrimSpace(t.Value), value)
}

// IsEOF 判断是否为结束标签
func (t Tag) IsEOF() bool {
	return t.Is(0, "EOF")
}

// AsFloat 将值转换为 float64
func (t Tag) AsFloat() float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(t.Value), 64)
	return f
}

// AsInt 将值转换为 int
func (t Tag) AsInt() int {
	s := strings.TrimSpace(t.Value)
	i, err := strconv.Atoi(s)
	if err != nil {
		// 部分导出程序会把整数写成 "1.0"
		f, _ := strconv.ParseFloat(s, 64)
		return int(f)
	}
	return i
}

// AsString 清洗字符串（去除多余空格）
func (t Tag) AsString() string {
	return strings.TrimSpace(t.Value)
}

// IsXData 判断组码是否属于扩展数据范围 [1000, 1071]
func IsXData(code int) bool {
	return code >= 1000 && code <= 1071
}
