package dxf

import (
	"strings"

	"github.com/yk35/netDXF/core"
)

// Header 头段中识别的变量
type Header struct {
	Version    string // $ACADVER
	HandleSeed string // $HANDSEED
	CodePage   string // $DWGCODEPAGE
}

// headerVariables 变量名 -> 值必须使用的组码
var headerVariables = map[string]int{
	"$ACADVER":     1,
	"$HANDSEED":    5,
	"$DWGCODEPAGE": 3,
}

func (h *Header) set(name, value string) {
	switch name {
	case "$ACADVER":
		h.Version = value
	case "$HANDSEED":
		h.HandleSeed = value
	case "$DWGCODEPAGE":
		h.CodePage = value
	}
}

// parseHeader 进入时当前标签为 (2, HEADER)，返回时停在 ENDSEC。
// 只校验并保存已识别的变量，其余变量（可能有多个值）整体跳过。
func (d *decoder) parseHeader() error {
	s := d.s
	s.Next()
	for d.tag().Code != 0 {
		tag := d.tag()
		if tag.Code != 9 {
			s.Next()
			continue
		}
		name := strings.ToUpper(tag.AsString())
		s.Next()

		if code, ok := headerVariables[name]; ok {
			value := d.tag()
			if value.Code != code {
				if err := s.Scanner.Err(); err != nil {
					return err
				}
				return core.NewInvalidVariableError(s.Pos(), name, value.Code)
			}
			d.doc.Header.set(name, value.AsString())
			s.Next()
		}
		for d.tag().Code != 9 && d.tag().Code != 0 {
			s.Next()
		}
	}
	return d.endSection()
}
