package tables

import (
	"log/slog"
	"strings"

	"github.com/yk35/netDXF/core"
)

// Decode 读取一张表。进入时当前标签为 (0, TABLE)，返回时停在 (0, ENDTAB)。
// 只解析 APPID、LAYER、LTYPE、STYLE 记录，其余表的记录整条跳过。
func (r *Registry) Decode(s *core.Scanner, log *slog.Logger) error {
	s.Next()
	tableName := strings.ToUpper(s.LastTag.AsString())
	if s.LastTag.Code != 0 {
		s.SkipRecord() // 表头：名称、句柄、记录数
	}

	for {
		tag := s.LastTag
		if tag.Code != 0 || tag.Is(0, "ENDTAB") || tag.IsEOF() {
			break
		}

		var (
			added bool
			name  string
			err   error
		)
		switch strings.ToUpper(tag.AsString()) {
		case "APPID":
			var a *AppReg
			if a, err = DecodeAppReg(s); err == nil {
				name, added = a.Name, r.AppRegs.Add(a)
			}
		case "LAYER":
			var l *Layer
			if l, err = r.DecodeLayer(s); err == nil {
				name, added = l.Name, r.Layers.Add(l)
			}
		case "LTYPE":
			var l *LineType
			if l, err = DecodeLineType(s); err == nil {
				name, added = l.Name, r.LineTypes.Add(l)
			}
		case "STYLE":
			var (
				t  *TextStyle
				ok bool
			)
			t, ok, err = DecodeTextStyle(s)
			if err == nil && !ok {
				log.Debug("text style without name or font discarded", "pos", s.Pos())
				continue
			}
			if err == nil {
				name, added = t.Name, r.TextStyles.Add(t)
			}
		default:
			s.SkipRecord()
			continue
		}
		if err != nil {
			return err
		}
		if !added {
			log.Debug("duplicate table entry discarded", "table", tableName, "name", name)
		}
	}

	if err := s.Err(); err != nil {
		return err
	}
	if !s.LastTag.Is(0, "ENDTAB") {
		return core.NewMissingStructureError(s.Pos(), "ENDTAB", s.LastTag)
	}
	return nil
}

// DecodeAppReg 解析 APPID 记录，名称必填
func DecodeAppReg(s *core.Scanner) (*AppReg, error) {
	pos := s.Pos()
	a := &AppReg{}
	for s.Next() && s.LastTag.Code != 0 {
		t := s.LastTag
		switch t.Code {
		case 2:
			a.Name = t.AsString()
		case 5:
			a.Handle = t.AsString()
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if a.Name == "" {
		return nil, core.NewInvalidValueError(pos, "application registry name is empty")
	}
	return a, nil
}

// DecodeLayer 解析 LAYER 记录。组码 62 为负数时图层不可见，绝对值不能超过 256。
func (r *Registry) DecodeLayer(s *core.Scanner) (*Layer, error) {
	pos := s.Pos()
	var (
		l = &Layer{
			Color:   core.ColorWhite,
			Visible: true,
		}
		lineType string
	)
	for s.Next() && s.LastTag.Code != 0 {
		t := s.LastTag
		switch t.Code {
		case 2:
			l.Name = t.AsString()
		case 5:
			l.Handle = t.AsString()
		case 6:
			lineType = t.AsString()
		case 62:
			v := t.AsInt()
			if v > 256 || v < -256 {
				return nil, core.NewInvalidValueError(s.Pos(), "layer color index %d out of range", v)
			}
			l.Color, l.Visible = core.ColorFromCode(v)
		case 70:
			l.Flags = t.AsInt()
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if l.Name == "" {
		return nil, core.NewInvalidValueError(pos, "layer name is empty")
	}
	if lineType == "" {
		lineType = LineTypeSolid
	}
	l.LineType = r.LineTypes.Resolve(lineType)
	return l, nil
}

// DecodeLineType 解析 LTYPE 记录，名称必填
func DecodeLineType(s *core.Scanner) (*LineType, error) {
	pos := s.Pos()
	l := &LineType{}
	for s.Next() && s.LastTag.Code != 0 {
		t := s.LastTag
		switch t.Code {
		case 2:
			l.Name = t.AsString()
		case 3:
			l.Description = t.AsString()
		case 5:
			l.Handle = t.AsString()
		case 40:
			l.Length = t.AsFloat()
		case 49:
			l.Segments = append(l.Segments, t.AsFloat())
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if l.Name == "" {
		return nil, core.NewInvalidValueError(pos, "line type name is empty")
	}
	return l, nil
}

// 文字样式标志位
const (
	styleVertical   = 4 // 组码 70
	styleBackward   = 2 // 组码 71
	styleUpsideDown = 4 // 组码 71
)

// DecodeTextStyle 解析 STYLE 记录。
// 名称或字体为空时不报错：丢弃本条记录，返回 ok = false，停在下一个 0 组码。
func DecodeTextStyle(s *core.Scanner) (style *TextStyle, ok bool, err error) {
	t := &TextStyle{WidthFactor: 1}
	for s.Next() && s.LastTag.Code != 0 {
		tag := s.LastTag
		switch tag.Code {
		case 2:
			t.Name = tag.AsString()
		case 3:
			t.Font = tag.AsString()
		case 5:
			t.Handle = tag.AsString()
		case 40:
			t.Height = tag.AsFloat()
		case 41:
			t.WidthFactor = tag.AsFloat()
		case 50:
			t.ObliqueAngle = tag.AsFloat()
		case 70:
			t.Vertical = tag.AsInt()&styleVertical != 0
		case 71:
			flags := tag.AsInt()
			t.Backward = flags&styleBackward != 0
			t.UpsideDown = flags&styleUpsideDown != 0
		}
	}
	if err = s.Err(); err != nil {
		return nil, false, err
	}
	if t.Name == "" || t.Font == "" {
		return nil, false, nil
	}
	return t, true, nil
}
