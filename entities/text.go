package entities

import "github.com/yk35/netDXF/core"

type Text struct {
	BaseEntity
	TextProps
}

func init() {
	Register("TEXT", decodeWith(func() *Text {
		return &Text{BaseEntity: newBase("TEXT"), TextProps: newTextProps()}
	}))
}

func (x *Text) Kind() Kind { return KindText }

func (x *Text) Parse(s *Session) error {
	err := s.walk(&x.BaseEntity, func(t core.Tag) error {
		x.TextProps.parse(t, 73)
		return nil
	})
	if err != nil {
		return err
	}
	x.finish(s)
	return nil
}
