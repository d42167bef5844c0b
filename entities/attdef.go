package entities

import "github.com/yk35/netDXF/core"

// AttributeFlags 组码 70
type AttributeFlags int

const (
	AttributeInvisible AttributeFlags = 1
	AttributeConstant  AttributeFlags = 2
	AttributeVerify    AttributeFlags = 4
	AttributePreset    AttributeFlags = 8
)

// AttributeDefinition 块中的属性定义，Value 为默认值
type AttributeDefinition struct {
	BaseEntity
	TextProps
	Tag    string
	Prompt string
	Flags  AttributeFlags
}

func init() {
	Register("ATTDEF", decodeWith(func() *AttributeDefinition {
		return &AttributeDefinition{BaseEntity: newBase("ATTDEF"), TextProps: newTextProps()}
	}))
}

func (a *AttributeDefinition) Kind() Kind { return KindAttributeDefinition }

func (a *AttributeDefinition) Parse(s *Session) error {
	err := s.walk(&a.BaseEntity, func(t core.Tag) error {
		switch t.Code {
		case 2:
			a.Tag = t.AsString()
		case 3:
			a.Prompt = t.Value
		case 70:
			a.Flags = AttributeFlags(t.AsInt())
		default:
			a.TextProps.parse(t, 74)
		}
		return nil
	})
	if err != nil {
		return err
	}
	a.finish(s)
	return nil
}
