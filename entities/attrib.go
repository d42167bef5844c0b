package entities

import "github.com/yk35/netDXF/core"

// Attribute 插入块时附带的属性，绑定到块的同名属性定义
type Attribute struct {
	BaseEntity
	TextProps
	Tag        string
	Flags      AttributeFlags
	Definition *AttributeDefinition
}

func (a *Attribute) Kind() Kind { return KindAttribute }

// Parse ATTRIB 只能出现在 INSERT 之后，由 Insert 调用，不登记到实体表
func (a *Attribute) Parse(s *Session) error {
	err := s.walk(&a.BaseEntity, func(t core.Tag) error {
		switch t.Code {
		case 2:
			a.Tag = t.AsString()
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
