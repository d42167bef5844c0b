package utils

import (
	"github.com/yk35/netDXF/entities"
)

// GetAttrs 返回插入块的 属性标签 -> 属性值；没有属性时回退到块中属性定义的默认值
func GetAttrs(ins *entities.Insert) map[string]string {
	var attrs = make(map[string]string)
	if ins.Block != nil {
		for tag, def := range ins.Block.AttributeDefinitions {
			attrs[tag] = def.Value
		}
	}
	for _, a := range ins.Attributes {
		attrs[a.Tag] = a.Value
	}

	return attrs
}

func GetAttr(ins *entities.Insert, key string) string {
	return GetAttrs(ins)[key]
}
