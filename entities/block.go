package entities

import (
	"github.com/yk35/netDXF/core"
	"github.com/yk35/netDXF/tables"
)

// BlockEnd ENDBLK 记录的句柄和图层
type BlockEnd struct {
	Handle string
	Layer  *tables.Layer
}

type Block struct {
	Name                 string
	Handle               string
	Layer                *tables.Layer
	BasePoint            core.Point
	Flags                int
	Description          string
	Entities             []Entity
	AttributeDefinitions map[string]*AttributeDefinition
	End                  BlockEnd
}

func (b *Block) EntryName() string { return b.Name }

// DecodeBlock 解码一个块定义。进入时当前标签为 (0, BLOCK)，返回时停在 ENDBLK 之后的下一个 0 组码。
// 属性定义按标签归入 AttributeDefinitions，不进入 Entities。
func DecodeBlock(s *Session) (*Block, error) {
	block := &Block{AttributeDefinitions: make(map[string]*AttributeDefinition)}

	var layer string
	for s.Next() && s.Tag().Code != 0 {
		t := s.Tag()
		switch t.Code {
		case 2:
			block.Name = t.AsString()
		case 5:
			block.Handle = t.AsString()
		case 8:
			layer = t.AsString()
		case 4:
			block.Description = t.Value
		case 70:
			block.Flags = t.AsInt()
		case 10:
			block.BasePoint.X = t.AsFloat()
		case 20:
			block.BasePoint.Y = t.AsFloat()
		case 30:
			block.BasePoint.Z = t.AsFloat()
		}
	}
	block.Layer = s.Tables.Layer(layer)

	for {
		tag := s.Tag()
		if tag.Is(0, "ENDBLK") {
			break
		}
		if tag.IsEOF() || tag.Is(0, "ENDSEC") {
			if err := s.Scanner.Err(); err != nil {
				return nil, err
			}
			return nil, core.NewMissingStructureError(s.Pos(), "ENDBLK", tag)
		}

		ent, err := s.DecodeEntity()
		if err != nil {
			return nil, err
		}
		switch e := ent.(type) {
		case nil:
		case *AttributeDefinition:
			if _, ok := block.AttributeDefinitions[e.Tag]; !ok {
				block.AttributeDefinitions[e.Tag] = e
			}
		default:
			block.Entities = append(block.Entities, e)
		}
	}

	// ENDBLK 之后的句柄、图层
	layer = ""
	for s.Next() && s.Tag().Code != 0 {
		t := s.Tag()
		switch t.Code {
		case 5:
			block.End.Handle = t.AsString()
		case 8:
			layer = t.AsString()
		}
	}
	if err := s.Scanner.Err(); err != nil {
		return nil, err
	}
	if layer == "" {
		block.End.Layer = block.Layer
	} else {
		block.End.Layer = s.Tables.Layer(layer)
	}
	return block, nil
}
