package utils

import (
	"github.com/yk35/netDXF/core"
	"github.com/yk35/netDXF/entities"
)

// CombineInserts 合并嵌套块的变换矩阵逻辑
func CombineInserts(parent, child *entities.Insert) *entities.Insert {
	// 1. 旋转叠加
	combinedRotation := parent.Rotation + child.Rotation

	// 2. 缩放叠加
	combinedScale := core.Point{
		X: parent.Scale.X * child.Scale.X,
		Y: parent.Scale.Y * child.Scale.Y,
		Z: parent.Scale.Z * child.Scale.Z,
	}

	// 3. 插入点叠加：子块的插入点需要经过父块的 缩放 -> 旋转 -> 平移 变换
	combinedInsertionPoint := TransformPoint(child.InsertionPoint, parent)

	return &entities.Insert{
		BaseEntity:     child.BaseEntity,
		Block:          child.Block,
		Rotation:       combinedRotation,
		Scale:          combinedScale,
		InsertionPoint: combinedInsertionPoint,
		Attributes:     child.Attributes,
		EndSequence:    child.EndSequence,
	}
}

// WalkInserts 深度优先遍历插入块，包括嵌套在块定义里的插入块。
// fn 收到的是已经合并了上层变换的插入块，插入点为世界坐标。
func WalkInserts(ents []entities.Entity, fn func(ins *entities.Insert)) {
	walkInserts(ents, nil, fn)
}

func walkInserts(ents []entities.Entity, parent *entities.Insert, fn func(ins *entities.Insert)) {
	for _, e := range ents {
		ins, ok := e.(*entities.Insert)
		if !ok {
			continue
		}
		if parent != nil {
			ins = CombineInserts(parent, ins)
		}
		fn(ins)
		if ins.Block != nil {
			walkInserts(ins.Block.Entities, ins, fn)
		}
	}
}
