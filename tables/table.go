package tables

import "strings"

// Entry 是表中可按名称索引的记录
type Entry interface {
	EntryName() string
}

// Table 按名称索引的表，保持首次出现的顺序。名称查找不区分大小写。
type Table[T Entry] struct {
	entries    map[string]T
	order      []string
	defaults   map[string]bool // 由 Resolve 补建、文件中尚未出现的记录
	newDefault func(name string) T
	adopt      func(dst, src T)
}

// NewTable 创建表。newDefault 为 Resolve 补建默认记录；
// adopt 在文件随后声明同名记录时把内容写入已补建的记录，保证已有引用仍然有效。
func NewTable[T Entry](newDefault func(name string) T, adopt func(dst, src T)) *Table[T] {
	return &Table[T]{
		entries:    make(map[string]T),
		defaults:   make(map[string]bool),
		newDefault: newDefault,
		adopt:      adopt,
	}
}

func key(name string) string {
	return strings.ToUpper(name)
}

// Add 添加记录；同名记录已存在时保留先出现的那个，返回 false
func (t *Table[T]) Add(e T) bool {
	k := key(e.EntryName())
	if old, ok := t.entries[k]; ok {
		if !t.defaults[k] || t.adopt == nil {
			return false
		}
		t.adopt(old, e)
		delete(t.defaults, k)
		return true
	}
	t.entries[k] = e
	t.order = append(t.order, k)
	return true
}

func (t *Table[T]) Get(name string) (T, bool) {
	e, ok := t.entries[key(name)]
	return e, ok
}

// Resolve 返回已有记录；不存在时创建默认记录并登记
func (t *Table[T]) Resolve(name string) T {
	if e, ok := t.Get(name); ok {
		return e
	}
	e := t.newDefault(name)
	t.Add(e)
	t.defaults[key(name)] = true
	return e
}

// IsDefault 报告记录是否为补建的默认记录
func (t *Table[T]) IsDefault(name string) bool {
	return t.defaults[key(name)]
}

func (t *Table[T]) Len() int {
	return len(t.order)
}

// All 按登记顺序返回全部记录
func (t *Table[T]) All() []T {
	all := make([]T, 0, len(t.order))
	for _, k := range t.order {
		all = append(all, t.entries[k])
	}
	return all
}
