package entities

import (
	"log/slog"

	"github.com/yk35/netDXF/core"
	"github.com/yk35/netDXF/tables"
)

// Session 一次解码会话的上下文：标签游标、资源表、块表。
// 由调用方创建并显式传入每个解码器，不在会话之间共享。
type Session struct {
	Scanner *core.Scanner
	Tables  *tables.Registry
	Blocks  *tables.Table[*Block]
	Logger  *slog.Logger
}

func NewSession(scanner *core.Scanner, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{
		Scanner: scanner,
		Tables:  tables.NewRegistry(),
		Blocks:  tables.NewTable[*Block](nil, nil),
		Logger:  logger,
	}
}

// Tag 当前标签
func (s *Session) Tag() core.Tag { return s.Scanner.LastTag }

func (s *Session) Next() bool { return s.Scanner.Next() }

func (s *Session) Pos() core.Position { return s.Scanner.Pos() }

func (s *Session) expect(code int) (core.Tag, error) { return s.Scanner.Expect(code) }

func (s *Session) accept(code int) (core.Tag, bool) { return s.Scanner.Accept(code) }

// DecodeEntity 解码当前 (0, 类型名) 开头的实体。
// 未知类型跳到下一个 0 组码并返回 nil, nil。
func (s *Session) DecodeEntity() (Entity, error) {
	typeName := s.Tag().AsString()
	decode, ok := Lookup(typeName)
	if !ok {
		s.Logger.Debug("unknown entity skipped", "type", typeName, "pos", s.Pos())
		s.Scanner.SkipRecord()
		return nil, s.Scanner.Err()
	}
	return decode(s)
}

// walk 读取一条实体记录直到下一个 0 组码。
// 公共组码和扩展数据在这里处理，其余交给 fn。
// fn 可以自行读取多组标签（如填充边界），此时 walk 不再额外前进。
func (s *Session) walk(b *BaseEntity, fn func(t core.Tag) error) error {
	s.Next()
	for s.Tag().Code != 0 {
		var (
			mark = s.Scanner.Count()
			tag  = s.Tag()
			err  error
		)
		switch {
		case tag.Code == 1001:
			err = b.readXData(s)
		case core.IsXData(tag.Code):
			err = core.NewInvalidExtendedDataError(s.Pos(), tag.Code)
		case b.parse(tag):
		default:
			err = fn(tag)
		}
		if err != nil {
			return err
		}
		if s.Scanner.Count() == mark {
			s.Next()
		}
	}
	if err := s.Scanner.Err(); err != nil {
		return err
	}
	b.resolve(s)
	return nil
}
