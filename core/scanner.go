package core

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Scanner 把文本流切分成 (组码, 值) 标签对。
// LastTag 是当前标签，所有解码器共享这一个前瞻位置。
type Scanner struct {
	reader  *bufio.Reader
	source  string
	LastTag Tag
	line    int // 已读取的行数
	tagLine int // LastTag 组码行所在行号
	count   int
	done    bool
	err     error
}

func NewScanner(r io.Reader) *Scanner {
	return NewNamedScanner(r, "")
}

// NewNamedScanner 创建扫描器，source 用于错误定位
func NewNamedScanner(r io.Reader, source string) *Scanner {
	return &Scanner{
		reader: bufio.NewReader(r),
		source: source,
	}
}

// Next 读取下一组标签。流结束、读到 (0, EOF) 或出错后 LastTag 固定为 EOF 哨兵并返回 false。
func (s *Scanner) Next() bool {
	if s.done {
		s.LastTag = EOF
		return false
	}

	// 1. 读取 Code 行
	codeLine, ok := s.readLine()
	if !ok {
		return s.finish(nil)
	}

	codeStr := strings.TrimSpace(codeLine)
	if codeStr == "" { // 跳过空行
		return s.Next()
	}

	code, err := strconv.Atoi(codeStr)
	if err != nil {
		return s.finish(&FormatError{DecodeError{
			Message: fmt.Sprintf("invalid group code %q", codeStr),
			Pos:     Position{Source: s.source, Line: s.line},
			Cause:   err,
		}})
	}
	codeAt := s.line

	// 2. 读取 Value 行
	valueLine, ok := s.readLine()
	if !ok && s.err != nil {
		return s.finish(nil)
	}

	// 去掉行尾的换行符，但保留 Value 开头的空格（DXF 规范要求）
	value := strings.TrimRight(valueLine, "\r\n")

	s.LastTag = Tag{Code: code, Value: value}
	s.tagLine = codeAt
	s.count++
	if s.LastTag.IsEOF() {
		s.done = true
		return false
	}
	return true
}

func (s *Scanner) readLine() (string, bool) {
	line, err := s.reader.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			s.err = err
			return "", false
		}
		if line == "" {
			return "", false
		}
	}
	s.line++
	return line, true
}

func (s *Scanner) finish(err error) bool {
	if err != nil && s.err == nil {
		s.err = err
	}
	s.done = true
	s.LastTag = EOF
	return false
}

// Err 返回第一个读取错误；正常结束时为 nil
func (s *Scanner) Err() error {
	return s.err
}

// Pos 返回当前标签的位置
func (s *Scanner) Pos() Position {
	return Position{Source: s.source, Line: s.tagLine}
}

// Count 返回已读取的标签数，用于判断子解码器是否前进过
func (s *Scanner) Count() int {
	return s.count
}

// Expect 要求当前标签的组码为 code，返回该标签并前进一步
func (s *Scanner) Expect(code int) (Tag, error) {
	t := s.LastTag
	if t.Code != code {
		if err := s.Err(); err != nil {
			return t, err
		}
		return t, NewMissingStructureError(s.Pos(), fmt.Sprintf("group code %d", code), t)
	}
	s.Next()
	return t, nil
}

// Accept 当前标签组码为 code 时消费并返回它
func (s *Scanner) Accept(code int) (Tag, bool) {
	t := s.LastTag
	if t.Code != code {
		return t, false
	}
	s.Next()
	return t, true
}

// SkipRecord 跳到下一个 0 组码标签
func (s *Scanner) SkipRecord() {
	for s.Next() && s.LastTag.Code != 0 {
	}
}
