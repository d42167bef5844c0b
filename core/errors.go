package core

import "fmt"

// Position 定位一条记录：数据源名称 + 近似行号
type Position struct {
	Source string
	Line   int
}

func (p Position) String() string {
	if p.Source == "" {
		return fmt.Sprintf("line %d", p.Line)
	}
	return fmt.Sprintf("%s:%d", p.Source, p.Line)
}

// DecodeError 是所有解码错误的公共部分
type DecodeError struct {
	Message string
	Pos     Position
	Cause   error
}

func (e *DecodeError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("%s: %s", e.Pos, e.Message)
	}
	return e.Message
}

func (e *DecodeError) Unwrap() error { return e.Cause }

// FormatError 组码行不是整数
type FormatError struct{ DecodeError }

// UnknownSectionError 未知的段名
type UnknownSectionError struct {
	DecodeError
	Section string
}

// InvalidVariableError 头变量与其组码不匹配
type InvalidVariableError struct {
	DecodeError
	Variable string
	Code     int
}

// InvalidValueError 必填字段为空或超出范围
type InvalidValueError struct{ DecodeError }

// InvalidReferenceError 引用了未定义的块或属性标签
type InvalidReferenceError struct {
	DecodeError
	Name string
}

// InvalidExtendedDataError 扩展数据组码前没有 1001
type InvalidExtendedDataError struct {
	DecodeError
	Code int
}

// MissingStructureError 缺少预期的结构标记（VERTEX、SEQEND 等）
type MissingStructureError struct {
	DecodeError
	Expected string
}

func base(pos Position, format string, args ...any) DecodeError {
	return DecodeError{Message: fmt.Sprintf(format, args...), Pos: pos}
}

func NewUnknownSectionError(pos Position, name string) error {
	return &UnknownSectionError{DecodeError: base(pos, "unknown section %q", name), Section: name}
}

func NewInvalidVariableError(pos Position, name string, code int) error {
	return &InvalidVariableError{
		DecodeError: base(pos, "header variable %s: unexpected group code %d", name, code),
		Variable:    name,
		Code:        code,
	}
}

func NewInvalidValueError(pos Position, format string, args ...any) error {
	return &InvalidValueError{DecodeError: base(pos, format, args...)}
}

func NewInvalidReferenceError(pos Position, kind, name string) error {
	return &InvalidReferenceError{DecodeError: base(pos, "undefined %s %q", kind, name), Name: name}
}

func NewInvalidExtendedDataError(pos Position, code int) error {
	return &InvalidExtendedDataError{
		DecodeError: base(pos, "extended data code %d without application name (1001)", code),
		Code:        code,
	}
}

func NewMissingStructureError(pos Position, expected string, got Tag) error {
	return &MissingStructureError{
		DecodeError: base(pos, "expected %s, got (%d, %q)", expected, got.Code, got.Value),
		Expected:    expected,
	}
}
