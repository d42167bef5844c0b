package core

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanner_Basic(t *testing.T) {
	// 模拟一个简单的 DXF 片段
	dxfData := "0\nSECTION\n2\nHEADER\n0\nENDSEC\n"
	r := strings.NewReader(dxfData)
	scanner := NewScanner(r)

	expected := []Tag{
		{0, "SECTION"},
		{2, "HEADER"},
		{0, "ENDSEC"},
	}

	for i, exp := range expected {
		if !scanner.Next() {
			t.Fatalf("第 %d 步读取失败: %v", i, scanner.Err())
		}
		if scanner.LastTag.Code != exp.Code || scanner.LastTag.Value != exp.Value {
			t.Errorf("第 %d 步数据不符: 期望 %+v, 得到 %+v", i, exp, scanner.LastTag)
		}
	}

	// 流耗尽后返回哨兵
	assert.False(t, scanner.Next())
	assert.True(t, scanner.LastTag.IsEOF())
	assert.NoError(t, scanner.Err())
}

func TestScanner_EOFTag(t *testing.T) {
	scanner := NewScanner(strings.NewReader("0\nEOF\n0\nSECTION\n"))

	assert.False(t, scanner.Next())
	assert.True(t, scanner.LastTag.IsEOF())
	// EOF 之后的内容不再读取
	assert.False(t, scanner.Next())
	assert.True(t, scanner.LastTag.IsEOF())
	assert.NoError(t, scanner.Err())
}

func TestScanner_CRLFAndLeadingSpaces(t *testing.T) {
	scanner := NewScanner(strings.NewReader("  10\r\n 1.5\r\n"))

	require.True(t, scanner.Next())
	assert.Equal(t, 10, scanner.LastTag.Code)
	assert.Equal(t, " 1.5", scanner.LastTag.Value)
	assert.Equal(t, 1.5, scanner.LastTag.AsFloat())
}

func TestScanner_FormatError(t *testing.T) {
	scanner := NewNamedScanner(strings.NewReader("0\nSECTION\nabc\nHEADER\n"), "bad.dxf")

	require.True(t, scanner.Next())
	assert.False(t, scanner.Next())

	var fe *FormatError
	require.True(t, errors.As(scanner.Err(), &fe))
	assert.Equal(t, 3, fe.Pos.Line)
	assert.Equal(t, "bad.dxf", fe.Pos.Source)
	assert.Contains(t, fe.Error(), "bad.dxf:3")
	assert.True(t, scanner.LastTag.IsEOF())
}

func TestScanner_PositionAndCount(t *testing.T) {
	scanner := NewScanner(strings.NewReader("0\nLINE\n\n8\n0\n"))

	require.True(t, scanner.Next())
	assert.Equal(t, 1, scanner.Pos().Line)
	require.True(t, scanner.Next())
	assert.Equal(t, 4, scanner.Pos().Line)
	assert.Equal(t, 2, scanner.Count())
	assert.Equal(t, "0", scanner.LastTag.Value)
}

func TestScanner_ExpectAccept(t *testing.T) {
	scanner := NewScanner(strings.NewReader("72\n1\n73\n0\n"))
	scanner.Next()

	tag, err := scanner.Expect(72)
	require.NoError(t, err)
	assert.Equal(t, 1, tag.AsInt())

	_, ok := scanner.Accept(42)
	assert.False(t, ok)
	_, ok = scanner.Accept(73)
	assert.True(t, ok)

	_, err = scanner.Expect(93)
	var me *MissingStructureError
	assert.True(t, errors.As(err, &me))
}

func TestTag_Conversions(t *testing.T) {
	assert.Equal(t, 3, Tag{Value: " 3"}.AsInt())
	assert.Equal(t, 1, Tag{Value: "1.0"}.AsInt())
	assert.Equal(t, "Wall", Tag{Value: " Wall "}.AsString())
	assert.True(t, Tag{Code: 0, Value: "seqend"}.Is(0, "SEQEND"))
	assert.True(t, IsXData(1000))
	assert.True(t, IsXData(1071))
	assert.False(t, IsXData(1072))
}
