package dxf

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yk35/netDXF/core"
	"github.com/yk35/netDXF/entities"
	"github.com/yk35/netDXF/tables"
)

// dxfText 把 "组码", "值" 交替的参数拼成 DXF 文本
func dxfText(pairs ...string) string {
	return strings.Join(pairs, "\n") + "\n"
}

var sample = dxfText(
	"0", "SECTION", "2", "HEADER",
	"9", "$ACADVER", "1", "AC1015",
	"9", "$EXTMIN", "10", "0", "20", "0", "30", "0",
	"9", "$HANDSEED", "5", "FFFF",
	"9", "$DWGCODEPAGE", "3", "ANSI_936",
	"0", "ENDSEC",

	"0", "SECTION", "2", "CLASSES",
	"0", "CLASS", "1", "ACDBDICTIONARYWDFLT", "2", "AcDbDictionaryWithDefault",
	"0", "ENDSEC",

	"0", "SECTION", "2", "TABLES",
	"0", "TABLE", "2", "VPORT", "70", "1",
	"0", "VPORT", "2", "*ACTIVE", "70", "0",
	"0", "ENDTAB",
	"0", "TABLE", "2", "LTYPE", "70", "1",
	"0", "LTYPE", "5", "14", "2", "Continuous", "70", "0", "3", "Solid line", "72", "65", "73", "0", "40", "0",
	"0", "ENDTAB",
	"0", "TABLE", "2", "LAYER", "70", "2",
	"0", "LAYER", "5", "10", "2", "0", "70", "0", "62", "7", "6", "Continuous",
	"0", "LAYER", "5", "11", "2", "Wall", "70", "0", "62", "-3", "6", "Continuous",
	"0", "ENDTAB",
	"0", "TABLE", "2", "STYLE", "70", "1",
	"0", "STYLE", "2", "Standard", "70", "0", "40", "0", "41", "1", "3", "txt.shx",
	"0", "ENDTAB",
	"0", "TABLE", "2", "APPID", "70", "1",
	"0", "APPID", "2", "ACAD", "70", "0",
	"0", "ENDTAB",
	"0", "ENDSEC",

	"0", "SECTION", "2", "BLOCKS",
	"0", "BLOCK", "5", "20", "8", "0", "2", "DoorBlock", "70", "2", "10", "0", "20", "0", "30", "0",
	"0", "LINE", "8", "Wall", "10", "0", "20", "0", "11", "0", "21", "2",
	"0", "ATTDEF", "8", "0", "10", "0", "20", "0", "40", "2.5", "1", "800", "2", "SIZE", "3", "Door size?", "70", "0",
	"0", "ENDBLK", "5", "21", "8", "0",
	"0", "BLOCK", "2", "doorblock",
	"0", "ENDBLK",
	"0", "ENDSEC",

	"0", "SECTION", "2", "ENTITIES",
	"0", "LINE", "5", "1A", "8", "Wall", "10", "0", "20", "0", "11", "10", "21", "0",
	"1001", "ACAD", "1000", "note",
	"0", "CIRCLE", "5", "1B", "8", "Ghost", "10", "5", "20", "5", "40", "2",
	"0", "INSERT", "5", "1C", "8", "0", "66", "1", "2", "DoorBlock", "10", "1", "20", "1",
	"0", "ATTRIB", "5", "1D", "8", "0", "10", "1", "20", "1", "40", "2.5", "1", "900", "2", "SIZE",
	"0", "SEQEND", "5", "1E", "8", "0",
	"0", "MTEXT", "5", "1F", "8", "0", "1", "skipped",
	"0", "LWPOLYLINE", "5", "22", "8", "Wall", "90", "2", "70", "0", "10", "0", "20", "0", "10", "5", "20", "5",
	"0", "TEXT", "5", "23", "8", "0", "1", "Hello", "10", "0", "20", "0", "40", "2.5",
	"0", "POLYLINE", "5", "24", "8", "0", "66", "1", "70", "8",
	"0", "VERTEX", "10", "0", "20", "0", "30", "0", "70", "32",
	"0", "VERTEX", "10", "1", "20", "1", "30", "1", "70", "32",
	"0", "SEQEND",
	"0", "ENDSEC",

	"0", "SECTION", "2", "OBJECTS",
	"0", "DICTIONARY", "5", "C", "330", "0",
	"0", "ENDSEC",
	"0", "EOF",
)

func TestLoad_Document(t *testing.T) {
	doc, err := Load(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, Header{Version: "AC1015", HandleSeed: "FFFF", CodePage: "ANSI_936"}, doc.Header)

	// 资源表
	wall, ok := doc.Tables.Layers.Get("WALL")
	require.True(t, ok)
	assert.Equal(t, core.Color(3), wall.Color)
	assert.False(t, wall.Visible)
	assert.Equal(t, "Continuous", wall.LineType.Name)
	assert.False(t, doc.Tables.LineTypes.IsDefault("Continuous"))
	assert.True(t, doc.Tables.Layers.IsDefault("Ghost"))
	assert.Equal(t, 3, doc.Tables.Layers.Len())
	assert.Equal(t, 1, doc.Tables.AppRegs.Len())

	standard, ok := doc.Tables.TextStyles.Get(tables.DefaultTextStyle)
	require.True(t, ok)
	assert.Equal(t, "txt.shx", standard.Font)

	// 块：同名的第二个定义被丢弃
	require.Equal(t, 1, doc.Blocks.Len())
	door, ok := doc.Blocks.Get("DoorBlock")
	require.True(t, ok)
	assert.Len(t, door.Entities, 1)
	assert.Contains(t, door.AttributeDefinitions, "SIZE")
	assert.Same(t, wall, door.Entities[0].Base().Layer)

	// 实体按出现顺序，未知的 MTEXT 被跳过
	var handles []string
	for _, e := range doc.Entities {
		handles = append(handles, e.Base().Handle)
	}
	assert.Equal(t, []string{"1A", "1B", "1C", "22", "23", "24"}, handles)

	require.Len(t, doc.Lines, 1)
	assert.Same(t, wall, doc.Lines[0].Layer)
	_, ok = doc.Lines[0].ExtendedData("ACAD")
	assert.True(t, ok)
	assert.Len(t, doc.Circles, 1)
	assert.Len(t, doc.LWPolylines, 1)
	assert.Len(t, doc.Polylines3D, 1)
	assert.Empty(t, doc.Polylines2D)

	require.Len(t, doc.Texts, 1)
	assert.Same(t, standard, doc.Texts[0].Style)

	require.Len(t, doc.Inserts, 1)
	ins := doc.Inserts[0]
	assert.Same(t, door, ins.Block)
	attr, ok := ins.Attribute("SIZE")
	require.True(t, ok)
	assert.Equal(t, "900", attr.Value)
	assert.Equal(t, "800", attr.Definition.Value)
	assert.Equal(t, "1E", ins.EndSequence.Handle)
}

// 所有实体引用的图层、线型都已登记在资源表里
func TestLoad_ReferencesResolved(t *testing.T) {
	doc, err := Load(strings.NewReader(sample))
	require.NoError(t, err)

	for _, e := range doc.Entities {
		b := e.Base()
		require.NotNil(t, b.Layer, b.Handle)
		require.NotNil(t, b.LineType, b.Handle)
		layer, ok := doc.Tables.Layers.Get(b.Layer.Name)
		assert.True(t, ok)
		assert.Same(t, layer, b.Layer)
		lineType, ok := doc.Tables.LineTypes.Get(b.LineType.Name)
		assert.True(t, ok)
		assert.Same(t, lineType, b.LineType)
	}
}

func TestLoad_Idempotent(t *testing.T) {
	first, err := Load(strings.NewReader(sample))
	require.NoError(t, err)
	second, err := Load(strings.NewReader(sample))
	require.NoError(t, err)

	all := cmp.Exporter(func(reflect.Type) bool { return true })
	assert.Empty(t, cmp.Diff(first.Header, second.Header))
	assert.Empty(t, cmp.Diff(first.Entities, second.Entities, all))
	assert.Empty(t, cmp.Diff(first.Tables.Layers.All(), second.Tables.Layers.All(), all))
	assert.Empty(t, cmp.Diff(first.Blocks.All(), second.Blocks.All(), all))
}

func TestLoad_Empty(t *testing.T) {
	doc, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, doc.Entities)
	assert.Equal(t, Header{}, doc.Header)
}

func TestLoad_InvalidVariable(t *testing.T) {
	_, err := Load(strings.NewReader(dxfText(
		"0", "SECTION", "2", "HEADER",
		"9", "$ACADVER", "70", "15",
		"0", "ENDSEC", "0", "EOF",
	)))

	var ve *core.InvalidVariableError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "$ACADVER", ve.Variable)
	assert.Equal(t, 70, ve.Code)
	assert.Equal(t, 7, ve.Pos.Line)
}

func TestLoad_UnknownSection(t *testing.T) {
	_, err := Load(strings.NewReader(dxfText(
		"0", "SECTION", "2", "THUMBNAILIMAGE", "90", "0", "0", "ENDSEC", "0", "EOF",
	)), WithSource("thumb.dxf"))

	var se *core.UnknownSectionError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "THUMBNAILIMAGE", se.Section)
	assert.Equal(t, core.Position{Source: "thumb.dxf", Line: 3}, se.Pos)
}

func TestLoad_MissingSectionName(t *testing.T) {
	_, err := Load(strings.NewReader(dxfText("0", "SECTION")))

	var me *core.MissingStructureError
	assert.True(t, errors.As(err, &me))
}

func TestLoad_FormatError(t *testing.T) {
	_, err := Load(strings.NewReader(dxfText("0", "SECTION", "abc", "HEADER")), WithSource("bad.dxf"))

	var fe *core.FormatError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, 3, fe.Pos.Line)
	assert.Contains(t, err.Error(), "bad.dxf:3")
}

func TestLoad_MissingEndSec(t *testing.T) {
	_, err := Load(strings.NewReader(dxfText(
		"0", "SECTION", "2", "ENTITIES",
		"0", "LINE", "10", "0",
		"0", "EOF",
	)))

	var me *core.MissingStructureError
	require.True(t, errors.As(err, &me))
	assert.Equal(t, "ENDSEC", me.Expected)
}

func TestLoad_ErrorAborts(t *testing.T) {
	doc, err := Load(strings.NewReader(dxfText(
		"0", "SECTION", "2", "ENTITIES",
		"0", "LINE", "10", "0",
		"0", "INSERT", "2", "Nowhere",
		"0", "ENDSEC", "0", "EOF",
	)))

	assert.Nil(t, doc)
	var re *core.InvalidReferenceError
	assert.True(t, errors.As(err, &re))
}

func TestLoad_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := Load(strings.NewReader(sample), WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "unknown entity skipped")
	assert.Contains(t, out, "type=MTEXT")
	assert.Contains(t, out, "duplicate block discarded")
	assert.Contains(t, out, "section=CLASSES")
}

func TestOpen(t *testing.T) {
	name := filepath.Join(t.TempDir(), "sample.dxf")
	require.NoError(t, os.WriteFile(name, []byte(sample), 0o644))

	doc, err := Open(name)
	require.NoError(t, err)
	assert.Len(t, doc.Entities, 6)

	bad := filepath.Join(t.TempDir(), "bad.dxf")
	require.NoError(t, os.WriteFile(bad, []byte(dxfText("0", "SECTION", "2", "BOGUS")), 0o644))
	_, err = Open(bad)
	var se *core.UnknownSectionError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, bad, se.Pos.Source)

	_, err = Open(filepath.Join(t.TempDir(), "missing.dxf"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDocument_AddKinds(t *testing.T) {
	var doc Document
	doc.add(&entities.Arc{})
	doc.add(&entities.Ellipse{})
	doc.add(&entities.Point{})
	doc.add(&entities.Face3d{})
	doc.add(&entities.Solid{})
	doc.add(&entities.PolyfaceMesh{})
	doc.add(&entities.Polyline2D{})
	doc.add(&entities.AttributeDefinition{})
	doc.add(&entities.Hatch{})

	assert.Len(t, doc.Entities, 9)
	assert.Len(t, doc.Arcs, 1)
	assert.Len(t, doc.Ellipses, 1)
	assert.Len(t, doc.Points, 1)
	assert.Len(t, doc.Faces3d, 1)
	assert.Len(t, doc.Solids, 1)
	assert.Len(t, doc.PolyfaceMeshes, 1)
	assert.Len(t, doc.Polylines2D, 1)
	assert.Len(t, doc.AttributeDefinitions, 1)
	assert.Len(t, doc.Hatches, 1)
}
