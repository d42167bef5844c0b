package dxf

import (
	"io"
	"os"
	"strings"

	"github.com/yk35/netDXF/core"
	"github.com/yk35/netDXF/entities"
	"github.com/yk35/netDXF/tables"
)

// Document 解码结果：头变量、资源表、块表和按种类归集的实体
type Document struct {
	Header Header
	Tables *tables.Registry
	Blocks *tables.Table[*entities.Block]

	// Entities 保持文件中的出现顺序
	Entities []entities.Entity

	Arcs                 []*entities.Arc
	Circles              []*entities.Circle
	Ellipses             []*entities.Ellipse
	Points               []*entities.Point
	Faces3d              []*entities.Face3d
	Solids               []*entities.Solid
	Inserts              []*entities.Insert
	Lines                []*entities.Line
	Polylines2D          []*entities.Polyline2D
	Polylines3D          []*entities.Polyline3D
	PolyfaceMeshes       []*entities.PolyfaceMesh
	LWPolylines          []*entities.LWPolyline
	Texts                []*entities.Text
	AttributeDefinitions []*entities.AttributeDefinition
	Hatches              []*entities.Hatch
}

func (d *Document) add(ent entities.Entity) {
	d.Entities = append(d.Entities, ent)
	switch e := ent.(type) {
	case *entities.Arc:
		d.Arcs = append(d.Arcs, e)
	case *entities.Circle:
		d.Circles = append(d.Circles, e)
	case *entities.Ellipse:
		d.Ellipses = append(d.Ellipses, e)
	case *entities.Point:
		d.Points = append(d.Points, e)
	case *entities.Face3d:
		d.Faces3d = append(d.Faces3d, e)
	case *entities.Solid:
		d.Solids = append(d.Solids, e)
	case *entities.Insert:
		d.Inserts = append(d.Inserts, e)
	case *entities.Line:
		d.Lines = append(d.Lines, e)
	case *entities.Polyline2D:
		d.Polylines2D = append(d.Polylines2D, e)
	case *entities.Polyline3D:
		d.Polylines3D = append(d.Polylines3D, e)
	case *entities.PolyfaceMesh:
		d.PolyfaceMeshes = append(d.PolyfaceMeshes, e)
	case *entities.LWPolyline:
		d.LWPolylines = append(d.LWPolylines, e)
	case *entities.Text:
		d.Texts = append(d.Texts, e)
	case *entities.AttributeDefinition:
		d.AttributeDefinitions = append(d.AttributeDefinitions, e)
	case *entities.Hatch:
		d.Hatches = append(d.Hatches, e)
	}
}

// decoder 一次解码会话
type decoder struct {
	doc *Document
	s   *entities.Session
}

func (d *decoder) tag() core.Tag { return d.s.Tag() }

// endSection 要求当前标签为 (0, ENDSEC)
func (d *decoder) endSection() error {
	if d.tag().Is(0, "ENDSEC") {
		return nil
	}
	if err := d.s.Scanner.Err(); err != nil {
		return err
	}
	return core.NewMissingStructureError(d.s.Pos(), "ENDSEC", d.tag())
}

func (d *decoder) skipSection(name string) error {
	d.s.Logger.Debug("section skipped", "section", name)
	for d.s.Next() && !d.tag().Is(0, "ENDSEC") {
	}
	return d.endSection()
}

func (d *decoder) parseTables() error {
	for d.s.Next() {
		tag := d.tag()
		if tag.Is(0, "ENDSEC") {
			break
		}
		// Decode 返回时停在 ENDTAB，由下一轮 Next 越过
		if tag.Is(0, "TABLE") {
			if err := d.s.Tables.Decode(d.s.Scanner, d.s.Logger); err != nil {
				return err
			}
		}
	}
	return d.endSection()
}

func (d *decoder) parseBlocks() error {
	d.s.Next()
	for {
		tag := d.tag()
		if tag.Is(0, "ENDSEC") || tag.IsEOF() {
			break
		}
		if !tag.Is(0, "BLOCK") {
			d.s.Next()
			continue
		}
		block, err := entities.DecodeBlock(d.s)
		if err != nil {
			return err
		}
		if !d.s.Blocks.Add(block) {
			d.s.Logger.Debug("duplicate block discarded", "name", block.Name)
		}
	}
	return d.endSection()
}

func (d *decoder) parseEntities() error {
	d.s.Next()
	for {
		tag := d.tag()
		if tag.Is(0, "ENDSEC") || tag.IsEOF() {
			break
		}
		if tag.Code != 0 {
			d.s.Next()
			continue
		}
		ent, err := d.s.DecodeEntity()
		if err != nil {
			return err
		}
		if ent != nil {
			d.doc.add(ent)
		}
	}
	return d.endSection()
}

// run 段分发：读到 (0, EOF) 或流结束为止
func (d *decoder) run() error {
	s := d.s
	s.Next()
	for !d.tag().IsEOF() {
		if !d.tag().Is(0, "SECTION") {
			s.Next()
			continue
		}
		s.Next()
		name := strings.ToUpper(d.tag().AsString())
		pos := s.Pos()

		var err error
		switch name {
		case "HEADER":
			err = d.parseHeader()
		case "CLASSES", "OBJECTS":
			err = d.skipSection(name)
		case "TABLES":
			err = d.parseTables()
		case "BLOCKS":
			err = d.parseBlocks()
		case "ENTITIES":
			err = d.parseEntities()
		default:
			switch {
			case s.Scanner.Err() != nil:
				err = s.Scanner.Err()
			case d.tag().IsEOF():
				err = core.NewMissingStructureError(pos, "section name", d.tag())
			default:
				err = core.NewUnknownSectionError(pos, name)
			}
		}
		if err != nil {
			return err
		}
		s.Next()
	}
	return s.Scanner.Err()
}

func Open(filename string, opts ...Option) (doc *Document, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return
	}

	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()

	return Load(file, append([]Option{WithSource(filename)}, opts...)...)
}

// Load 从流中解码一个完整文档。任何错误都会中止解码，不返回部分结果。
func Load(reader io.Reader, opts ...Option) (*Document, error) {
	o := newOptions(opts)
	var (
		scanner = core.NewNamedScanner(reader, o.source)
		session = entities.NewSession(scanner, o.logger)
		d       = &decoder{
			s: session,
			doc: &Document{
				Tables:   session.Tables,
				Blocks:   session.Blocks,
				Entities: make([]entities.Entity, 0, 1024),
			},
		}
	)

	if err := d.run(); err != nil {
		return nil, err
	}
	return d.doc, nil
}
