package entities

import (
	"math"

	"github.com/zooyer/golib/xmath"

	"github.com/yk35/netDXF/core"
)

// 边界路径类型标志（组码 92）
const (
	PathExternal  = 1
	PathPolyline  = 2
	PathDerived   = 4
	PathTextbox   = 8
	PathOutermost = 16
)

// 边类型（组码 72）
const (
	edgeLine    = 1
	edgeArc     = 2
	edgeEllipse = 3
	edgeSpline  = 4
)

// bulgeEpsilon 凸度小于该值按直线处理
const bulgeEpsilon = 1e-12

// checkCount 文件中的计数（路径数、顶点数、边数等）不能为负；pos 为计数标签的位置
func checkCount(pos core.Position, t core.Tag) (int, error) {
	n := t.AsInt()
	if n < 0 {
		return 0, core.NewInvalidValueError(pos, "negative count %d (group code %d)", n, t.Code)
	}
	return n, nil
}

// readBoundaryPaths 进入时当前标签为 (91, n)，读完 n 条边界路径后停在下一个未消费的标签上
func readBoundaryPaths(s *Session, n int) ([]*HatchBoundaryPath, error) {
	s.Next()
	var paths []*HatchBoundaryPath
	for i := 0; i < n; i++ {
		t, err := s.expect(92)
		if err != nil {
			return nil, err
		}
		path := &HatchBoundaryPath{Flags: t.AsInt()}
		if path.Flags&PathPolyline != 0 {
			path.Edges, err = readPolylinePath(s)
		} else {
			path.Edges, err = readEdgePath(s)
		}
		if err != nil {
			return nil, err
		}

		// 关联的源边界对象：97 计数，随后若干 330 句柄
		s.accept(97)
		for {
			if _, ok := s.accept(330); !ok {
				break
			}
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// readPolylinePath 多段线形式：72 是否有凸度，73 是否闭合，93 顶点数，之后为 10/20[/42]。
// 闭合路径保留为一条闭合多段线；开放路径按相邻顶点拆成直线和圆弧。
func readPolylinePath(s *Session) ([]Entity, error) {
	t, err := s.expect(72)
	if err != nil {
		return nil, err
	}
	hasBulge := t.AsInt() != 0
	if t, err = s.expect(73); err != nil {
		return nil, err
	}
	closed := t.AsInt() != 0
	pos := s.Pos()
	if t, err = s.expect(93); err != nil {
		return nil, err
	}
	count, err := checkCount(pos, t)
	if err != nil {
		return nil, err
	}

	var vertices []LWVertex
	for i := 0; i < count; i++ {
		x, err := s.expect(10)
		if err != nil {
			return nil, err
		}
		y, err := s.expect(20)
		if err != nil {
			return nil, err
		}
		v := LWVertex{Location: core.Point2{X: x.AsFloat(), Y: y.AsFloat()}}
		if hasBulge {
			if b, ok := s.accept(42); ok {
				v.Bulge = b.AsFloat()
			}
		}
		vertices = append(vertices, v)
	}

	if closed {
		pl := &LWPolyline{BaseEntity: newBase("LWPOLYLINE"), Vertices: vertices, Closed: true}
		return []Entity{pl}, nil
	}
	return explode(vertices), nil
}

// explode 把开放多段线拆成 len(vertices)-1 段：顶点凸度非零处生成圆弧，否则生成直线
func explode(vertices []LWVertex) []Entity {
	var edges []Entity
	for i := 0; i+1 < len(vertices); i++ {
		p1, p2 := vertices[i].Location, vertices[i+1].Location
		bulge := vertices[i].Bulge
		if xmath.Equal(bulge, 0, bulgeEpsilon) {
			edges = append(edges, &Line{
				BaseEntity: newBase("LINE"),
				Start:      p1.To3(0),
				End:        p2.To3(0),
			})
			continue
		}
		center, radius, start, end := arcFromBulge(p1, p2, bulge)
		edges = append(edges, &Arc{
			BaseEntity: newBase("ARC"),
			Center:     center.To3(0),
			Radius:     radius,
			StartAngle: start,
			EndAngle:   end,
		})
	}
	return edges
}

// arcFromBulge 凸度 = tan(圆心角 / 4)，正数为逆时针。返回的圆弧总是逆时针从 start 到 end（度）。
func arcFromBulge(p1, p2 core.Point2, bulge float64) (center core.Point2, radius, start, end float64) {
	var (
		theta = 4 * math.Atan(math.Abs(bulge))
		chord = p2.Sub(p1)
		phi   = chord.Angle()
	)
	radius = chord.Length() / (2 * math.Sin(theta/2))

	from, to := p1, p2
	if bulge < 0 {
		from, to = p2, p1
		phi += math.Pi
	}
	dir := phi + math.Pi/2 - theta/2
	center = core.Point2{
		X: from.X + radius*math.Cos(dir),
		Y: from.Y + radius*math.Sin(dir),
	}
	start = core.NormalizeAngle(from.Sub(center).Angle() * core.RadToDeg)
	end = core.NormalizeAngle(to.Sub(center).Angle() * core.RadToDeg)
	return center, radius, start, end
}

// readEdgePath 边列表形式：93 边数，每条边以 72 类型开头。样条边不支持，按结构跳过。
func readEdgePath(s *Session) ([]Entity, error) {
	pos := s.Pos()
	t, err := s.expect(93)
	if err != nil {
		return nil, err
	}
	count, err := checkCount(pos, t)
	if err != nil {
		return nil, err
	}

	var edges []Entity
	for i := 0; i < count; i++ {
		t, err := s.expect(72)
		if err != nil {
			return nil, err
		}
		var edge Entity
		switch t.AsInt() {
		case edgeLine:
			edge, err = readLineEdge(s)
		case edgeArc:
			edge, err = readArcEdge(s)
		case edgeEllipse:
			edge, err = readEllipseEdge(s)
		case edgeSpline:
			s.Logger.Debug("hatch spline edge skipped", "pos", s.Pos())
			err = skipSplineEdge(s)
		default:
			err = core.NewInvalidValueError(s.Pos(), "unknown hatch edge type %d", t.AsInt())
		}
		if err != nil {
			return nil, err
		}
		if edge != nil {
			edges = append(edges, edge)
		}
	}
	return edges, nil
}

// floats 依次读取给定组码的浮点值
func floats(s *Session, codes ...int) ([]float64, error) {
	values := make([]float64, len(codes))
	for i, code := range codes {
		t, err := s.expect(code)
		if err != nil {
			return nil, err
		}
		values[i] = t.AsFloat()
	}
	return values, nil
}

func readLineEdge(s *Session) (Entity, error) {
	v, err := floats(s, 10, 20, 11, 21)
	if err != nil {
		return nil, err
	}
	return &Line{
		BaseEntity: newBase("LINE"),
		Start:      core.Point{X: v[0], Y: v[1]},
		End:        core.Point{X: v[2], Y: v[3]},
	}, nil
}

// counterClockwise 读取组码 73；顺时针时把角度换成逆时针表示 (360-end, 360-start)
func counterClockwise(s *Session, start, end float64) (float64, float64, error) {
	t, err := s.expect(73)
	if err != nil {
		return 0, 0, err
	}
	if t.AsInt() == 0 {
		return 360 - end, 360 - start, nil
	}
	return start, end, nil
}

func readArcEdge(s *Session) (Entity, error) {
	v, err := floats(s, 10, 20, 40, 50, 51)
	if err != nil {
		return nil, err
	}
	start, end, err := counterClockwise(s, v[3], v[4])
	if err != nil {
		return nil, err
	}
	return &Arc{
		BaseEntity: newBase("ARC"),
		Center:     core.Point{X: v[0], Y: v[1]},
		Radius:     v[2],
		StartAngle: start,
		EndAngle:   end,
	}, nil
}

func readEllipseEdge(s *Session) (Entity, error) {
	v, err := floats(s, 10, 20, 11, 21, 40, 50, 51)
	if err != nil {
		return nil, err
	}
	start, end, err := counterClockwise(s, v[5], v[6])
	if err != nil {
		return nil, err
	}
	e := &Ellipse{
		BaseEntity: newBase("ELLIPSE"),
		Center:     core.Point{X: v[0], Y: v[1]},
		StartAngle: start,
		EndAngle:   end,
	}
	e.setAxis(core.Point2{X: v[2], Y: v[3]}, v[4])
	return e, nil
}

// skipSplineEdge 跳过样条边：阶数、有理、周期、节点、控制点（有理时带权重），以及可选的拟合数据
func skipSplineEdge(s *Session) error {
	if _, err := s.expect(94); err != nil {
		return err
	}
	t, err := s.expect(73)
	if err != nil {
		return err
	}
	rational := t.AsInt() != 0
	if _, err = s.expect(74); err != nil {
		return err
	}
	pos := s.Pos()
	if t, err = s.expect(95); err != nil {
		return err
	}
	knots, err := checkCount(pos, t)
	if err != nil {
		return err
	}
	pos = s.Pos()
	if t, err = s.expect(96); err != nil {
		return err
	}
	controls, err := checkCount(pos, t)
	if err != nil {
		return err
	}

	for i := 0; i < knots; i++ {
		if _, err = s.expect(40); err != nil {
			return err
		}
	}
	for i := 0; i < controls; i++ {
		if _, err = floats(s, 10, 20); err != nil {
			return err
		}
		if rational {
			s.accept(42)
		}
	}

	// 拟合数据：97 后面紧跟 11 才是拟合点数，否则这个 97 属于边界路径的源对象计数，
	// 其后的 330 由调用方继续跳过
	if _, ok := s.accept(97); ok {
		for {
			if _, ok := s.accept(11); !ok {
				break
			}
			if _, err = s.expect(21); err != nil {
				return err
			}
		}
		for _, code := range []int{12, 13} {
			if _, ok := s.accept(code); ok {
				if _, err = s.expect(code + 10); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
