package entities

import (
	"math"

	"github.com/yk35/netDXF/core"
)

// readPatternLines 进入时当前标签为 (78, n)。
// 文件中的角度和偏移是全局坐标，这里转成相对填充角度的局部值，并按比例归一。
func readPatternLines(s *Session, n int, hatchAngle, scale float64) ([]HatchPatternLine, error) {
	if scale == 0 {
		scale = 1
	}
	var (
		rad      = hatchAngle * core.DegToRad
		sin, cos = math.Sin(rad), math.Cos(rad)
	)
	var lines []HatchPatternLine

	s.Next()
	for i := 0; i < n; i++ {
		var (
			line   HatchPatternLine
			values [5]float64
		)
		for j, code := range [5]int{53, 43, 44, 45, 46} {
			t, err := s.expect(code)
			if err != nil {
				return nil, err
			}
			values[j] = t.AsFloat()
		}
		line.Angle = values[0] - hatchAngle
		line.Origin = core.Point2{X: values[1], Y: values[2]}
		ox, oy := values[3], values[4]
		line.Offset = core.Point2{
			X: (cos*ox + sin*oy) / scale,
			Y: (-sin*ox + cos*oy) / scale,
		}

		pos := s.Pos()
		t, err := s.expect(79)
		if err != nil {
			return nil, err
		}
		dashes, err := checkCount(pos, t)
		if err != nil {
			return nil, err
		}
		for j := 0; j < dashes; j++ {
			d, err := s.expect(49)
			if err != nil {
				return nil, err
			}
			line.DashPattern = append(line.DashPattern, d.AsFloat()/scale)
		}
		lines = append(lines, line)
	}
	return lines, nil
}
