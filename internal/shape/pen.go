package shape

import "github.com/example/shineydraw/internal/geom"

// Pen is a freeform stroke through an ordered list of points. It has no
// anchor capability, so point-based edits do not apply to it.
type Pen struct {
	base
	stroke
	points []geom.Point
}

// NewPen returns an empty pen stroke with a fresh identifier.
func NewPen() *Pen { return &Pen{base: newBase()} }

func (s *Pen) Name() string { return "pen" }

// AddPoint appends p unless it repeats the last point.
func (s *Pen) AddPoint(p geom.Point) {
	if n := len(s.points); n > 0 && s.points[n-1] == p {
		return
	}
	s.points = append(s.points, p)
}

// Points returns a copy of the stroke points.
func (s *Pen) Points() []geom.Point {
	out := make([]geom.Point, len(s.points))
	copy(out, s.points)
	return out
}

func (s *Pen) Bounds() geom.Rect { return geom.RectFromPoints(s.points...) }

func (s *Pen) HitTest(p geom.Point) bool {
	if len(s.points) == 0 {
		return false
	}
	local := ToLocal(s, p)
	tol := localTolerance(s.transform, s.strokeWidth)
	if len(s.points) == 1 {
		return geom.Distance(local, s.points[0]) <= tol
	}
	for i := 1; i < len(s.points); i++ {
		if geom.DistanceToSegment(local, s.points[i-1], s.points[i]) <= tol {
			return true
		}
	}
	return false
}
