package shape

import (
	"math"

	"github.com/example/shineydraw/internal/geom"
)

// Angle is a three-point shape: two arms A-B and B-C meeting at vertex B.
type Angle struct {
	base
	stroke
	a, b, c geom.Point
}

// NewAngle returns an empty angle with a fresh identifier.
func NewAngle() *Angle { return &Angle{base: newBase()} }

func (s *Angle) Name() string { return "angle" }

func (s *Angle) A() geom.Point { return s.a }

func (s *Angle) B() geom.Point { return s.b }

func (s *Angle) C() geom.Point { return s.c }

func (s *Angle) SetA(p geom.Point) { s.a = p }

func (s *Angle) SetB(p geom.Point) { s.b = p }

func (s *Angle) SetC(p geom.Point) { s.c = p }

func (s *Angle) Bounds() geom.Rect { return geom.RectFromPoints(s.a, s.b, s.c) }

func (s *Angle) HitTest(p geom.Point) bool {
	local := ToLocal(s, p)
	tol := localTolerance(s.transform, s.strokeWidth)
	return geom.DistanceToSegment(local, s.a, s.b) <= tol ||
		geom.DistanceToSegment(local, s.b, s.c) <= tol
}

// Degrees returns the opening angle at B in degrees, in [0, 180].
func (s *Angle) Degrees() float64 {
	d := geom.AngleBetween(s.b, s.c) - geom.AngleBetween(s.b, s.a)
	for d < 0 {
		d += 2 * math.Pi
	}
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d * 180 / math.Pi
}
