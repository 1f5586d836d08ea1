package shape

import (
	"math"

	"github.com/example/shineydraw/internal/geom"
)

type twoPoints struct {
	a, b geom.Point
}

func (p *twoPoints) A() geom.Point { return p.a }

func (p *twoPoints) B() geom.Point { return p.b }

func (p *twoPoints) SetA(v geom.Point) { p.a = v }

func (p *twoPoints) SetB(v geom.Point) { p.b = v }

func (p *twoPoints) Bounds() geom.Rect { return geom.RectFromPoints(p.a, p.b) }

// Line is a straight segment from A to B.
type Line struct {
	base
	twoPoints
	stroke
}

// NewLine returns an empty line with a fresh identifier.
func NewLine() *Line { return &Line{base: newBase()} }

func (l *Line) Name() string { return "line" }

func (l *Line) HitTest(p geom.Point) bool {
	local := ToLocal(l, p)
	return geom.DistanceToSegment(local, l.a, l.b) <= localTolerance(l.transform, l.strokeWidth)
}

// Arrow is a line with an arrow head at B.
type Arrow struct {
	base
	twoPoints
	stroke
}

// NewArrow returns an empty arrow with a fresh identifier.
func NewArrow() *Arrow { return &Arrow{base: newBase()} }

func (a *Arrow) Name() string { return "arrow" }

func (a *Arrow) HitTest(p geom.Point) bool {
	local := ToLocal(a, p)
	return geom.DistanceToSegment(local, a.a, a.b) <= localTolerance(a.transform, a.strokeWidth)
}

// HeadPoints returns the two barb end points of the arrow head.
func (a *Arrow) HeadPoints() (geom.Point, geom.Point) {
	size := math.Max(a.strokeWidth*3, 10)
	angle := geom.AngleBetween(a.b, a.a)
	return geom.PointFromPolar(a.b, size, angle+math.Pi/6),
		geom.PointFromPolar(a.b, size, angle-math.Pi/6)
}

// Rect is an axis-aligned (in local space) rectangle spanned by A and B.
type Rect struct {
	base
	twoPoints
	stroke
	fill
}

// NewRect returns an empty rectangle with a fresh identifier.
func NewRect() *Rect { return &Rect{base: newBase()} }

func (r *Rect) Name() string { return "rect" }

func (r *Rect) HitTest(p geom.Point) bool {
	local := ToLocal(r, p)
	return geom.Inset(r.Bounds(), -localTolerance(r.transform, r.strokeWidth)).Contains(local)
}

// Ellipse is the ellipse inscribed in the rectangle spanned by A and B.
type Ellipse struct {
	base
	twoPoints
	stroke
	fill
}

// NewEllipse returns an empty ellipse with a fresh identifier.
func NewEllipse() *Ellipse { return &Ellipse{base: newBase()} }

func (e *Ellipse) Name() string { return "ellipse" }

func (e *Ellipse) HitTest(p geom.Point) bool {
	local := ToLocal(e, p)
	tol := localTolerance(e.transform, e.strokeWidth)
	b := geom.Inset(e.Bounds(), -tol)
	rx, ry := b.Width()/2, b.Height()/2
	if rx == 0 || ry == 0 {
		return b.Contains(local)
	}
	c := geom.Center(b)
	dx, dy := (local.X-c.X)/rx, (local.Y-c.Y)/ry
	return dx*dx+dy*dy <= 1
}
