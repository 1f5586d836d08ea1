package geom

import (
	"math"

	"github.com/gogpu/gg"
)

// Rect is an axis-aligned rectangle with inclusive Min and Max.
type Rect = gg.Rect

// RectFromPoints returns the smallest rectangle containing all pts.
func RectFromPoints(pts ...Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := gg.NewRect(pts[0], pts[0])
	for _, p := range pts[1:] {
		r = r.Union(gg.NewRect(p, p))
	}
	return r
}

// RectAround returns a size*size square centred on p.
func RectAround(p Point, size float64) Rect {
	h := Pt(size/2, size/2)
	return Rect{Min: p.Sub(h), Max: p.Add(h)}
}

// Center returns the midpoint of r.
func Center(r Rect) Point { return Midpoint(r.Min, r.Max) }

// Empty reports whether r has no area.
func Empty(r Rect) bool { return r.Width() <= 0 || r.Height() <= 0 }

// Inset shrinks r by n on every side; negative n grows it. An axis that
// would invert collapses onto its centre.
func Inset(r Rect, n float64) Rect {
	out := Rect{Min: Pt(r.Min.X+n, r.Min.Y+n), Max: Pt(r.Max.X-n, r.Max.Y-n)}
	if out.Min.X > out.Max.X {
		c := (r.Min.X + r.Max.X) / 2
		out.Min.X, out.Max.X = c, c
	}
	if out.Min.Y > out.Max.Y {
		c := (r.Min.Y + r.Max.Y) / 2
		out.Min.Y, out.Max.Y = c, c
	}
	return out
}

// Corners returns the four corners of r clockwise from the top-left.
func Corners(r Rect) [4]Point {
	return [4]Point{r.Min, Pt(r.Max.X, r.Min.Y), r.Max, Pt(r.Min.X, r.Max.Y)}
}

// DistanceToSegment returns the distance from p to the segment a-b.
func DistanceToSegment(p, a, b Point) float64 {
	ab := b.Sub(a)
	l2 := ab.LengthSquared()
	if l2 == 0 {
		return Distance(p, a)
	}
	t := math.Max(0, math.Min(1, p.Sub(a).Dot(ab)/l2))
	return Distance(p, a.Lerp(b, t))
}
