// Package geom holds the point and rectangle math shared by shapes and tools.
// Points and rectangles are gg's own types, so shape geometry goes to the
// rasterizer without conversion.
package geom

import (
	"math"

	"github.com/gogpu/gg"
)

// Point represents a 2D point or vector in screen coordinates.
type Point = gg.Point

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point { return gg.Pt(x, y) }

// Distance returns the Euclidean distance between p1 and p2.
func Distance(p1, p2 Point) float64 { return p1.Distance(p2) }

// Midpoint returns the arithmetic mean of two points.
func Midpoint(p1, p2 Point) Point { return p1.Lerp(p2, 0.5) }

// Midpoint3 returns the arithmetic mean of three points.
func Midpoint3(p1, p2, p3 Point) Point { return p1.Add(p2).Add(p3).Div(3) }

// Centroid returns the mean of pts. An empty list yields the origin.
func Centroid(pts ...Point) Point {
	if len(pts) == 0 {
		return Point{}
	}
	var sum Point
	for _, p := range pts {
		sum = sum.Add(p)
	}
	return sum.Div(float64(len(pts)))
}

// AngleBetween returns the signed angle of the vector origin->p in radians,
// in the range (-π, π]. Coincident points yield 0.
func AngleBetween(origin, p Point) float64 {
	d := p.Sub(origin)
	if d.X == 0 && d.Y == 0 {
		return 0
	}
	a := math.Atan2(d.Y, d.X)
	if a == -math.Pi {
		return math.Pi
	}
	return a
}

// PointFromPolar returns origin + radius*(cos θ, sin θ).
func PointFromPolar(origin Point, radius, angle float64) Point {
	return origin.Add(Pt(radius*math.Cos(angle), radius*math.Sin(angle)))
}

// Rotate returns p rotated about pivot by angle radians. Positive angles rotate
// counter-clockwise in a y-up frame (clockwise on a y-down screen).
func Rotate(p, pivot Point, angle float64) Point {
	if p == pivot {
		return p
	}
	return pivot.Add(p.Sub(pivot).Rotate(angle))
}
