package shape

import (
	"github.com/example/shineydraw/internal/geom"
	"github.com/gogpu/gg"
)

// Transform is the affine map applied on top of a shape's anchor points.
//
// For a local point p and the shape's reference point c (the centre of its
// local bounds) the world position is
//
//	world = c + R(Rotation)·(Scale·(p − c)) + Translation
//
// Invert, Matrix and every hit test use the same order.
type Transform struct {
	Translation geom.Point
	Rotation    float64
	Scale       float64
}

// Identity is the zero-translation, zero-rotation, unit-scale transform.
var Identity = Transform{Scale: 1}

// Translated returns a copy of t with its translation offset by delta.
func (t Transform) Translated(delta geom.Point) Transform {
	t.Translation = t.Translation.Add(delta)
	return t
}

// IsIdentity reports whether t leaves every point in place.
func (t Transform) IsIdentity() bool {
	return t.Translation == (geom.Point{}) && t.Rotation == 0 && t.scale() == 1
}

// scale treats the zero value as unit scale so an unset Transform is usable.
func (t Transform) scale() float64 {
	if t.Scale == 0 {
		return 1
	}
	return t.Scale
}

// Apply maps a local point to world space about ref.
func (t Transform) Apply(p, ref geom.Point) geom.Point {
	v := p.Sub(ref).Mul(t.scale()).Rotate(t.Rotation)
	return ref.Add(v).Add(t.Translation)
}

// Invert maps a world point back to local space about ref.
func (t Transform) Invert(p, ref geom.Point) geom.Point {
	v := p.Sub(t.Translation).Sub(ref).Rotate(-t.Rotation)
	return ref.Add(v.Div(t.scale()))
}

// Matrix returns the equivalent gg matrix about ref for rendering.
func (t Transform) Matrix(ref geom.Point) gg.Matrix {
	s := t.scale()
	return gg.Translate(ref.X+t.Translation.X, ref.Y+t.Translation.Y).
		Multiply(gg.Rotate(t.Rotation)).
		Multiply(gg.Scale(s, s)).
		Multiply(gg.Translate(-ref.X, -ref.Y))
}
