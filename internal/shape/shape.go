// Package shape defines the drawable shapes and the capability interfaces
// tools use to edit them.
//
// Anchor points are stored in local space; the shape's Transform is applied
// on top of them at render and hit-test time. Capabilities are discovered with
// the As* helpers, which never panic on a shape that lacks them.
package shape

import (
	"image/color"
	"math"

	"github.com/example/shineydraw/internal/geom"
	"github.com/google/uuid"
)

// minHitTolerance is the smallest distance, in world pixels, at which a
// stroke is still considered hit.
const minHitTolerance = 6

// Shape is implemented by every drawable element of a drawing.
type Shape interface {
	ID() uuid.UUID
	Name() string
	Transform() Transform
	SetTransform(Transform)
	// Bounds returns the local-space bounding rectangle of the anchor points.
	Bounds() geom.Rect
	// HitTest reports whether the world-space point p touches the shape.
	HitTest(p geom.Point) bool
}

// TwoPoint is implemented by shapes defined by dragging from A to B. Shapes
// that also carry a C point are three-point shapes and are not reported by
// AsTwoPoint.
type TwoPoint interface {
	Shape
	A() geom.Point
	B() geom.Point
	SetA(geom.Point)
	SetB(geom.Point)
}

// ThreePoint is implemented by shapes with anchors A, B and C where B is the
// vertex.
type ThreePoint interface {
	Shape
	A() geom.Point
	B() geom.Point
	C() geom.Point
	SetA(geom.Point)
	SetB(geom.Point)
	SetC(geom.Point)
}

// StrokeStyled is implemented by shapes with a stroke colour and width.
type StrokeStyled interface {
	Shape
	StrokeColor() color.RGBA
	SetStrokeColor(color.RGBA)
	StrokeWidth() float64
	SetStrokeWidth(float64)
}

// FillStyled is implemented by shapes with a fill colour.
type FillStyled interface {
	Shape
	FillColor() color.RGBA
	SetFillColor(color.RGBA)
}

// StandardStyled is implemented by shapes with both stroke and fill state.
type StandardStyled interface {
	StrokeStyled
	FillStyled
}

// AsTwoPoint returns s as a TwoPoint when it is one.
func AsTwoPoint(s Shape) (TwoPoint, bool) {
	if s == nil {
		return nil, false
	}
	if _, three := s.(ThreePoint); three {
		return nil, false
	}
	tp, ok := s.(TwoPoint)
	return tp, ok
}

// AsThreePoint returns s as a ThreePoint when it is one.
func AsThreePoint(s Shape) (ThreePoint, bool) {
	if s == nil {
		return nil, false
	}
	tp, ok := s.(ThreePoint)
	return tp, ok
}

// AsStrokeStyled returns s as a StrokeStyled when it is one.
func AsStrokeStyled(s Shape) (StrokeStyled, bool) {
	if s == nil {
		return nil, false
	}
	st, ok := s.(StrokeStyled)
	return st, ok
}

// AsFillStyled returns s as a FillStyled when it is one.
func AsFillStyled(s Shape) (FillStyled, bool) {
	if s == nil {
		return nil, false
	}
	st, ok := s.(FillStyled)
	return st, ok
}

// AsStandardStyled returns s as a StandardStyled when it is one.
func AsStandardStyled(s Shape) (StandardStyled, bool) {
	if s == nil {
		return nil, false
	}
	st, ok := s.(StandardStyled)
	return st, ok
}

// AnchorPoints returns the local anchor points of a two- or three-point
// shape in A, B, C order.
func AnchorPoints(s Shape) ([]geom.Point, bool) {
	if tp, ok := AsThreePoint(s); ok {
		return []geom.Point{tp.A(), tp.B(), tp.C()}, true
	}
	if tp, ok := AsTwoPoint(s); ok {
		return []geom.Point{tp.A(), tp.B()}, true
	}
	return nil, false
}

// SetAnchorPoints writes pts back into s. It reports false, leaving s
// untouched, when s is not point-capable or len(pts) does not match.
func SetAnchorPoints(s Shape, pts []geom.Point) bool {
	if tp, ok := AsThreePoint(s); ok {
		if len(pts) != 3 {
			return false
		}
		tp.SetA(pts[0])
		tp.SetB(pts[1])
		tp.SetC(pts[2])
		return true
	}
	if tp, ok := AsTwoPoint(s); ok {
		if len(pts) != 2 {
			return false
		}
		tp.SetA(pts[0])
		tp.SetB(pts[1])
		return true
	}
	return false
}

// Reference returns the pivot the shape's Transform rotates and scales about.
func Reference(s Shape) geom.Point {
	return geom.Center(s.Bounds())
}

// ToWorld maps a local point of s into world space.
func ToWorld(s Shape, p geom.Point) geom.Point {
	return s.Transform().Apply(p, Reference(s))
}

// ToLocal maps a world point into the local space of s.
func ToLocal(s Shape, p geom.Point) geom.Point {
	return s.Transform().Invert(p, Reference(s))
}

// WorldBounds returns the world-space bounding box of s.
func WorldBounds(s Shape) geom.Rect {
	b := s.Bounds()
	c := geom.Corners(b)
	return geom.RectFromPoints(ToWorld(s, c[0]), ToWorld(s, c[1]), ToWorld(s, c[2]), ToWorld(s, c[3]))
}

type base struct {
	id        uuid.UUID
	transform Transform
}

func newBase() base {
	return base{id: uuid.New(), transform: Identity}
}

func (b *base) ID() uuid.UUID { return b.id }

func (b *base) Transform() Transform { return b.transform }

func (b *base) SetTransform(t Transform) { b.transform = t }

// localTolerance converts a world hit tolerance into local units.
func localTolerance(t Transform, strokeWidth float64) float64 {
	tol := math.Max(strokeWidth/2, minHitTolerance)
	return tol / t.scale()
}
