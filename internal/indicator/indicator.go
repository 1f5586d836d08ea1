// Package indicator lays out the resize handles drawn around the selected
// shape.
//
// For a two-point shape the handles sit on its bounding box:
//
//	[TL]---[T]---[TR]
//	 |              |
//	[L]            [R]
//	 |              |
//	[BL]---[B]---[BR]
//
// A three-point shape gets one handle on each anchor instead.
package indicator

import (
	"image/color"

	"github.com/example/shineydraw/internal/geom"
)

// DefaultHandleSize is the side length of a drawn handle in pixels.
const DefaultHandleSize = 10

// Kind classifies a handle; it is also the hit-test priority order.
type Kind int

const (
	KindPoint Kind = iota
	KindCorner
	KindEdge
)

// Position identifies where a handle sits. Point handles use PointA..PointC.
type Position int

const (
	PointA Position = iota
	PointB
	PointC
	TopLeft
	TopRight
	BottomLeft
	BottomRight
	Top
	Left
	Right
	Bottom
)

// Handle is one hit/draw region.
type Handle struct {
	Kind     Kind
	Position Position
	Rect     geom.Rect
}

// Layout returns the handles for a shape whose world-space anchor points are
// pts, sized size*size, ordered point handles first, then corners, then edges.
// Point lists of any other length get no handles.
func Layout(pts []geom.Point, size float64) []Handle {
	switch len(pts) {
	case 2:
		b := geom.RectFromPoints(pts...)
		c := geom.Center(b)
		return []Handle{
			{KindCorner, TopLeft, geom.RectAround(b.Min, size)},
			{KindCorner, TopRight, geom.RectAround(geom.Pt(b.Max.X, b.Min.Y), size)},
			{KindCorner, BottomLeft, geom.RectAround(geom.Pt(b.Min.X, b.Max.Y), size)},
			{KindCorner, BottomRight, geom.RectAround(b.Max, size)},
			{KindEdge, Top, geom.RectAround(geom.Pt(c.X, b.Min.Y), size)},
			{KindEdge, Left, geom.RectAround(geom.Pt(b.Min.X, c.Y), size)},
			{KindEdge, Right, geom.RectAround(geom.Pt(b.Max.X, c.Y), size)},
			{KindEdge, Bottom, geom.RectAround(geom.Pt(c.X, b.Max.Y), size)},
		}
	case 3:
		return []Handle{
			{KindPoint, PointA, geom.RectAround(pts[0], size)},
			{KindPoint, PointB, geom.RectAround(pts[1], size)},
			{KindPoint, PointC, geom.RectAround(pts[2], size)},
		}
	}
	return nil
}

// HitTest returns the first handle containing p.
func HitTest(handles []Handle, p geom.Point) (Handle, bool) {
	for _, h := range handles {
		if h.Rect.Contains(p) {
			return h, true
		}
	}
	return Handle{}, false
}

// Indicator is the selection chrome driven by the selection tool.
type Indicator interface {
	// Update shows handles for the given world-space anchor points.
	Update(pts []geom.Point, col color.RGBA)
	// Clear removes the outline and every handle.
	Clear()
}

// Handles is an Indicator that keeps the current layout for a renderer.
type Handles struct {
	Size float64

	outline geom.Rect
	handles []Handle
	color   color.RGBA
	visible bool
}

// NewHandles returns an empty indicator using size for each handle; zero
// selects DefaultHandleSize.
func NewHandles(size float64) *Handles {
	if size <= 0 {
		size = DefaultHandleSize
	}
	return &Handles{Size: size}
}

func (h *Handles) Update(pts []geom.Point, col color.RGBA) {
	if len(pts) == 0 {
		h.Clear()
		return
	}
	h.outline = geom.RectFromPoints(pts...)
	h.handles = Layout(pts, h.Size)
	h.color = col
	h.visible = true
}

func (h *Handles) Clear() {
	h.outline = geom.Rect{}
	h.handles = nil
	h.visible = false
}

// Visible reports whether a selection is shown.
func (h *Handles) Visible() bool { return h.visible }

// Outline returns the dashed selection rectangle.
func (h *Handles) Outline() geom.Rect { return h.outline }

// Color returns the handle colour.
func (h *Handles) Color() color.RGBA { return h.color }

// Handles returns a copy of the current handles.
func (h *Handles) Handles() []Handle {
	out := make([]Handle, len(h.handles))
	copy(out, h.handles)
	return out
}
