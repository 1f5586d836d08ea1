package tool

import (
	"image/color"

	"github.com/example/shineydraw/internal/drawing"
	"github.com/example/shineydraw/internal/geom"
	"github.com/example/shineydraw/internal/indicator"
	"github.com/example/shineydraw/internal/shape"
)

// DefaultHitSize is the side of the square, in pixels, around each handle
// that starts a resize.
const DefaultHitSize = 24

// Context is passed to every tool call. It carries the operation stack, the
// user settings and the single selection slot.
type Context struct {
	Stack    *drawing.Stack
	Settings shape.Settings

	// Indicator, when set, is kept in sync with the selection.
	Indicator   indicator.Indicator
	HandleColor color.RGBA
	HitSize     float64

	// OnSelectionChanged is called after the selection slot changes.
	OnSelectionChanged func(shape.Shape)
	// OnTapSelected is called when the already selected shape is tapped.
	// When nil the selection tool deselects instead.
	OnTapSelected func(shape.Shape)
	// OnDirty is the redraw signal for uncommitted preview changes.
	OnDirty func()

	selected shape.Shape
}

// NewContext returns a context over stack with default settings.
func NewContext(stack *drawing.Stack) *Context {
	return &Context{
		Stack:       stack,
		Settings:    shape.DefaultSettings(),
		HandleColor: color.RGBA{0, 0, 0, 255},
		HitSize:     DefaultHitSize,
	}
}

// Drawing returns the drawing behind the stack.
func (c *Context) Drawing() *drawing.Drawing { return c.Stack.Drawing() }

// Selected returns the selected shape or nil.
func (c *Context) Selected() shape.Shape { return c.selected }

// SetSelection replaces the selection. Selecting is not an operation and is
// not recorded for undo.
func (c *Context) SetSelection(s shape.Shape) {
	if c.selected == s {
		c.RefreshSelection()
		return
	}
	c.selected = s
	c.RefreshSelection()
	if c.OnSelectionChanged != nil {
		c.OnSelectionChanged(s)
	}
	c.MarkDirty()
}

// RefreshSelection drops a selection whose shape left the drawing (for
// example after undoing its creation) and redraws the indicator.
func (c *Context) RefreshSelection() {
	if c.selected != nil {
		if _, ok := c.Drawing().Find(c.selected.ID()); !ok {
			c.selected = nil
			if c.OnSelectionChanged != nil {
				c.OnSelectionChanged(nil)
			}
		}
	}
	if c.Indicator == nil {
		return
	}
	if c.selected == nil {
		c.Indicator.Clear()
		return
	}
	c.Indicator.Update(worldAnchors(c.selected), c.HandleColor)
}

// MarkDirty raises the redraw signal.
func (c *Context) MarkDirty() {
	if c.OnDirty != nil {
		c.OnDirty()
	}
}

func (c *Context) hitSize() float64 {
	if c.HitSize <= 0 {
		return DefaultHitSize
	}
	return c.HitSize
}

// worldAnchors returns the anchor points of s in world space, or the corners
// of its world bounds when it has no anchors.
func worldAnchors(s shape.Shape) []geom.Point {
	pts, ok := shape.AnchorPoints(s)
	if !ok {
		c := geom.Corners(shape.WorldBounds(s))
		return c[:]
	}
	out := make([]geom.Point, len(pts))
	for i, p := range pts {
		out[i] = shape.ToWorld(s, p)
	}
	return out
}
