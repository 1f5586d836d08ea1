// Package tool implements the interaction modes of the drawing surface.
//
// Every tool consumes the same gesture protocol. Gesture events for a pointer
// arrive as start, any number of continues, then end or cancel; events that
// arrive out of that order are ignored. Tools preview changes by mutating
// shapes directly and commit an Operation to the context's stack when the
// gesture completes.
package tool

import (
	"github.com/example/shineydraw/internal/geom"
	"github.com/example/shineydraw/internal/shape"
)

// Tool names used by the registry and the host bindings.
const (
	NameLine      = "line"
	NameArrow     = "arrow"
	NameRect      = "rect"
	NameEllipse   = "ellipse"
	NameAngle     = "angle"
	NamePen       = "pen"
	NameSelection = "selection"
)

// Tool is one interaction mode. Exactly one tool is active at a time.
type Tool interface {
	Name() string

	// Activate is called when the tool becomes active and Deactivate when
	// another tool replaces it.
	Activate(ctx *Context)
	Deactivate(ctx *Context)

	Tap(ctx *Context, p geom.Point)

	DragStart(ctx *Context, p geom.Point)
	DragContinue(ctx *Context, p, velocity geom.Point)
	DragEnd(ctx *Context, p geom.Point)
	DragCancel(ctx *Context, p geom.Point)

	PinchStart(ctx *Context, start, end geom.Point, scale float64)
	PinchContinue(ctx *Context, start, end geom.Point, scale float64)
	PinchEnd(ctx *Context, start, end geom.Point, scale float64)
	PinchCancel(ctx *Context, start, end geom.Point, scale float64)

	RotateStart(ctx *Context, angle float64)
	RotateContinue(ctx *Context, angle float64)
	RotateEnd(ctx *Context, angle float64)
	RotateCancel(ctx *Context, angle float64)

	// ShapeInProgress returns the uncommitted shape to draw on the transient
	// layer, or nil.
	ShapeInProgress() shape.Shape

	// ApplySettings is called when the user changes the style settings.
	ApplySettings(ctx *Context, settings shape.Settings)
}

// Nop implements every Tool method except Name as a no-op. Tools embed it
// and override the gestures they support.
type Nop struct{}

func (Nop) Activate(*Context)                                       {}
func (Nop) Deactivate(*Context)                                     {}
func (Nop) Tap(*Context, geom.Point)                                {}
func (Nop) DragStart(*Context, geom.Point)                          {}
func (Nop) DragContinue(*Context, geom.Point, geom.Point)           {}
func (Nop) DragEnd(*Context, geom.Point)                            {}
func (Nop) DragCancel(*Context, geom.Point)                         {}
func (Nop) PinchStart(*Context, geom.Point, geom.Point, float64)    {}
func (Nop) PinchContinue(*Context, geom.Point, geom.Point, float64) {}
func (Nop) PinchEnd(*Context, geom.Point, geom.Point, float64)      {}
func (Nop) PinchCancel(*Context, geom.Point, geom.Point, float64)   {}
func (Nop) RotateStart(*Context, float64)                           {}
func (Nop) RotateContinue(*Context, float64)                        {}
func (Nop) RotateEnd(*Context, float64)                             {}
func (Nop) RotateCancel(*Context, float64)                          {}
func (Nop) ShapeInProgress() shape.Shape                            { return nil }
func (Nop) ApplySettings(*Context, shape.Settings)                  {}
