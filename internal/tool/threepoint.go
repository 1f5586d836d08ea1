package tool

import (
	"github.com/example/shineydraw/internal/drawing"
	"github.com/example/shineydraw/internal/geom"
	"github.com/example/shineydraw/internal/shape"
)

type threePointPhase int

const (
	phaseIdle threePointPhase = iota
	phaseFirst
	phaseAwaitSecond
	phaseSecond
)

// ThreePointTool creates shapes in two drags. The first drag places A and
// the vertex B; the second drag places C. The shape enters the drawing
// after the first drag and the second drag amends that history entry, so
// one shape always costs one undo step.
type ThreePointTool struct {
	Nop
	name    string
	factory func() shape.ThreePoint

	phase   threePointPhase
	current shape.ThreePoint
	added   drawing.Operation
	pinch   bool
}

func NewThreePointTool(name string, factory func() shape.ThreePoint) *ThreePointTool {
	return &ThreePointTool{name: name, factory: factory}
}

func NewAngleTool() *ThreePointTool {
	return NewThreePointTool(NameAngle, func() shape.ThreePoint { return shape.NewAngle() })
}

func (t *ThreePointTool) Name() string { return t.name }

func (t *ThreePointTool) Deactivate(*Context) { t.reset() }

func (t *ThreePointTool) reset() {
	t.phase = phaseIdle
	t.current = nil
	t.added = nil
	t.pinch = false
}

// ShapeInProgress returns the shape only while it is outside the drawing.
func (t *ThreePointTool) ShapeInProgress() shape.Shape {
	if t.current == nil || t.phase == phaseAwaitSecond || t.phase == phaseSecond {
		return nil
	}
	return t.current
}

// awaiting reports whether the first half is still the top of the undo
// history. Undo between the two drags abandons the shape.
func (t *ThreePointTool) awaiting(ctx *Context) bool {
	if t.phase != phaseAwaitSecond {
		return false
	}
	last, ok := ctx.Stack.Last()
	if !ok || last != t.added {
		Logger().Debug("three-point shape abandoned", "tool", t.name)
		t.reset()
		return false
	}
	return true
}

func (t *ThreePointTool) begin(ctx *Context) shape.ThreePoint {
	s := t.factory()
	shape.ApplySettings(s, ctx.Settings)
	t.current = s
	return s
}

func (t *ThreePointTool) DragStart(ctx *Context, p geom.Point) {
	if t.awaiting(ctx) {
		t.current.SetC(p)
		t.phase = phaseSecond
		ctx.MarkDirty()
		return
	}
	s := t.begin(ctx)
	s.SetA(p)
	s.SetB(p)
	s.SetC(p)
	t.phase = phaseFirst
	ctx.MarkDirty()
}

func (t *ThreePointTool) DragContinue(ctx *Context, p, _ geom.Point) {
	switch t.phase {
	case phaseFirst:
		t.current.SetB(p)
	case phaseSecond:
		t.current.SetC(p)
	default:
		return
	}
	ctx.MarkDirty()
}

func (t *ThreePointTool) DragEnd(ctx *Context, p geom.Point) {
	switch t.phase {
	case phaseFirst:
		t.current.SetB(p)
		op := &drawing.AddShape{Shape: t.current}
		ctx.Stack.Apply(op)
		t.added = op
		t.phase = phaseAwaitSecond
	case phaseSecond:
		t.current.SetC(p)
		ctx.Stack.Amend(&drawing.AddShape{Shape: t.current})
		t.reset()
	}
}

func (t *ThreePointTool) DragCancel(ctx *Context, p geom.Point) { t.DragEnd(ctx, p) }

func (t *ThreePointTool) PinchStart(ctx *Context, start, end geom.Point, _ float64) {
	t.reset()
	s := t.begin(ctx)
	s.SetA(start)
	s.SetB(geom.Midpoint(start, end))
	s.SetC(end)
	t.pinch = true
	ctx.MarkDirty()
}

func (t *ThreePointTool) PinchContinue(ctx *Context, start, end geom.Point, _ float64) {
	if !t.pinch {
		return
	}
	t.current.SetA(start)
	t.current.SetC(end)
	ctx.MarkDirty()
}

func (t *ThreePointTool) PinchEnd(ctx *Context, start, end geom.Point, _ float64) {
	if !t.pinch {
		return
	}
	s := t.current
	s.SetA(start)
	s.SetC(end)
	t.reset()
	ctx.Stack.Apply(&drawing.AddShape{Shape: s})
}

func (t *ThreePointTool) PinchCancel(ctx *Context, start, end geom.Point, scale float64) {
	t.PinchEnd(ctx, start, end, scale)
}

// ApplySettings restyles the shape under construction. Between the two
// drags the shape is already committed, but it is restyled in place rather
// than through an Operation until the second drag amends it.
func (t *ThreePointTool) ApplySettings(ctx *Context, settings shape.Settings) {
	ctx.Settings = settings
	if t.current != nil {
		shape.ApplySettings(t.current, settings)
		ctx.MarkDirty()
	}
}
