package tool

import (
	"github.com/example/shineydraw/internal/drawing"
	"github.com/example/shineydraw/internal/geom"
	"github.com/example/shineydraw/internal/shape"
)

// TwoPointTool creates shapes by dragging from A to B.
type TwoPointTool struct {
	Nop
	name    string
	factory func() shape.TwoPoint

	current shape.TwoPoint
}

// NewTwoPointTool returns a tool named name that creates shapes with factory.
func NewTwoPointTool(name string, factory func() shape.TwoPoint) *TwoPointTool {
	return &TwoPointTool{name: name, factory: factory}
}

func NewLineTool() *TwoPointTool {
	return NewTwoPointTool(NameLine, func() shape.TwoPoint { return shape.NewLine() })
}

func NewArrowTool() *TwoPointTool {
	return NewTwoPointTool(NameArrow, func() shape.TwoPoint { return shape.NewArrow() })
}

func NewRectTool() *TwoPointTool {
	return NewTwoPointTool(NameRect, func() shape.TwoPoint { return shape.NewRect() })
}

func NewEllipseTool() *TwoPointTool {
	return NewTwoPointTool(NameEllipse, func() shape.TwoPoint { return shape.NewEllipse() })
}

func (t *TwoPointTool) Name() string { return t.name }

func (t *TwoPointTool) Deactivate(*Context) { t.current = nil }

func (t *TwoPointTool) ShapeInProgress() shape.Shape {
	if t.current == nil {
		return nil
	}
	return t.current
}

func (t *TwoPointTool) begin(ctx *Context, a, b geom.Point) {
	s := t.factory()
	s.SetA(a)
	s.SetB(b)
	shape.ApplySettings(s, ctx.Settings)
	t.current = s
	Logger().Debug("shape started", "tool", t.name, "id", s.ID())
	ctx.MarkDirty()
}

func (t *TwoPointTool) commit(ctx *Context) {
	s := t.current
	t.current = nil
	ctx.Stack.Apply(&drawing.AddShape{Shape: s})
}

func (t *TwoPointTool) DragStart(ctx *Context, p geom.Point) { t.begin(ctx, p, p) }

func (t *TwoPointTool) DragContinue(ctx *Context, p, _ geom.Point) {
	if t.current == nil {
		return
	}
	t.current.SetB(p)
	ctx.MarkDirty()
}

func (t *TwoPointTool) DragEnd(ctx *Context, p geom.Point) {
	if t.current == nil {
		return
	}
	t.current.SetB(p)
	t.commit(ctx)
}

func (t *TwoPointTool) DragCancel(ctx *Context, p geom.Point) { t.DragEnd(ctx, p) }

func (t *TwoPointTool) PinchStart(ctx *Context, start, end geom.Point, _ float64) {
	t.begin(ctx, start, end)
}

func (t *TwoPointTool) PinchContinue(ctx *Context, start, end geom.Point, _ float64) {
	if t.current == nil {
		return
	}
	t.current.SetA(start)
	t.current.SetB(end)
	ctx.MarkDirty()
}

func (t *TwoPointTool) PinchEnd(ctx *Context, start, end geom.Point, _ float64) {
	if t.current == nil {
		return
	}
	t.current.SetA(start)
	t.current.SetB(end)
	t.commit(ctx)
}

func (t *TwoPointTool) PinchCancel(ctx *Context, start, end geom.Point, scale float64) {
	t.PinchEnd(ctx, start, end, scale)
}

// ApplySettings restyles the shape being drawn.
func (t *TwoPointTool) ApplySettings(ctx *Context, settings shape.Settings) {
	ctx.Settings = settings
	if t.current != nil {
		shape.ApplySettings(t.current, settings)
		ctx.MarkDirty()
	}
}
