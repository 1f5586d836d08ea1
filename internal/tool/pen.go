package tool

import (
	"github.com/example/shineydraw/internal/drawing"
	"github.com/example/shineydraw/internal/geom"
	"github.com/example/shineydraw/internal/shape"
)

// PenTool draws freehand strokes.
type PenTool struct {
	Nop
	current *shape.Pen
}

func NewPenTool() *PenTool { return &PenTool{} }

func (t *PenTool) Name() string { return NamePen }

func (t *PenTool) Deactivate(*Context) { t.current = nil }

func (t *PenTool) ShapeInProgress() shape.Shape {
	if t.current == nil {
		return nil
	}
	return t.current
}

func (t *PenTool) DragStart(ctx *Context, p geom.Point) {
	t.current = shape.NewPen()
	shape.ApplySettings(t.current, ctx.Settings)
	t.current.AddPoint(p)
	ctx.MarkDirty()
}

func (t *PenTool) DragContinue(ctx *Context, p, _ geom.Point) {
	if t.current == nil {
		return
	}
	t.current.AddPoint(p)
	ctx.MarkDirty()
}

func (t *PenTool) DragEnd(ctx *Context, p geom.Point) {
	if t.current == nil {
		return
	}
	s := t.current
	t.current = nil
	s.AddPoint(p)
	ctx.Stack.Apply(&drawing.AddShape{Shape: s})
}

func (t *PenTool) DragCancel(ctx *Context, p geom.Point) { t.DragEnd(ctx, p) }

func (t *PenTool) ApplySettings(ctx *Context, settings shape.Settings) {
	ctx.Settings = settings
	if t.current != nil {
		shape.ApplySettings(t.current, settings)
		ctx.MarkDirty()
	}
}
