package tool

import (
	"slices"

	"github.com/example/shineydraw/internal/drawing"
	"github.com/example/shineydraw/internal/geom"
	"github.com/example/shineydraw/internal/indicator"
	"github.com/example/shineydraw/internal/shape"
)

type gestureKind int

const (
	gestureMove gestureKind = iota
	gestureResize
	gesturePinch
	gestureRotate
)

func (k gestureKind) String() string {
	switch k {
	case gestureMove:
		return "move"
	case gestureResize:
		return "resize"
	case gesturePinch:
		return "pinch"
	case gestureRotate:
		return "rotate"
	}
	return "unknown"
}

// edge indices name which anchor owns each side of a two-point shape's
// bounding box when the gesture started.
type edges struct {
	left, right, top, bottom int
}

// gesture is the pre-gesture snapshot of the selected shape.
type gesture struct {
	kind      gestureKind
	shape     shape.Shape
	start     geom.Point
	transform shape.Transform
	ref       geom.Point
	points    []geom.Point

	handle indicator.Handle
	edges  edges

	centroid geom.Point
	angles   []float64
	dists    []float64
}

// restore puts the shape back into its pre-gesture state.
func (g *gesture) restore() {
	g.shape.SetTransform(g.transform)
	if g.points != nil {
		shape.SetAnchorPoints(g.shape, g.points)
	}
}

// SelectionTool selects, moves, resizes, scales and rotates shapes.
type SelectionTool struct {
	Nop
	active *gesture

	// updatingSelection marks settings changes caused by a selection change
	// rather than by the user.
	updatingSelection bool
}

func NewSelectionTool() *SelectionTool { return &SelectionTool{} }

func (t *SelectionTool) Name() string { return NameSelection }

// Deactivate abandons any gesture and clears the selection.
func (t *SelectionTool) Deactivate(ctx *Context) {
	if t.active != nil {
		t.active.restore()
		t.active = nil
	}
	ctx.SetSelection(nil)
}

func (t *SelectionTool) Tap(ctx *Context, p geom.Point) {
	if t.active != nil {
		return
	}
	if sel := ctx.Selected(); sel != nil && sel.HitTest(p) {
		if ctx.OnTapSelected != nil {
			ctx.OnTapSelected(sel)
			return
		}
		t.updateSelection(ctx, nil)
		return
	}
	hit, _ := ctx.Drawing().Topmost(func(s shape.Shape) bool { return s.HitTest(p) })
	t.updateSelection(ctx, hit)
}

func (t *SelectionTool) updateSelection(ctx *Context, s shape.Shape) {
	ctx.SetSelection(s)
	if s == nil {
		return
	}
	t.updatingSelection = true
	t.ApplySettings(ctx, ctx.Settings)
	t.updatingSelection = false
}

// ApplySettings restyles the selected shape with an ApplyStyle operation.
// During a selection change the settings instead follow the shape.
func (t *SelectionTool) ApplySettings(ctx *Context, settings shape.Settings) {
	sel := ctx.Selected()
	if t.updatingSelection {
		if sel != nil {
			settings = shape.AdoptStyle(settings, sel)
		}
		ctx.Settings = settings
		return
	}
	ctx.Settings = settings
	if sel == nil {
		return
	}
	before := shape.StyleOf(sel)
	after := shape.StyleFromSettings(sel, settings)
	if before == after {
		return
	}
	ctx.Stack.Apply(&drawing.ApplyStyle{Shape: sel, Style: after, Original: before})
}

func (t *SelectionTool) snapshot(kind gestureKind, s shape.Shape, p geom.Point) *gesture {
	g := &gesture{
		kind:      kind,
		shape:     s,
		start:     p,
		transform: s.Transform(),
		ref:       shape.Reference(s),
	}
	if pts, ok := shape.AnchorPoints(s); ok {
		g.points = pts
	}
	return g
}

func (t *SelectionTool) DragStart(ctx *Context, p geom.Point) {
	sel := ctx.Selected()
	if sel == nil || t.active != nil {
		return
	}
	handles := indicator.Layout(worldAnchors(sel), ctx.hitSize())
	if h, ok := indicator.HitTest(handles, p); ok {
		g := t.snapshot(gestureResize, sel, p)
		if g.points == nil {
			return
		}
		g.handle = h
		if len(g.points) == 2 {
			g.edges = edgesOf(g.points[0], g.points[1])
		}
		t.active = g
	} else if sel.HitTest(p) {
		t.active = t.snapshot(gestureMove, sel, p)
	} else {
		return
	}
	Logger().Debug("gesture started", "kind", t.active.kind, "shape", sel.ID())
}

func edgesOf(a, b geom.Point) edges {
	e := edges{left: 0, right: 1, top: 0, bottom: 1}
	if b.X < a.X {
		e.left, e.right = 1, 0
	}
	if b.Y < a.Y {
		e.top, e.bottom = 1, 0
	}
	return e
}

func (t *SelectionTool) DragContinue(ctx *Context, p, _ geom.Point) {
	g := t.active
	if g == nil {
		return
	}
	switch g.kind {
	case gestureMove:
		g.shape.SetTransform(g.transform.Translated(p.Sub(g.start)))
	case gestureResize:
		shape.SetAnchorPoints(g.shape, g.resized(p))
	default:
		return
	}
	ctx.RefreshSelection()
	ctx.MarkDirty()
}

// resized returns the anchor points after dragging the gesture's handle to
// the world point p.
func (g *gesture) resized(p geom.Point) []geom.Point {
	local := g.transform.Invert(p, g.ref)
	pts := slices.Clone(g.points)
	switch g.handle.Position {
	case indicator.PointA, indicator.PointB, indicator.PointC:
		if i := int(g.handle.Position - indicator.PointA); i < len(pts) {
			pts[i] = local
		}
		return pts
	}
	if len(pts) != 2 {
		return pts
	}
	switch g.handle.Position {
	case indicator.TopLeft, indicator.Left, indicator.BottomLeft:
		pts[g.edges.left].X = local.X
	case indicator.TopRight, indicator.Right, indicator.BottomRight:
		pts[g.edges.right].X = local.X
	}
	switch g.handle.Position {
	case indicator.TopLeft, indicator.Top, indicator.TopRight:
		pts[g.edges.top].Y = local.Y
	case indicator.BottomLeft, indicator.Bottom, indicator.BottomRight:
		pts[g.edges.bottom].Y = local.Y
	}
	return pts
}

func (t *SelectionTool) DragEnd(ctx *Context, p geom.Point) {
	g := t.active
	if g == nil || (g.kind != gestureMove && g.kind != gestureResize) {
		return
	}
	t.DragContinue(ctx, p, geom.Point{})
	t.commit(ctx)
}

func (t *SelectionTool) DragCancel(ctx *Context, _ geom.Point) {
	if g := t.active; g != nil && (g.kind == gestureMove || g.kind == gestureResize) {
		t.cancel(ctx)
	}
}

// commit reverts the live preview and records the gesture's net effect as
// one operation. Gestures that changed nothing record nothing.
func (t *SelectionTool) commit(ctx *Context) {
	g := t.active
	t.active = nil
	final := g.shape.Transform()
	var updated []geom.Point
	if g.points != nil {
		updated, _ = shape.AnchorPoints(g.shape)
	}
	g.restore()

	var op drawing.Operation
	switch {
	case g.kind == gestureMove:
		if final != g.transform {
			op = &drawing.ChangeTransform{Shape: g.shape, Transform: final, Original: g.transform}
		}
	case !slices.Equal(updated, g.points):
		op, _ = drawing.NewResize(g.shape, g.points, updated)
	}
	Logger().Debug("gesture ended", "kind", g.kind, "shape", g.shape.ID(), "changed", op != nil)
	if op != nil {
		ctx.Stack.Apply(op)
	}
	ctx.RefreshSelection()
	ctx.MarkDirty()
}

func (t *SelectionTool) cancel(ctx *Context) {
	g := t.active
	t.active = nil
	g.restore()
	Logger().Debug("gesture cancelled", "kind", g.kind, "shape", g.shape.ID())
	ctx.RefreshSelection()
	ctx.MarkDirty()
}

// polar captures the angle and distance of every anchor from their centroid.
func (t *SelectionTool) polar(ctx *Context, kind gestureKind) bool {
	sel := ctx.Selected()
	if sel == nil || t.active != nil {
		return false
	}
	g := t.snapshot(kind, sel, geom.Point{})
	if g.points == nil {
		return false
	}
	g.centroid = geom.Centroid(g.points...)
	for _, pt := range g.points {
		g.angles = append(g.angles, geom.AngleBetween(g.centroid, pt))
		g.dists = append(g.dists, geom.Distance(g.centroid, pt))
	}
	t.active = g
	Logger().Debug("gesture started", "kind", kind, "shape", sel.ID())
	return true
}

func (g *gesture) fromPolar(scale, angle float64) []geom.Point {
	pts := make([]geom.Point, len(g.points))
	for i := range g.points {
		pts[i] = geom.PointFromPolar(g.centroid, g.dists[i]*scale, g.angles[i]+angle)
	}
	return pts
}

func (t *SelectionTool) update(ctx *Context, kind gestureKind, scale, angle float64) bool {
	g := t.active
	if g == nil || g.kind != kind {
		return false
	}
	shape.SetAnchorPoints(g.shape, g.fromPolar(scale, angle))
	ctx.RefreshSelection()
	ctx.MarkDirty()
	return true
}

func (t *SelectionTool) PinchStart(ctx *Context, _, _ geom.Point, _ float64) {
	t.polar(ctx, gesturePinch)
}

func (t *SelectionTool) PinchContinue(ctx *Context, _, _ geom.Point, scale float64) {
	t.update(ctx, gesturePinch, scale, 0)
}

func (t *SelectionTool) PinchEnd(ctx *Context, _, _ geom.Point, scale float64) {
	if t.update(ctx, gesturePinch, scale, 0) {
		t.commit(ctx)
	}
}

func (t *SelectionTool) PinchCancel(ctx *Context, _, _ geom.Point, _ float64) {
	if g := t.active; g != nil && g.kind == gesturePinch {
		t.cancel(ctx)
	}
}

func (t *SelectionTool) RotateStart(ctx *Context, _ float64) {
	t.polar(ctx, gestureRotate)
}

func (t *SelectionTool) RotateContinue(ctx *Context, angle float64) {
	t.update(ctx, gestureRotate, 1, angle)
}

func (t *SelectionTool) RotateEnd(ctx *Context, angle float64) {
	if t.update(ctx, gestureRotate, 1, angle) {
		t.commit(ctx)
	}
}

func (t *SelectionTool) RotateCancel(ctx *Context, _ float64) {
	if g := t.active; g != nil && g.kind == gestureRotate {
		t.cancel(ctx)
	}
}
