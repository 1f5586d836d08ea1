package tool

import (
	"image/color"
	"math"
	"testing"

	"github.com/example/shineydraw/internal/drawing"
	"github.com/example/shineydraw/internal/geom"
	"github.com/example/shineydraw/internal/indicator"
	"github.com/example/shineydraw/internal/shape"
)

const eps = 1e-9

func nearPt(p, q geom.Point) bool {
	return math.Abs(p.X-q.X) < eps && math.Abs(p.Y-q.Y) < eps
}

func newTestContext() (*Context, *int) {
	stack := drawing.NewStack(drawing.New())
	ctx := NewContext(stack)
	dirty := 0
	stack.OnDirty = func() { dirty++ }
	return ctx, &dirty
}

func addShape(ctx *Context, s shape.Shape) {
	ctx.Stack.Apply(&drawing.AddShape{Shape: s})
}

func newRect(a, b geom.Point) *shape.Rect {
	r := shape.NewRect()
	r.SetA(a)
	r.SetB(b)
	shape.ApplySettings(r, shape.DefaultSettings())
	return r
}

func drag(ctx *Context, tl Tool, pts ...geom.Point) {
	tl.DragStart(ctx, pts[0])
	for _, p := range pts[1 : len(pts)-1] {
		tl.DragContinue(ctx, p, geom.Point{})
	}
	tl.DragEnd(ctx, pts[len(pts)-1])
}

func TestTwoPointToolDrag(t *testing.T) {
	ctx, _ := newTestContext()
	tl := NewLineTool()
	tl.DragStart(ctx, geom.Pt(0, 0))
	tl.DragContinue(ctx, geom.Pt(10, 10), geom.Point{})
	if tl.ShapeInProgress() == nil {
		t.Fatal("expected a shape in progress while dragging")
	}
	if ctx.Drawing().Len() != 0 {
		t.Fatal("shape committed before drag end")
	}
	tl.DragEnd(ctx, geom.Pt(20, 20))

	shapes := ctx.Drawing().Shapes()
	if len(shapes) != 1 {
		t.Fatalf("expected 1 shape, got %d", len(shapes))
	}
	l := shapes[0].(*shape.Line)
	if l.A() != geom.Pt(0, 0) || l.B() != geom.Pt(20, 20) {
		t.Errorf("unexpected line %v -> %v", l.A(), l.B())
	}
	if l.StrokeColor() != ctx.Settings.StrokeColor {
		t.Errorf("settings not applied: %v", l.StrokeColor())
	}
	if tl.ShapeInProgress() != nil {
		t.Error("shape still in progress after end")
	}
	if ctx.Stack.UndoDepth() != 1 {
		t.Errorf("expected depth 1, got %d", ctx.Stack.UndoDepth())
	}

	ctx.Stack.Undo()
	if ctx.Drawing().Len() != 0 {
		t.Error("undo did not remove the shape")
	}
	ctx.Stack.Redo()
	if ctx.Drawing().Len() != 1 {
		t.Error("redo did not restore the shape")
	}
}

func TestTwoPointToolCancelCommits(t *testing.T) {
	ctx, _ := newTestContext()
	tl := NewRectTool()
	tl.DragStart(ctx, geom.Pt(1, 1))
	tl.DragCancel(ctx, geom.Pt(5, 5))
	if ctx.Drawing().Len() != 1 {
		t.Fatalf("expected cancel to commit, got %d shapes", ctx.Drawing().Len())
	}
	r := ctx.Drawing().Shapes()[0].(*shape.Rect)
	if r.B() != geom.Pt(5, 5) {
		t.Errorf("expected B (5,5), got %v", r.B())
	}
}

func TestTwoPointToolTapIgnored(t *testing.T) {
	ctx, _ := newTestContext()
	tl := NewEllipseTool()
	tl.Tap(ctx, geom.Pt(3, 3))
	tl.DragEnd(ctx, geom.Pt(3, 3))
	if ctx.Drawing().Len() != 0 {
		t.Errorf("expected no shapes, got %d", ctx.Drawing().Len())
	}
}

func TestTwoPointToolPinch(t *testing.T) {
	ctx, _ := newTestContext()
	tl := NewArrowTool()
	tl.PinchStart(ctx, geom.Pt(0, 0), geom.Pt(1, 1), 1)
	tl.PinchContinue(ctx, geom.Pt(2, 2), geom.Pt(8, 8), 1)
	tl.PinchEnd(ctx, geom.Pt(3, 3), geom.Pt(9, 9), 1)
	a := ctx.Drawing().Shapes()[0].(*shape.Arrow)
	if a.A() != geom.Pt(3, 3) || a.B() != geom.Pt(9, 9) {
		t.Errorf("unexpected arrow %v -> %v", a.A(), a.B())
	}
}

func TestThreePointToolTwoDrags(t *testing.T) {
	ctx, _ := newTestContext()
	tl := NewAngleTool()
	drag(ctx, tl, geom.Pt(0, 0), geom.Pt(3, 3), geom.Pt(5, 5))
	if ctx.Stack.UndoDepth() != 1 {
		t.Fatalf("expected depth 1 after first drag, got %d", ctx.Stack.UndoDepth())
	}
	drag(ctx, tl, geom.Pt(8, 1), geom.Pt(9, 0), geom.Pt(10, 0))

	if ctx.Stack.UndoDepth() != 1 {
		t.Errorf("expected depth 1 after second drag, got %d", ctx.Stack.UndoDepth())
	}
	shapes := ctx.Drawing().Shapes()
	if len(shapes) != 1 {
		t.Fatalf("expected 1 shape, got %d", len(shapes))
	}
	a := shapes[0].(*shape.Angle)
	if a.A() != geom.Pt(0, 0) || a.B() != geom.Pt(5, 5) || a.C() != geom.Pt(10, 0) {
		t.Errorf("unexpected angle %v %v %v", a.A(), a.B(), a.C())
	}
	if tl.ShapeInProgress() != nil {
		t.Error("expected no shape in progress")
	}

	ctx.Stack.Undo()
	if ctx.Drawing().Len() != 0 {
		t.Error("one undo should remove the whole angle")
	}
}

func TestThreePointToolUndoBetweenDrags(t *testing.T) {
	ctx, _ := newTestContext()
	tl := NewAngleTool()
	drag(ctx, tl, geom.Pt(0, 0), geom.Pt(5, 5))
	ctx.Stack.Undo()

	drag(ctx, tl, geom.Pt(20, 20), geom.Pt(30, 30))
	shapes := ctx.Drawing().Shapes()
	if len(shapes) != 1 {
		t.Fatalf("expected a fresh shape, got %d shapes", len(shapes))
	}
	a := shapes[0].(*shape.Angle)
	if a.A() != geom.Pt(20, 20) || a.B() != geom.Pt(30, 30) {
		t.Errorf("expected a new first half, got %v %v", a.A(), a.B())
	}
}

func TestThreePointToolPinch(t *testing.T) {
	ctx, _ := newTestContext()
	tl := NewAngleTool()
	tl.PinchStart(ctx, geom.Pt(0, 0), geom.Pt(10, 0), 1)
	tl.PinchEnd(ctx, geom.Pt(0, 2), geom.Pt(10, 4), 1)
	a := ctx.Drawing().Shapes()[0].(*shape.Angle)
	if a.A() != geom.Pt(0, 2) || a.B() != geom.Pt(5, 0) || a.C() != geom.Pt(10, 4) {
		t.Errorf("unexpected angle %v %v %v", a.A(), a.B(), a.C())
	}
	if ctx.Stack.UndoDepth() != 1 {
		t.Errorf("expected depth 1, got %d", ctx.Stack.UndoDepth())
	}
}

func TestPenTool(t *testing.T) {
	ctx, _ := newTestContext()
	tl := NewPenTool()
	drag(ctx, tl, geom.Pt(0, 0), geom.Pt(1, 1), geom.Pt(1, 1), geom.Pt(2, 3))
	p := ctx.Drawing().Shapes()[0].(*shape.Pen)
	if got := len(p.Points()); got != 3 {
		t.Errorf("expected 3 points, got %d", got)
	}
}

func TestSelectionTap(t *testing.T) {
	ctx, _ := newTestContext()
	var events []shape.Shape
	ctx.OnSelectionChanged = func(s shape.Shape) { events = append(events, s) }
	low := newRect(geom.Pt(0, 0), geom.Pt(50, 50))
	high := newRect(geom.Pt(25, 25), geom.Pt(75, 75))
	addShape(ctx, low)
	addShape(ctx, high)

	tl := NewSelectionTool()
	tl.Tap(ctx, geom.Pt(30, 30))
	if ctx.Selected() != high {
		t.Fatal("expected the topmost shape to be selected")
	}
	tl.Tap(ctx, geom.Pt(30, 30))
	if ctx.Selected() != nil {
		t.Error("tapping the selection without a listener should deselect")
	}
	tl.Tap(ctx, geom.Pt(5, 5))
	if ctx.Selected() != low {
		t.Error("expected the lower shape")
	}
	tl.Tap(ctx, geom.Pt(500, 500))
	if ctx.Selected() != nil {
		t.Error("tapping empty space should clear the selection")
	}
	if len(events) != 4 {
		t.Errorf("expected 4 selection events, got %d", len(events))
	}
	if ctx.Stack.UndoDepth() != 2 {
		t.Errorf("selection must not be recorded, depth %d", ctx.Stack.UndoDepth())
	}
}

func TestSelectionTapSelectedListener(t *testing.T) {
	ctx, _ := newTestContext()
	r := newRect(geom.Pt(0, 0), geom.Pt(10, 10))
	addShape(ctx, r)
	var tapped shape.Shape
	ctx.OnTapSelected = func(s shape.Shape) { tapped = s }

	tl := NewSelectionTool()
	tl.Tap(ctx, geom.Pt(5, 5))
	tl.Tap(ctx, geom.Pt(5, 5))
	if tapped != r {
		t.Error("expected the tapped-selection listener to fire")
	}
	if ctx.Selected() != r {
		t.Error("selection should be kept when a listener handles the tap")
	}
}

func TestSelectionDoesNotPropagateStyle(t *testing.T) {
	ctx, dirty := newTestContext()
	red := newRect(geom.Pt(0, 0), geom.Pt(10, 10))
	blue := newRect(geom.Pt(100, 100), geom.Pt(110, 110))
	blueColor := color.RGBA{0, 0, 255, 255}
	blue.SetStrokeColor(blueColor)
	blue.SetStrokeWidth(8)
	addShape(ctx, red)
	addShape(ctx, blue)

	tl := NewSelectionTool()
	tl.Tap(ctx, geom.Pt(5, 5))
	tl.Tap(ctx, geom.Pt(105, 105))

	if ctx.Selected() != blue {
		t.Fatal("expected blue to be selected")
	}
	if blue.StrokeColor() != blueColor || blue.StrokeWidth() != 8 {
		t.Errorf("selected shape restyled: %v %v", blue.StrokeColor(), blue.StrokeWidth())
	}
	if red.StrokeColor() != shape.DefaultSettings().StrokeColor {
		t.Errorf("previous selection restyled: %v", red.StrokeColor())
	}
	if ctx.Settings.StrokeColor != blueColor || ctx.Settings.StrokeWidth != 8 {
		t.Errorf("settings did not follow the selection: %+v", ctx.Settings)
	}
	if ctx.Stack.UndoDepth() != 2 {
		t.Fatalf("selection change recorded an operation, depth %d", ctx.Stack.UndoDepth())
	}

	before := *dirty
	green := ctx.Settings
	green.StrokeColor = color.RGBA{0, 255, 0, 255}
	tl.ApplySettings(ctx, green)
	if blue.StrokeColor() != green.StrokeColor {
		t.Errorf("user settings not applied: %v", blue.StrokeColor())
	}
	if ctx.Stack.UndoDepth() != 3 {
		t.Errorf("expected an ApplyStyle operation, depth %d", ctx.Stack.UndoDepth())
	}
	if *dirty != before+1 {
		t.Errorf("expected one dirty signal, got %d", *dirty-before)
	}

	tl.ApplySettings(ctx, green)
	if ctx.Stack.UndoDepth() != 3 {
		t.Error("unchanged settings should not record an operation")
	}
	ctx.Stack.Undo()
	if blue.StrokeColor() != blueColor {
		t.Errorf("undo did not restore the style: %v", blue.StrokeColor())
	}
}

func TestSelectionMove(t *testing.T) {
	ctx, _ := newTestContext()
	r := newRect(geom.Pt(0, 0), geom.Pt(100, 100))
	addShape(ctx, r)
	tl := NewSelectionTool()
	tl.Tap(ctx, geom.Pt(50, 50))

	tl.DragStart(ctx, geom.Pt(50, 50))
	tl.DragContinue(ctx, geom.Pt(55, 55), geom.Point{})
	if r.Transform().Translation != geom.Pt(5, 5) {
		t.Errorf("expected live preview, got %v", r.Transform().Translation)
	}
	tl.DragEnd(ctx, geom.Pt(60, 70))

	if r.Transform().Translation != geom.Pt(10, 20) {
		t.Errorf("unexpected translation %v", r.Transform().Translation)
	}
	if r.A() != geom.Pt(0, 0) || r.B() != geom.Pt(100, 100) {
		t.Errorf("move changed anchors: %v %v", r.A(), r.B())
	}
	last, _ := ctx.Stack.Last()
	if _, ok := last.(*drawing.ChangeTransform); !ok {
		t.Errorf("expected ChangeTransform, got %T", last)
	}
	ctx.Stack.Undo()
	if !r.Transform().IsIdentity() {
		t.Errorf("undo did not restore the transform: %+v", r.Transform())
	}
}

func TestSelectionResizeHandles(t *testing.T) {
	tests := []struct {
		name  string
		from  geom.Point
		to    geom.Point
		wantA geom.Point
		wantB geom.Point
	}{
		{"top left corner", geom.Pt(0, 0), geom.Pt(-10, -20), geom.Pt(-10, -20), geom.Pt(100, 100)},
		{"bottom right corner", geom.Pt(100, 100), geom.Pt(120, 90), geom.Pt(0, 0), geom.Pt(120, 90)},
		{"top edge", geom.Pt(50, 0), geom.Pt(70, -30), geom.Pt(0, -30), geom.Pt(100, 100)},
		{"right edge", geom.Pt(100, 50), geom.Pt(150, 10), geom.Pt(0, 0), geom.Pt(150, 100)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := newTestContext()
			r := newRect(geom.Pt(0, 0), geom.Pt(100, 100))
			addShape(ctx, r)
			tl := NewSelectionTool()
			tl.Tap(ctx, geom.Pt(50, 50))
			drag(ctx, tl, tt.from, tt.to)

			if r.A() != tt.wantA || r.B() != tt.wantB {
				t.Errorf("got %v %v, want %v %v", r.A(), r.B(), tt.wantA, tt.wantB)
			}
			last, _ := ctx.Stack.Last()
			op, ok := last.(*drawing.ResizeTwoPoint)
			if !ok {
				t.Fatalf("expected ResizeTwoPoint, got %T", last)
			}
			if op.OriginalA != geom.Pt(0, 0) || op.OriginalB != geom.Pt(100, 100) {
				t.Errorf("operation lost the original points: %+v", op)
			}
			ctx.Stack.Undo()
			if r.A() != geom.Pt(0, 0) || r.B() != geom.Pt(100, 100) {
				t.Errorf("undo left %v %v", r.A(), r.B())
			}
		})
	}
}

func TestSelectionResizeAfterMove(t *testing.T) {
	moved := func(t *testing.T) (*Context, *SelectionTool, *shape.Rect) {
		t.Helper()
		ctx, _ := newTestContext()
		r := newRect(geom.Pt(10, 10), geom.Pt(110, 60))
		addShape(ctx, r)
		tl := NewSelectionTool()
		tl.Tap(ctx, geom.Pt(60, 35))
		drag(ctx, tl, geom.Pt(60, 35), geom.Pt(160, 135))
		if r.Transform().Translation != geom.Pt(100, 100) {
			t.Fatalf("move left translation %v", r.Transform().Translation)
		}
		return ctx, tl, r
	}

	t.Run("corner handle", func(t *testing.T) {
		ctx, tl, r := moved(t)
		drag(ctx, tl, geom.Pt(210, 160), geom.Pt(260, 200))

		if r.A() != geom.Pt(10, 10) || !nearPt(r.B(), geom.Pt(160, 100)) {
			t.Errorf("got %v %v, want (10,10) (160,100)", r.A(), r.B())
		}
		if r.Transform().Translation != geom.Pt(100, 100) {
			t.Errorf("resize changed translation to %v", r.Transform().Translation)
		}
		last, _ := ctx.Stack.Last()
		if _, ok := last.(*drawing.ResizeTwoPoint); !ok {
			t.Fatalf("expected ResizeTwoPoint, got %T", last)
		}
		ctx.Stack.Undo()
		if r.A() != geom.Pt(10, 10) || r.B() != geom.Pt(110, 60) {
			t.Errorf("undo left %v %v", r.A(), r.B())
		}
	})

	t.Run("pinch", func(t *testing.T) {
		ctx, tl, r := moved(t)
		tl.PinchStart(ctx, geom.Point{}, geom.Point{}, 1)
		tl.PinchEnd(ctx, geom.Point{}, geom.Point{}, 2)

		if !nearPt(r.A(), geom.Pt(-40, -15)) || !nearPt(r.B(), geom.Pt(160, 85)) {
			t.Errorf("got %v %v, want (-40,-15) (160,85)", r.A(), r.B())
		}
		b := shape.WorldBounds(r)
		if !nearPt(b.Min, geom.Pt(60, 85)) || !nearPt(b.Max, geom.Pt(260, 185)) {
			t.Errorf("world bounds %+v", b)
		}
		last, _ := ctx.Stack.Last()
		if _, ok := last.(*drawing.ResizeTwoPoint); !ok {
			t.Fatalf("expected ResizeTwoPoint, got %T", last)
		}
		ctx.Stack.Undo()
		if r.A() != geom.Pt(10, 10) || r.B() != geom.Pt(110, 60) {
			t.Errorf("undo left %v %v", r.A(), r.B())
		}
		if r.Transform().Translation != geom.Pt(100, 100) {
			t.Errorf("undo of the pinch reverted the move: %v", r.Transform().Translation)
		}
	})
}

func TestSelectionResizeSwappedAnchors(t *testing.T) {
	ctx, _ := newTestContext()
	r := newRect(geom.Pt(100, 100), geom.Pt(0, 0))
	addShape(ctx, r)
	tl := NewSelectionTool()
	tl.Tap(ctx, geom.Pt(50, 50))
	drag(ctx, tl, geom.Pt(0, 50), geom.Pt(-40, 80))
	if r.B() != geom.Pt(-40, 0) || r.A() != geom.Pt(100, 100) {
		t.Errorf("left edge should move the anchor on the left, got %v %v", r.A(), r.B())
	}
}

func TestSelectionResizeThreePoint(t *testing.T) {
	ctx, _ := newTestContext()
	a := shape.NewAngle()
	a.SetA(geom.Pt(0, 0))
	a.SetB(geom.Pt(50, 50))
	a.SetC(geom.Pt(100, 0))
	addShape(ctx, a)
	tl := NewSelectionTool()
	tl.Tap(ctx, geom.Pt(25, 25))
	if ctx.Selected() != a {
		t.Fatal("expected the angle to be selected")
	}
	drag(ctx, tl, geom.Pt(50, 50), geom.Pt(50, 80))
	if a.A() != geom.Pt(0, 0) || a.B() != geom.Pt(50, 80) || a.C() != geom.Pt(100, 0) {
		t.Errorf("unexpected angle %v %v %v", a.A(), a.B(), a.C())
	}
	last, _ := ctx.Stack.Last()
	if _, ok := last.(*drawing.ResizeThreePoint); !ok {
		t.Errorf("expected ResizeThreePoint, got %T", last)
	}
}

func TestSelectionHandlePriority(t *testing.T) {
	ctx, _ := newTestContext()
	ctx.HitSize = 20
	a := shape.NewAngle()
	a.SetA(geom.Pt(0, 0))
	a.SetB(geom.Pt(4, 0))
	a.SetC(geom.Pt(40, 40))
	addShape(ctx, a)
	tl := NewSelectionTool()
	tl.Tap(ctx, geom.Pt(20, 20))

	// (2,0) lies in both the A and B handles; A is tested first.
	drag(ctx, tl, geom.Pt(2, 0), geom.Pt(2, -10))
	if a.A() != geom.Pt(2, -10) || a.B() != geom.Pt(4, 0) {
		t.Errorf("expected A to win, got %v %v", a.A(), a.B())
	}
}

func TestSelectionDragMissDoesNothing(t *testing.T) {
	ctx, _ := newTestContext()
	r := newRect(geom.Pt(0, 0), geom.Pt(10, 10))
	addShape(ctx, r)
	tl := NewSelectionTool()
	tl.Tap(ctx, geom.Pt(5, 5))
	drag(ctx, tl, geom.Pt(200, 200), geom.Pt(300, 300))
	if ctx.Stack.UndoDepth() != 1 || !r.Transform().IsIdentity() {
		t.Error("drag outside the selection changed it")
	}
}

func TestSelectionCancelRestores(t *testing.T) {
	ctx, _ := newTestContext()
	r := newRect(geom.Pt(0, 0), geom.Pt(100, 100))
	addShape(ctx, r)
	tl := NewSelectionTool()
	tl.Tap(ctx, geom.Pt(50, 50))

	tl.DragStart(ctx, geom.Pt(50, 50))
	tl.DragContinue(ctx, geom.Pt(80, 80), geom.Point{})
	tl.DragCancel(ctx, geom.Pt(80, 80))
	if !r.Transform().IsIdentity() {
		t.Errorf("move cancel left %+v", r.Transform())
	}

	tl.DragStart(ctx, geom.Pt(100, 100))
	tl.DragContinue(ctx, geom.Pt(150, 150), geom.Point{})
	tl.DragCancel(ctx, geom.Pt(150, 150))
	if r.B() != geom.Pt(100, 100) {
		t.Errorf("resize cancel left B at %v", r.B())
	}

	tl.PinchStart(ctx, geom.Point{}, geom.Point{}, 1)
	tl.PinchContinue(ctx, geom.Point{}, geom.Point{}, 3)
	tl.PinchCancel(ctx, geom.Point{}, geom.Point{}, 3)
	tl.RotateStart(ctx, 0)
	tl.RotateContinue(ctx, 1)
	tl.RotateCancel(ctx, 1)
	if r.A() != geom.Pt(0, 0) || r.B() != geom.Pt(100, 100) {
		t.Errorf("pinch/rotate cancel left %v %v", r.A(), r.B())
	}
	if ctx.Stack.UndoDepth() != 1 {
		t.Errorf("cancel recorded an operation, depth %d", ctx.Stack.UndoDepth())
	}
}

func TestSelectionRotatePreservesDistances(t *testing.T) {
	ctx, _ := newTestContext()
	l := shape.NewLine()
	l.SetA(geom.Pt(0, 0))
	l.SetB(geom.Pt(10, 0))
	addShape(ctx, l)
	tl := NewSelectionTool()
	tl.Tap(ctx, geom.Pt(5, 0))

	tl.RotateStart(ctx, 0)
	tl.RotateContinue(ctx, math.Pi/4)
	tl.RotateEnd(ctx, math.Pi/2)

	if !nearPt(l.A(), geom.Pt(5, -5)) || !nearPt(l.B(), geom.Pt(5, 5)) {
		t.Errorf("unexpected rotation %v %v", l.A(), l.B())
	}
	if d := geom.Distance(l.A(), l.B()); math.Abs(d-10) > eps {
		t.Errorf("rotation changed the length to %v", d)
	}
	if ctx.Stack.UndoDepth() != 2 {
		t.Errorf("expected one resize operation, depth %d", ctx.Stack.UndoDepth())
	}
	ctx.Stack.Undo()
	if l.A() != geom.Pt(0, 0) || l.B() != geom.Pt(10, 0) {
		t.Errorf("undo left %v %v", l.A(), l.B())
	}
}

func TestSelectionPinchScales(t *testing.T) {
	ctx, _ := newTestContext()
	a := shape.NewAngle()
	a.SetA(geom.Pt(0, 0))
	a.SetB(geom.Pt(30, 30))
	a.SetC(geom.Pt(60, 0))
	addShape(ctx, a)
	tl := NewSelectionTool()
	tl.Tap(ctx, geom.Pt(15, 15))

	before := [3]float64{
		geom.Distance(a.A(), a.B()),
		geom.Distance(a.B(), a.C()),
		geom.Distance(a.A(), a.C()),
	}
	tl.PinchStart(ctx, geom.Point{}, geom.Point{}, 1)
	tl.PinchContinue(ctx, geom.Point{}, geom.Point{}, 1.5)
	tl.PinchEnd(ctx, geom.Point{}, geom.Point{}, 2)
	after := [3]float64{
		geom.Distance(a.A(), a.B()),
		geom.Distance(a.B(), a.C()),
		geom.Distance(a.A(), a.C()),
	}
	for i := range before {
		if math.Abs(after[i]-2*before[i]) > 1e-6 {
			t.Errorf("distance %d: got %v, want %v", i, after[i], 2*before[i])
		}
	}
	if !nearPt(geom.Centroid(a.A(), a.B(), a.C()), geom.Pt(30, 10)) {
		t.Error("pinch moved the centroid")
	}
	last, _ := ctx.Stack.Last()
	if _, ok := last.(*drawing.ResizeThreePoint); !ok {
		t.Errorf("expected ResizeThreePoint, got %T", last)
	}
}

func TestSelectionPenCapabilityNoOps(t *testing.T) {
	ctx, _ := newTestContext()
	pen := NewPenTool()
	drag(ctx, pen, geom.Pt(0, 0), geom.Pt(20, 0), geom.Pt(40, 0))
	p := ctx.Drawing().Shapes()[0]

	tl := NewSelectionTool()
	tl.Tap(ctx, geom.Pt(20, 0))
	if ctx.Selected() != p {
		t.Fatal("expected the pen stroke to be selected")
	}
	tl.PinchStart(ctx, geom.Point{}, geom.Point{}, 1)
	tl.PinchEnd(ctx, geom.Point{}, geom.Point{}, 2)
	tl.RotateStart(ctx, 0)
	tl.RotateEnd(ctx, 1)
	if ctx.Stack.UndoDepth() != 1 {
		t.Errorf("pinch/rotate on a pen recorded an operation, depth %d", ctx.Stack.UndoDepth())
	}

	drag(ctx, tl, geom.Pt(20, 0), geom.Pt(20, 30))
	if p.Transform().Translation != geom.Pt(0, 30) {
		t.Errorf("pen move: %v", p.Transform().Translation)
	}
}

func TestSelectionDeactivate(t *testing.T) {
	ctx, _ := newTestContext()
	handles := indicator.NewHandles(0)
	ctx.Indicator = handles
	r := newRect(geom.Pt(0, 0), geom.Pt(10, 10))
	addShape(ctx, r)
	tl := NewSelectionTool()
	tl.Tap(ctx, geom.Pt(5, 5))
	if !handles.Visible() {
		t.Fatal("indicator should show the selection")
	}
	tl.Deactivate(ctx)
	if ctx.Selected() != nil || handles.Visible() {
		t.Error("deactivate should clear the selection")
	}
}

func TestRefreshSelectionDropsRemovedShape(t *testing.T) {
	ctx, _ := newTestContext()
	r := newRect(geom.Pt(0, 0), geom.Pt(10, 10))
	addShape(ctx, r)
	ctx.SetSelection(r)
	ctx.Stack.Undo()
	ctx.RefreshSelection()
	if ctx.Selected() != nil {
		t.Error("selection should not outlive its shape")
	}
}
