package appstate

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"sync"

	"github.com/example/shineydraw/internal/drawing"
	"github.com/example/shineydraw/internal/geom"
	"github.com/example/shineydraw/internal/indicator"
	"github.com/example/shineydraw/internal/render"
	"github.com/example/shineydraw/internal/shape"
	"github.com/example/shineydraw/internal/theme"
	"github.com/example/shineydraw/internal/tool"
)

// ErrUnknownTool is returned by SetTool for names that are not registered.
var ErrUnknownTool = errors.New("unknown tool")

// Editor owns a drawing, its history and the active tool. Every method takes
// the editor lock, so gesture callbacks and rendering never interleave.
type Editor struct {
	mu sync.Mutex

	stack   *drawing.Stack
	ctx     *tool.Context
	handles *indicator.Handles
	theme   *theme.Theme
	shadow  render.ShadowOptions

	tools  map[string]tool.Tool
	names  []string
	active tool.Tool

	initialTool string
	updateCh    chan struct{}

	selectionFn func(shape.Shape)
	tapFn       func(shape.Shape)
	settingsFn  func(shape.Settings)
	pending     []func()
}

// Option modifies an Editor during creation.
type Option func(*Editor)

// WithSettings sets the initial style settings.
func WithSettings(s shape.Settings) Option { return func(e *Editor) { e.ctx.Settings = s } }

// WithTool selects the initially active tool by name.
func WithTool(name string) Option { return func(e *Editor) { e.initialTool = name } }

// WithIndicator replaces the selection indicator.
func WithIndicator(h *indicator.Handles) Option { return func(e *Editor) { e.handles = h } }

// WithSelectionListener registers a callback for selection changes.
func WithSelectionListener(fn func(shape.Shape)) Option {
	return func(e *Editor) { e.selectionFn = fn }
}

// WithTapSelectionListener registers a callback for taps on the selected
// shape. Without one such a tap deselects.
func WithTapSelectionListener(fn func(shape.Shape)) Option {
	return func(e *Editor) { e.tapFn = fn }
}

// WithSettingsListener registers a callback for when the style settings
// change, including when they follow a newly selected shape.
func WithSettingsListener(fn func(shape.Settings)) Option {
	return func(e *Editor) { e.settingsFn = fn }
}

// WithLogger sets the logger used by the drawing and tool packages.
func WithLogger(l *slog.Logger) Option { return func(*Editor) { drawing.SetLogger(l) } }

// WithTheme sets the canvas and selection colours.
func WithTheme(t *theme.Theme) Option { return func(e *Editor) { e.theme = t } }

// WithHitSize sets the side of the square around each handle that starts a
// resize.
func WithHitSize(size float64) Option { return func(e *Editor) { e.ctx.HitSize = size } }

// WithShadow enables a drop shadow under the shapes.
func WithShadow(opts render.ShadowOptions) Option { return func(e *Editor) { e.shadow = opts } }

// DefaultTools returns one instance of every tool in toolbar order.
func DefaultTools() []tool.Tool {
	return []tool.Tool{
		tool.NewSelectionTool(),
		tool.NewLineTool(),
		tool.NewArrowTool(),
		tool.NewRectTool(),
		tool.NewEllipseTool(),
		tool.NewAngleTool(),
		tool.NewPenTool(),
	}
}

// New creates an Editor over an empty drawing. The selection tool is active
// unless WithTool names another.
func New(opts ...Option) (*Editor, error) {
	e := &Editor{
		stack:       drawing.NewStack(drawing.New()),
		handles:     indicator.NewHandles(indicator.DefaultHandleSize),
		theme:       theme.Default(),
		tools:       map[string]tool.Tool{},
		initialTool: tool.NameSelection,
		updateCh:    make(chan struct{}, 1),
	}
	e.ctx = tool.NewContext(e.stack)
	for _, t := range DefaultTools() {
		e.tools[t.Name()] = t
		e.names = append(e.names, t.Name())
	}
	for _, o := range opts {
		o(e)
	}

	e.ctx.Indicator = e.handles
	e.ctx.HandleColor = e.theme.Handle
	e.stack.OnDirty = e.NotifyChanged
	e.ctx.OnDirty = e.NotifyChanged
	e.ctx.OnSelectionChanged = func(s shape.Shape) {
		if e.selectionFn != nil {
			e.pending = append(e.pending, func() { e.selectionFn(s) })
		}
	}
	if e.tapFn != nil {
		e.ctx.OnTapSelected = func(s shape.Shape) {
			e.pending = append(e.pending, func() { e.tapFn(s) })
		}
	}

	t, ok := e.tools[e.initialTool]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownTool, e.initialTool)
	}
	e.active = t
	t.Activate(e.ctx)
	return e, nil
}

// Updates returns a channel that receives a value whenever the editor needs
// repainting. Notifications coalesce while nobody is reading.
func (e *Editor) Updates() <-chan struct{} { return e.updateCh }

// NotifyChanged requests a repaint.
func (e *Editor) NotifyChanged() {
	select {
	case e.updateCh <- struct{}{}:
	default:
	}
}

// do runs fn under the lock and delivers listener callbacks after releasing
// it, so listeners may call back into the editor.
func (e *Editor) do(fn func()) {
	e.mu.Lock()
	before := e.ctx.Settings
	fn()
	pending := e.pending
	e.pending = nil
	settings := e.ctx.Settings
	e.mu.Unlock()

	for _, p := range pending {
		p()
	}
	if settings != before && e.settingsFn != nil {
		e.settingsFn(settings)
	}
}

// ToolNames lists the registered tools in toolbar order.
func (e *Editor) ToolNames() []string {
	return append([]string(nil), e.names...)
}

// Tool returns the name of the active tool.
func (e *Editor) Tool() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.active.Name()
}

// SetTool deactivates the current tool and activates name.
func (e *Editor) SetTool(name string) error {
	t, ok := e.tools[name]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownTool, name)
	}
	e.do(func() {
		if t == e.active {
			return
		}
		e.active.Deactivate(e.ctx)
		e.active = t
		t.Activate(e.ctx)
		toolLogger().Debug("tool changed", "tool", name)
		e.NotifyChanged()
	})
	return nil
}

func (e *Editor) Tap(p geom.Point) { e.do(func() { e.active.Tap(e.ctx, p) }) }

func (e *Editor) DragStart(p geom.Point) { e.do(func() { e.active.DragStart(e.ctx, p) }) }

func (e *Editor) DragContinue(p, velocity geom.Point) {
	e.do(func() { e.active.DragContinue(e.ctx, p, velocity) })
}

func (e *Editor) DragEnd(p geom.Point) { e.do(func() { e.active.DragEnd(e.ctx, p) }) }

func (e *Editor) DragCancel(p geom.Point) { e.do(func() { e.active.DragCancel(e.ctx, p) }) }

func (e *Editor) PinchStart(start, end geom.Point, scale float64) {
	e.do(func() { e.active.PinchStart(e.ctx, start, end, scale) })
}

func (e *Editor) PinchContinue(start, end geom.Point, scale float64) {
	e.do(func() { e.active.PinchContinue(e.ctx, start, end, scale) })
}

func (e *Editor) PinchEnd(start, end geom.Point, scale float64) {
	e.do(func() { e.active.PinchEnd(e.ctx, start, end, scale) })
}

func (e *Editor) PinchCancel(start, end geom.Point, scale float64) {
	e.do(func() { e.active.PinchCancel(e.ctx, start, end, scale) })
}

func (e *Editor) RotateStart(angle float64) { e.do(func() { e.active.RotateStart(e.ctx, angle) }) }

func (e *Editor) RotateContinue(angle float64) {
	e.do(func() { e.active.RotateContinue(e.ctx, angle) })
}

func (e *Editor) RotateEnd(angle float64) { e.do(func() { e.active.RotateEnd(e.ctx, angle) }) }

func (e *Editor) RotateCancel(angle float64) {
	e.do(func() { e.active.RotateCancel(e.ctx, angle) })
}

// Undo reverts the most recent operation.
func (e *Editor) Undo() {
	e.do(func() {
		e.stack.Undo()
		e.ctx.RefreshSelection()
	})
}

// Redo re-applies the most recently undone operation.
func (e *Editor) Redo() {
	e.do(func() {
		e.stack.Redo()
		e.ctx.RefreshSelection()
	})
}

// CanUndo reports whether there is history to undo.
func (e *Editor) CanUndo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stack.CanUndo()
}

// CanRedo reports whether there is history to redo.
func (e *Editor) CanRedo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stack.CanRedo()
}

// ApplySettings hands user-chosen settings to the active tool, which may
// restyle the selection or the shape in progress.
func (e *Editor) ApplySettings(s shape.Settings) {
	e.do(func() {
		e.active.ApplySettings(e.ctx, s)
		e.NotifyChanged()
	})
}

// Settings returns the current style settings.
func (e *Editor) Settings() shape.Settings {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ctx.Settings
}

// Shapes returns the committed shapes in z-order.
func (e *Editor) Shapes() []shape.Shape {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stack.Drawing().Shapes()
}

// ShapeInProgress returns the active tool's uncommitted shape, or nil.
func (e *Editor) ShapeInProgress() shape.Shape {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.active.ShapeInProgress()
}

// Selected returns the selected shape, or nil.
func (e *Editor) Selected() shape.Shape {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ctx.Selected()
}

// Theme returns the editor colours.
func (e *Editor) Theme() *theme.Theme { return e.theme }

// Render draws the editor into a w*h image, the selection chrome included.
func (e *Editor) Render(w, h int) *image.RGBA {
	e.mu.Lock()
	defer e.mu.Unlock()
	return render.Image(e.scene(w, h, true))
}

// Export draws only the shapes, as written to files and the clipboard.
func (e *Editor) Export(w, h int) *image.RGBA {
	e.mu.Lock()
	defer e.mu.Unlock()
	return render.Image(e.scene(w, h, false))
}

// SavePNG writes the exported drawing to path.
func (e *Editor) SavePNG(path string, w, h int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := render.SavePNG(path, e.scene(w, h, false)); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// EncodePNG writes the exported drawing as PNG to w.
func (e *Editor) EncodePNG(w io.Writer, width, height int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return render.EncodePNG(w, e.scene(width, height, false))
}

func (e *Editor) scene(w, h int, chrome bool) render.Scene {
	opts := render.Options{
		Background: e.theme.Canvas,
		InProgress: e.active.ShapeInProgress(),
		Shadow:     e.shadow,
	}
	if chrome {
		opts.Indicator = e.handles
		opts.Outline = e.theme.Outline
	}
	return render.Scene{Width: w, Height: h, Shapes: e.stack.Drawing().Shapes(), Options: opts}
}

func toolLogger() *slog.Logger { return tool.Logger() }
