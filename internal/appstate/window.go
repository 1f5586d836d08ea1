package appstate

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"unicode"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/shineydraw/internal/clipboard"
	"github.com/example/shineydraw/internal/geom"
	"github.com/example/shineydraw/internal/notify"
	"github.com/example/shineydraw/internal/script"
	"github.com/example/shineydraw/internal/shape"
	"github.com/example/shineydraw/internal/tool"
)

const (
	statusHeight = 24
	// deadZone is how far the pointer may travel before a press becomes a
	// drag instead of a tap.
	deadZone     = 4
	wheelScale   = 1.1
	wheelRotate  = math.Pi / 24
	messageDelay = 2 * time.Second
)

var messageFace font.Face

func init() {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Fatalf("parse font: %v", err)
	}
	messageFace, err = opentype.NewFace(f, &opentype.FaceOptions{Size: 24, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		log.Fatalf("font face: %v", err)
	}
}

// KeyShortcut describes a keyboard combination that triggers an action.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

// toolKeys binds a letter to each tool.
var toolKeys = map[rune]string{
	's': tool.NameSelection,
	'l': tool.NameLine,
	'a': tool.NameArrow,
	'r': tool.NameRect,
	'e': tool.NameEllipse,
	'g': tool.NameAngle,
	'p': tool.NamePen,
}

// Window hosts an Editor in a desktop window.
type Window struct {
	editor   *Editor
	width    int
	height   int
	output   string
	notifier *notify.Notifier
	onClose  func()

	colorIdx int
	widthIdx int
	fillOn   bool

	mu           sync.Mutex
	message      string
	messageUntil time.Time
}

// WindowOption modifies a Window during creation.
type WindowOption func(*Window)

// WithOutput sets the file written by the save shortcut.
func WithOutput(path string) WindowOption { return func(w *Window) { w.output = path } }

// WithSize sets the initial canvas size.
func WithSize(width, height int) WindowOption {
	return func(w *Window) { w.width, w.height = width, height }
}

// WithNotifier enables desktop notifications after save and copy.
func WithNotifier(n *notify.Notifier) WindowOption { return func(w *Window) { w.notifier = n } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) WindowOption { return func(w *Window) { w.onClose = fn } }

// NewWindow creates a host for e. Nothing is shown until Run.
func NewWindow(e *Editor, opts ...WindowOption) *Window {
	w := &Window{
		editor: e,
		width:  800,
		height: 600,
		output: "drawing.png",
	}
	for _, o := range opts {
		o(w)
	}
	s := e.Settings()
	w.colorIdx = shape.EnsurePaletteColor(s.StrokeColor, "")
	w.widthIdx = nearestWidth(s.StrokeWidth)
	w.fillOn = s.FillColor.A != 0
	return w
}

// Run executes the UI loop using shiny's driver.
func (w *Window) Run() { driver.Main(w.Main) }

type frame struct {
	width, height int
}

// painter draws the most recently requested frame on its own goroutine. A
// newer request cancels the frame in flight and replaces any pending one.
type painter struct {
	draw   func(context.Context, frame)
	ch     chan frame
	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func startPainter(draw func(context.Context, frame)) *painter {
	p := &painter{draw: draw, ch: make(chan frame, 1)}
	p.wg.Add(1)
	go p.loop()
	return p
}

func (p *painter) loop() {
	defer p.wg.Done()
	for f := range p.ch {
		ctx, cancel := context.WithCancel(context.Background())
		p.setCancel(cancel)
		p.draw(ctx, f)
		p.setCancel(nil)
		cancel()
	}
}

func (p *painter) setCancel(cancel context.CancelFunc) {
	p.mu.Lock()
	p.cancel = cancel
	p.mu.Unlock()
}

func (p *painter) abort() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	p.mu.Unlock()
}

// request must only be called from one goroutine.
func (p *painter) request(f frame) {
	select {
	case p.ch <- f:
		return
	default:
	}
	select {
	case <-p.ch:
	default:
	}
	p.abort()
	p.ch <- f
}

// stop drops the pending frame, cancels the one in flight and returns once
// the painter goroutine has exited.
func (p *painter) stop() {
	select {
	case <-p.ch:
	default:
	}
	close(p.ch)
	p.abort()
	p.wg.Wait()
}

// Main runs the event loop on s until the window closes.
func (w *Window) Main(s screen.Screen) {
	win, err := s.NewWindow(&screen.NewWindowOptions{
		Width:  w.width,
		Height: w.height + statusHeight,
		Title:  "ShineyDraw",
	})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer win.Release()
	defer func() {
		if w.onClose != nil {
			w.onClose()
		}
	}()

	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case <-w.editor.Updates():
				win.Send(paint.Event{})
			case <-done:
				return
			}
		}
	}()

	painter := startPainter(func(ctx context.Context, f frame) { w.drawFrame(ctx, s, win, f) })
	// The painter must be gone before the window is released.
	defer painter.stop()

	shortcuts := map[KeyShortcut]func(){}
	register := func(fn func(), keys ...KeyShortcut) {
		for _, k := range keys {
			shortcuts[k] = fn
		}
	}
	register(w.editor.Undo, KeyShortcut{Rune: 'z', Modifiers: key.ModControl})
	register(w.editor.Redo,
		KeyShortcut{Rune: 'y', Modifiers: key.ModControl},
		KeyShortcut{Rune: 'z', Modifiers: key.ModControl | key.ModShift})
	register(w.save, KeyShortcut{Rune: 's', Modifiers: key.ModControl})
	register(w.copy, KeyShortcut{Rune: 'c', Modifiers: key.ModControl})
	register(w.paste, KeyShortcut{Rune: 'v', Modifiers: key.ModControl})
	register(func() { w.cycleColor(1) }, KeyShortcut{Rune: 'c'})
	register(func() { w.cycleColor(-1) }, KeyShortcut{Rune: 'c', Modifiers: key.ModShift})
	register(func() { w.cycleWidth(1) }, KeyShortcut{Rune: 'w'})
	register(func() { w.cycleWidth(-1) }, KeyShortcut{Rune: 'w', Modifiers: key.ModShift})
	register(w.toggleFill, KeyShortcut{Rune: 'f'})
	for r, name := range toolKeys {
		register(func() {
			if err := w.editor.SetTool(name); err != nil {
				log.Printf("tool: %v", err)
				return
			}
			w.flash(name)
		}, KeyShortcut{Rune: r})
	}

	var (
		pressed  bool
		dragging bool
		pressAt  geom.Point
		last     geom.Point
		lastAt   time.Time
	)
	cur := frame{width: w.width, height: w.height + statusHeight}

	for {
		switch e := win.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
		case size.Event:
			cur = frame{width: e.WidthPx, height: e.HeightPx}
			w.mu.Lock()
			w.width, w.height = e.WidthPx, e.HeightPx-statusHeight
			w.mu.Unlock()
			painter.request(cur)
		case paint.Event:
			painter.request(cur)
		case mouse.Event:
			p := geom.Point{X: float64(e.X), Y: float64(e.Y)}
			switch {
			case e.Button.IsWheel():
				w.wheel(p, e)
			case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress:
				pressed, dragging = true, false
				pressAt, last, lastAt = p, p, time.Now()
			case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirRelease:
				if !pressed {
					continue
				}
				pressed = false
				if dragging {
					w.editor.DragEnd(p)
				} else {
					w.editor.Tap(pressAt)
				}
			case e.Direction == mouse.DirNone && pressed:
				if !dragging {
					if geom.Distance(p, pressAt) < deadZone {
						continue
					}
					dragging = true
					w.editor.DragStart(pressAt)
				}
				now := time.Now()
				w.editor.DragContinue(p, velocity(last, p, now.Sub(lastAt)))
				last, lastAt = p, now
			}
		case key.Event:
			if e.Direction != key.DirPress {
				continue
			}
			if e.Code == key.CodeEscape {
				if pressed && dragging {
					w.editor.DragCancel(last)
				}
				pressed, dragging = false, false
				continue
			}
			if e.Rune == 'q' && e.Modifiers == 0 {
				return
			}
			ks := KeyShortcut{Rune: unicode.ToLower(e.Rune), Code: e.Code, Modifiers: e.Modifiers}
			if ks.Rune > 0 {
				ks.Code = key.CodeUnknown
			}
			if fn, ok := shortcuts[ks]; ok {
				fn()
				win.Send(paint.Event{})
			}
		case error:
			log.Print(e)
		}
	}
}

// velocity returns the pointer velocity in pixels per second.
func velocity(from, to geom.Point, dt time.Duration) geom.Point {
	if dt <= 0 {
		return geom.Point{}
	}
	return to.Sub(from).Mul(1 / dt.Seconds())
}

// wheel turns each wheel step into a complete pinch, or a rotation with
// shift held, applied to the selection.
func (w *Window) wheel(p geom.Point, e mouse.Event) {
	if w.editor.Tool() != tool.NameSelection || e.Direction != mouse.DirStep {
		return
	}
	up := e.Button == mouse.ButtonWheelUp || e.Button == mouse.ButtonWheelRight
	if e.Modifiers&key.ModShift != 0 {
		angle := wheelRotate
		if !up {
			angle = -angle
		}
		w.editor.RotateStart(0)
		w.editor.RotateEnd(angle)
		return
	}
	scale := wheelScale
	if !up {
		scale = 1 / wheelScale
	}
	w.editor.PinchStart(p, p, 1)
	w.editor.PinchEnd(p, p, scale)
}

func (w *Window) canvasSize() (int, int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width, w.height
}

func (w *Window) flash(msg string) {
	log.Print(msg)
	w.mu.Lock()
	w.message = msg
	w.messageUntil = time.Now().Add(messageDelay)
	w.mu.Unlock()
	w.editor.NotifyChanged()
}

func (w *Window) save() {
	width, height := w.canvasSize()
	if dir := filepath.Dir(w.output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Printf("save: %v", err)
			return
		}
	}
	if err := w.editor.SavePNG(w.output, width, height); err != nil {
		log.Printf("save: %v", err)
		return
	}
	w.flash(fmt.Sprintf("saved %s", w.output))
	if w.notifier != nil {
		w.notifier.Save(w.output)
	}
}

func (w *Window) copy() {
	img := w.editor.Export(w.canvasSize())
	if err := clipboard.WriteImage(img); err != nil {
		log.Printf("copy: %v", err)
		return
	}
	w.flash("image copied to clipboard")
	if w.notifier != nil {
		w.notifier.Copy("drawing", img)
	}
}

// paste plays a gesture script held in the clipboard.
func (w *Window) paste() {
	text, err := clipboard.ReadText()
	if err != nil {
		log.Printf("paste: %v", err)
		return
	}
	if err := script.Run(w.editor, strings.NewReader(text)); err != nil {
		log.Printf("paste: %v", err)
		w.flash("script failed")
		return
	}
	w.flash("script played")
}

func (w *Window) cycleColor(step int) {
	n := len(shape.PaletteColors())
	w.colorIdx = ((w.colorIdx+step)%n + n) % n
	w.applyStyle()
}

func (w *Window) cycleWidth(step int) {
	n := len(shape.WidthOptions())
	w.widthIdx = ((w.widthIdx+step)%n + n) % n
	w.applyStyle()
}

func (w *Window) toggleFill() {
	w.fillOn = !w.fillOn
	w.applyStyle()
}

func (w *Window) applyStyle() {
	s := w.editor.Settings()
	s.StrokeColor = shape.PaletteColorAt(w.colorIdx).Color
	s.StrokeWidth = shape.WidthOptions()[w.widthIdx]
	s.FillColor = color.RGBA{}
	if w.fillOn {
		c := s.StrokeColor
		s.FillColor = color.RGBA{c.R / 2, c.G / 2, c.B / 2, 128}
	}
	w.editor.ApplySettings(s)
}

func nearestWidth(v float64) int {
	best := 0
	for i, o := range shape.WidthOptions() {
		if math.Abs(o-v) < math.Abs(shape.WidthOptions()[best]-v) {
			best = i
		}
	}
	return best
}

func (w *Window) status() string {
	s := w.editor.Settings()
	var b strings.Builder
	fmt.Fprintf(&b, "%s  stroke %s  width %g", w.editor.Tool(), shape.FormatColor(s.StrokeColor), s.StrokeWidth)
	if s.FillColor.A != 0 {
		fmt.Fprintf(&b, "  fill %s", shape.FormatColor(s.FillColor))
	}
	if w.editor.CanUndo() {
		b.WriteString("  ^Z undo")
	}
	if w.editor.CanRedo() {
		b.WriteString("  ^Y redo")
	}
	return b.String()
}

func (w *Window) drawFrame(ctx context.Context, s screen.Screen, win screen.Window, f frame) {
	if f.width <= 0 || f.height <= statusHeight {
		return
	}
	b, err := s.NewBuffer(image.Point{f.width, f.height})
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()
	dst := b.RGBA()

	canvas := w.editor.Render(f.width, f.height-statusHeight)
	draw.Draw(dst, canvas.Bounds(), canvas, image.Point{}, draw.Src)
	if ctx.Err() != nil {
		return
	}

	th := w.editor.Theme()
	bar := image.Rect(0, f.height-statusHeight, f.width, f.height)
	draw.Draw(dst, bar, &image.Uniform{th.StatusBar}, image.Point{}, draw.Src)
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(th.StatusText), Face: basicfont.Face7x13}
	d.Dot = fixed.P(6, f.height-statusHeight/2+4)
	d.DrawString(w.status())

	w.mu.Lock()
	msg, until := w.message, w.messageUntil
	w.mu.Unlock()
	if msg != "" && time.Now().Before(until) {
		d := &font.Drawer{Dst: dst, Src: image.Black, Face: messageFace}
		wmsg := d.MeasureString(msg).Ceil()
		ascent := messageFace.Metrics().Ascent.Ceil()
		descent := messageFace.Metrics().Descent.Ceil()
		px := (f.width - wmsg) / 2
		py := (f.height-statusHeight-ascent-descent)/2 + ascent
		rect := image.Rect(px-8, py-ascent-8, px+wmsg+8, py+descent+8)
		draw.Draw(dst, rect, &image.Uniform{color.RGBA{255, 255, 255, 230}}, image.Point{}, draw.Over)
		d.Dot = fixed.P(px, py)
		d.DrawString(msg)
	}
	if ctx.Err() != nil {
		return
	}

	win.Upload(image.Point{}, b, b.Bounds())
	win.Publish()
}
