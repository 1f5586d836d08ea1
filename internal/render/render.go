// Package render rasterizes a drawing, the shape in progress and the
// selection indicator with gg.
package render

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/example/shineydraw/internal/geom"
	"github.com/example/shineydraw/internal/indicator"
	"github.com/example/shineydraw/internal/shape"
	"github.com/gogpu/gg"
)

// Options controls what is drawn on top of the committed shapes.
type Options struct {
	Background color.RGBA
	// InProgress is drawn above every committed shape.
	InProgress shape.Shape
	// Indicator, when visible, is drawn last.
	Indicator *indicator.Handles
	Outline   color.RGBA
	Shadow    ShadowOptions
}

// Scene is everything the renderer needs for one frame. It holds live shape
// pointers, so callers keep shapes from changing until drawing returns.
type Scene struct {
	Width, Height int
	Shapes        []shape.Shape
	Options       Options
}

// Draw renders the scene into a new gg context.
func Draw(sc Scene) *gg.Context {
	dc := gg.NewContext(sc.Width, sc.Height)
	dc.ClearWithColor(gg.FromColor(sc.Options.Background))
	if sc.Options.Shadow.Opacity > 0 {
		layer := gg.NewContext(sc.Width, sc.Height)
		drawShapes(layer, sc.Shapes, sc.Options.InProgress)
		img := DropShadow(toRGBA(layer.Image()), sc.Options.Shadow)
		dc.DrawImage(gg.ImageBufFromImage(img), 0, 0)
	} else {
		drawShapes(dc, sc.Shapes, sc.Options.InProgress)
	}
	if h := sc.Options.Indicator; h != nil && h.Visible() {
		Handles(dc, h, sc.Options.Outline)
	}
	return dc
}

// Image renders the scene and returns the pixels.
func Image(sc Scene) *image.RGBA {
	return toRGBA(Draw(sc).Image())
}

// EncodePNG renders the scene as PNG into w.
func EncodePNG(w io.Writer, sc Scene) error {
	return Draw(sc).EncodePNG(w)
}

// SavePNG renders the scene into the PNG file at path.
func SavePNG(path string, sc Scene) error {
	return Draw(sc).SavePNG(path)
}

func drawShapes(dc *gg.Context, shapes []shape.Shape, inProgress shape.Shape) {
	for _, s := range shapes {
		Shape(dc, s)
	}
	if inProgress != nil {
		Shape(dc, inProgress)
	}
}

// Shape draws s with its transform applied.
func Shape(dc *gg.Context, s shape.Shape) {
	dc.Push()
	defer dc.Pop()
	dc.Transform(s.Transform().Matrix(shape.Reference(s)))
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)

	switch s := s.(type) {
	case *shape.Line:
		dc.DrawLine(s.A().X, s.A().Y, s.B().X, s.B().Y)
		stroke(dc, s)
	case *shape.Arrow:
		dc.DrawLine(s.A().X, s.A().Y, s.B().X, s.B().Y)
		h1, h2 := s.HeadPoints()
		dc.MoveTo(h1.X, h1.Y)
		dc.LineTo(s.B().X, s.B().Y)
		dc.LineTo(h2.X, h2.Y)
		stroke(dc, s)
	case *shape.Rect:
		b := s.Bounds()
		dc.DrawRectangle(b.Min.X, b.Min.Y, b.Width(), b.Height())
		fillAndStroke(dc, s)
	case *shape.Ellipse:
		b := s.Bounds()
		c := geom.Center(b)
		dc.DrawEllipse(c.X, c.Y, b.Width()/2, b.Height()/2)
		fillAndStroke(dc, s)
	case *shape.Angle:
		dc.MoveTo(s.A().X, s.A().Y)
		dc.LineTo(s.B().X, s.B().Y)
		dc.LineTo(s.C().X, s.C().Y)
		stroke(dc, s)
		angleArc(dc, s)
	case *shape.Pen:
		pen(dc, s)
	}
}

func stroke(dc *gg.Context, s shape.StrokeStyled) {
	if s.StrokeWidth() <= 0 || s.StrokeColor().A == 0 {
		dc.ClearPath()
		return
	}
	dc.SetColor(s.StrokeColor())
	dc.SetLineWidth(s.StrokeWidth())
	dc.Stroke()
}

func fillAndStroke(dc *gg.Context, s shape.StandardStyled) {
	if fc := s.FillColor(); fc.A > 0 {
		dc.SetColor(fc)
		dc.FillPreserve()
	}
	stroke(dc, s)
}

// angleArc marks the angle at the vertex with an arc over the smaller sweep.
func angleArc(dc *gg.Context, s *shape.Angle) {
	r := math.Min(geom.Distance(s.B(), s.A()), geom.Distance(s.B(), s.C())) / 3
	if r < 1 {
		return
	}
	from := geom.AngleBetween(s.B(), s.A())
	to := geom.AngleBetween(s.B(), s.C())
	sweep := math.Remainder(to-from, 2*math.Pi)
	if sweep < 0 {
		from, sweep = to, -sweep
	}
	dc.NewSubPath()
	dc.DrawArc(s.B().X, s.B().Y, r, from, from+sweep)
	stroke(dc, s)
}

func pen(dc *gg.Context, s *shape.Pen) {
	pts := s.Points()
	switch len(pts) {
	case 0:
		return
	case 1:
		if s.StrokeColor().A > 0 {
			dc.SetColor(s.StrokeColor())
			dc.DrawCircle(pts[0].X, pts[0].Y, math.Max(s.StrokeWidth()/2, 0.5))
			dc.Fill()
		}
		return
	}
	dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		dc.LineTo(p.X, p.Y)
	}
	stroke(dc, s)
}

// Handles draws the dashed selection outline and every handle.
func Handles(dc *gg.Context, h *indicator.Handles, outline color.RGBA) {
	dc.Push()
	defer dc.Pop()
	dc.Identity()

	b := h.Outline()
	dc.SetColor(outline)
	dc.SetLineWidth(1)
	dc.SetDash(4, 4)
	dc.DrawRectangle(b.Min.X, b.Min.Y, b.Width(), b.Height())
	dc.Stroke()
	dc.ClearDash()

	for _, hd := range h.Handles() {
		r := hd.Rect
		dc.DrawRoundedRectangle(r.Min.X, r.Min.Y, r.Width(), r.Height(), r.Width()/2)
		dc.SetColor(color.White)
		dc.FillPreserve()
		dc.SetColor(h.Color())
		dc.Stroke()
	}
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(x, y, img.At(x, y))
		}
	}
	return out
}
