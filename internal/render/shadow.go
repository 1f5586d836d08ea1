package render

import (
	"image"
	"image/color"
	"image/draw"
)

// ShadowOptions configures the drop shadow cast by the shape layer. A zero
// Opacity disables it.
type ShadowOptions struct {
	Radius  int
	Offset  image.Point
	Opacity float64
}

// DefaultShadowOptions returns a soft shadow offset down and to the right.
func DefaultShadowOptions() ShadowOptions {
	return ShadowOptions{Radius: 4, Offset: image.Pt(3, 3), Opacity: 0.4}
}

// DropShadow returns a copy of layer composited over a blurred, offset copy
// of its own alpha. The canvas keeps the bounds of layer; shadow that falls
// outside them is clipped.
func DropShadow(layer *image.RGBA, opts ShadowOptions) *image.RGBA {
	b := layer.Bounds()
	out := image.NewRGBA(b)
	if opts.Opacity <= 0 || b.Empty() {
		draw.Draw(out, b, layer, b.Min, draw.Src)
		return out
	}
	opacity := min(opts.Opacity, 1)

	mask := image.NewAlpha(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			sx, sy := x-opts.Offset.X, y-opts.Offset.Y
			if !image.Pt(sx, sy).In(b) {
				continue
			}
			mask.SetAlpha(x, y, color.Alpha{A: layer.RGBAAt(sx, sy).A})
		}
	}
	boxBlur(mask.Pix, b.Dx(), b.Dy(), mask.Stride, max(opts.Radius, 0))

	tint := image.NewUniform(color.RGBA{A: uint8(opacity*255 + 0.5)})
	draw.DrawMask(out, b, tint, image.Point{}, mask, b.Min, draw.Over)
	draw.Draw(out, b, layer, b.Min, draw.Over)
	return out
}

// boxBlur blurs a w*h plane in place with a horizontal then a vertical
// running-sum pass.
func boxBlur(pix []uint8, w, h, stride, radius int) {
	if radius == 0 {
		return
	}
	line := make([]uint8, max(w, h))
	pass := func(n int, at func(i int) int) {
		sum := 0
		for i := 0; i < n; i++ {
			line[i] = pix[at(i)]
		}
		for i := 0; i <= radius && i < n; i++ {
			sum += int(line[i])
		}
		for i := 0; i < n; i++ {
			lo, hi := max(i-radius, 0), min(i+radius, n-1)
			pix[at(i)] = uint8(sum / (hi - lo + 1))
			if j := i + radius + 1; j < n {
				sum += int(line[j])
			}
			if j := i - radius; j >= 0 {
				sum -= int(line[j])
			}
		}
	}
	for y := 0; y < h; y++ {
		row := y * stride
		pass(w, func(i int) int { return row + i })
	}
	for x := 0; x < w; x++ {
		pass(h, func(i int) int { return i*stride + x })
	}
}
