package shape

import "image/color"

// Settings is the user-selected style applied to new and edited shapes.
// A fully transparent FillColor means "no fill".
type Settings struct {
	StrokeColor color.RGBA
	FillColor   color.RGBA
	StrokeWidth float64
}

// DefaultSettings returns red strokes of width 4 with no fill.
func DefaultSettings() Settings {
	return Settings{
		StrokeColor: color.RGBA{255, 0, 0, 255},
		StrokeWidth: 4,
	}
}

// Style is a snapshot of every style field a shape may carry. It is what
// style operations record before and after an edit.
type Style struct {
	StrokeColor color.RGBA
	StrokeWidth float64
	FillColor   color.RGBA
}

// stroke is embedded by shapes that carry stroke state.
type stroke struct {
	strokeColor color.RGBA
	strokeWidth float64
}

func (s *stroke) StrokeColor() color.RGBA { return s.strokeColor }

func (s *stroke) SetStrokeColor(c color.RGBA) { s.strokeColor = c }

func (s *stroke) StrokeWidth() float64 { return s.strokeWidth }

func (s *stroke) SetStrokeWidth(w float64) { s.strokeWidth = w }

// fill is embedded by shapes that carry fill state.
type fill struct {
	fillColor color.RGBA
}

func (f *fill) FillColor() color.RGBA { return f.fillColor }

func (f *fill) SetFillColor(c color.RGBA) { f.fillColor = c }

// StyleOf captures the style fields supported by s.
func StyleOf(s Shape) Style {
	var st Style
	if sh, ok := AsStrokeStyled(s); ok {
		st.StrokeColor = sh.StrokeColor()
		st.StrokeWidth = sh.StrokeWidth()
	}
	if sh, ok := AsFillStyled(s); ok {
		st.FillColor = sh.FillColor()
	}
	return st
}

// SetStyle writes st into the style fields supported by s.
func SetStyle(s Shape, st Style) {
	if sh, ok := AsStrokeStyled(s); ok {
		sh.SetStrokeColor(st.StrokeColor)
		sh.SetStrokeWidth(st.StrokeWidth)
	}
	if sh, ok := AsFillStyled(s); ok {
		sh.SetFillColor(st.FillColor)
	}
}

// ApplySettings copies the user settings onto every style capability of s.
func ApplySettings(s Shape, settings Settings) {
	SetStyle(s, StyleFromSettings(s, settings))
}

// StyleFromSettings returns the style s would carry after ApplySettings.
// Fields for capabilities s lacks keep their current values.
func StyleFromSettings(s Shape, settings Settings) Style {
	st := StyleOf(s)
	if _, ok := AsStrokeStyled(s); ok {
		st.StrokeColor = settings.StrokeColor
		st.StrokeWidth = settings.StrokeWidth
	}
	if _, ok := AsFillStyled(s); ok {
		st.FillColor = settings.FillColor
	}
	return st
}

// AdoptStyle returns settings updated with the style carried by s, used when
// a selection change should make the user settings follow the shape.
func AdoptStyle(settings Settings, s Shape) Settings {
	if sh, ok := AsStrokeStyled(s); ok {
		settings.StrokeColor = sh.StrokeColor()
		settings.StrokeWidth = sh.StrokeWidth()
	}
	if sh, ok := AsFillStyled(s); ok {
		settings.FillColor = sh.FillColor()
	}
	return settings
}
