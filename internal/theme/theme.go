// Package theme holds the colours of the editor surface and loads named
// themes from embedded, user and system locations.
package theme

import (
	"embed"
	"image/color"
)

// EmbeddedThemes carries the themes shipped with the binary.
//
//go:embed defaults/*.theme
var EmbeddedThemes embed.FS

// Theme defines the colours used around the shapes of a drawing.
type Theme struct {
	Name string

	Canvas     color.RGBA // Drawing background
	Outline    color.RGBA // Dashed selection rectangle
	Handle     color.RGBA // Resize handle border
	StatusBar  color.RGBA // Strip showing the current tool settings
	StatusText color.RGBA
}

// Default returns the built-in light theme.
func Default() *Theme {
	return &Theme{
		Name:       "Default",
		Canvas:     color.RGBA{255, 255, 255, 255},
		Outline:    color.RGBA{0, 120, 215, 255},
		Handle:     color.RGBA{0, 0, 0, 255},
		StatusBar:  color.RGBA{220, 220, 220, 255},
		StatusText: color.RGBA{0, 0, 0, 255},
	}
}

// Fields lists the colour keys understood by Parse in display order.
func Fields(t *Theme) []Field {
	return []Field{
		{"Canvas", &t.Canvas},
		{"Outline", &t.Outline},
		{"Handle", &t.Handle},
		{"StatusBar", &t.StatusBar},
		{"StatusText", &t.StatusText},
	}
}

// Field is a named colour slot of a Theme.
type Field struct {
	Key   string
	Color *color.RGBA
}
