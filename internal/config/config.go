// Package config reads and writes the shineydraw rc file.
package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/example/shineydraw/internal/shape"
	"github.com/example/shineydraw/internal/theme"
)

// Notify holds which events raise desktop notifications.
type Notify struct {
	Save bool
	Copy bool
}

// Style holds the initial user settings for new shapes.
type Style struct {
	Stroke string
	Fill   string
	Width  float64
}

// Selection holds the selection indicator settings.
type Selection struct {
	HandleColor  string
	HandleSize   float64
	HitTolerance float64
}

// Config holds the application configuration.
type Config struct {
	Theme     string
	SaveDir   string
	Notify    Notify
	Style     Style
	Selection Selection
	Themes    map[string]*theme.Theme
}

// New returns a Config with every field at its default.
func New() *Config {
	return &Config{Themes: make(map[string]*theme.Theme)}
}

// Settings returns the style section applied on top of base.
func (c *Config) Settings(base shape.Settings) (shape.Settings, error) {
	if c.Style.Stroke != "" {
		col, err := shape.ParseColor(c.Style.Stroke)
		if err != nil {
			return base, fmt.Errorf("style stroke: %w", err)
		}
		base.StrokeColor = col
	}
	if c.Style.Fill != "" {
		col, err := shape.ParseColor(c.Style.Fill)
		if err != nil {
			return base, fmt.Errorf("style fill: %w", err)
		}
		base.FillColor = col
	}
	if c.Style.Width > 0 {
		base.StrokeWidth = c.Style.Width
	}
	return base, nil
}

// String returns the configuration in rc format.
func (c *Config) String() string {
	var sb strings.Builder

	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.SaveDir != "" {
		fmt.Fprintf(&sb, "save_dir = %s\n", c.SaveDir)
	}
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	sb.WriteString("\n")

	if c.Style != (Style{}) {
		sb.WriteString("[style]\n")
		if c.Style.Stroke != "" {
			fmt.Fprintf(&sb, "stroke = %s\n", c.Style.Stroke)
		}
		if c.Style.Fill != "" {
			fmt.Fprintf(&sb, "fill = %s\n", c.Style.Fill)
		}
		if c.Style.Width > 0 {
			fmt.Fprintf(&sb, "width = %g\n", c.Style.Width)
		}
		sb.WriteString("\n")
	}

	if c.Selection != (Selection{}) {
		sb.WriteString("[selection]\n")
		if c.Selection.HandleColor != "" {
			fmt.Fprintf(&sb, "handle_color = %s\n", c.Selection.HandleColor)
		}
		if c.Selection.HandleSize > 0 {
			fmt.Fprintf(&sb, "handle_size = %g\n", c.Selection.HandleSize)
		}
		if c.Selection.HitTolerance > 0 {
			fmt.Fprintf(&sb, "hit_tolerance = %g\n", c.Selection.HitTolerance)
		}
		sb.WriteString("\n")
	}

	names := make([]string, 0, len(c.Themes))
	for name := range c.Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		_ = theme.Format(&sb, c.Themes[name])
		sb.WriteString("\n")
	}

	return sb.String()
}
