package tool

import (
	"log/slog"

	"github.com/example/shineydraw/internal/drawing"
)

// Logger returns the logger shared with the drawing package.
func Logger() *slog.Logger { return drawing.Logger() }
