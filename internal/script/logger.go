package script

import (
	"log/slog"

	"github.com/example/shineydraw/internal/drawing"
)

func logger() *slog.Logger { return drawing.Logger() }
