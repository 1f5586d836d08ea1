package drawing

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record; Enabled returns false so callers skip
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger used by the drawing engine and the tools.
// By default nothing is logged. Pass nil to restore silent behaviour.
//
// Levels:
//   - [slog.LevelDebug]: gesture transitions and committed operations
//   - [slog.LevelWarn]: ignored operations (e.g. reverting a missing shape)
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current engine logger. The tool and appstate packages
// share it so one SetLogger call configures the whole engine.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
