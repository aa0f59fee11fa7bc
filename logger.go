package quat3d

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record; Enabled returns false so nothing gets formatted.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by quat3d and its sub-packages. By default, quat3d produces no log output.
// SetLogger is safe for concurrent use; pass nil to silence logging again.
//
// Log levels used by quat3d:
//   - [slog.LevelDebug]: skipped or ignored glTF data (non-rotation animation channels, and so on)
//   - [slog.LevelWarn]: data that was loaded, but looks wrong (non-unit rotations, unknown interpolation)
//
// Example:
//
//	quat3d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by quat3d.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
