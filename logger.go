package bezier

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/bezier/loft"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the logger for bezier and its loft sub-package.
// By default, bezier produces no log output. Call SetLogger to enable logging.
//
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by bezier:
//   - [slog.LevelDebug]: recomputation details (sample counts, timings)
//   - [slog.LevelInfo]: lifecycle events (curve created or deleted, surface generated)
//   - [slog.LevelWarn]: refused operations (non-convex window, open curve, too few points)
//
// Example:
//
//	bezier.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	loft.SetLogger(l)
}

// Logger returns the current logger used by bezier.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
