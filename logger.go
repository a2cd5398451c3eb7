package glyph

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler drops every record. Enabled reports false so callers
// never format attributes for a disabled logger.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h discardHandler) WithGroup(string) slog.Handler           { return h }

func silentLogger() *slog.Logger { return slog.New(discardHandler{}) }

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silentLogger())
}

// SetLogger sets the logger used by glyph and its sub-packages. Nothing
// is logged by default; nil restores that.
//
// Levels in use:
//   - [slog.LevelDebug]: rebuilds, cache statistics, imports
//   - [slog.LevelWarn]: contours skipped or left unchanged (parameter
//     mismatch, invalid dash pattern)
//
// SetLogger may be called while contours are being built on other
// goroutines.
//
//	glyph.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//		Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silentLogger()
	}
	current.Store(l)
}

// Logger returns the logger set with SetLogger.
func Logger() *slog.Logger {
	return current.Load()
}
