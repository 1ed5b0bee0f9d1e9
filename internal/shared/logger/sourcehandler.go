package logger

import (
	"context"
	"log/slog"
	"runtime"
)

// sourceHandler decorates records at or above a threshold level with their
// source location. The inner handler must run with AddSource disabled, or
// it would report this wrapper's frame instead of the call site.
type sourceHandler struct {
	inner     slog.Handler
	threshold slog.Level
}

// newSourceHandler wraps a handler so only records at or above threshold
// carry file and line. Routine info logging stays compact while warnings
// and errors remain traceable.
func newSourceHandler(inner slog.Handler, threshold slog.Level) slog.Handler {
	return &sourceHandler{inner: inner, threshold: threshold}
}

func (h *sourceHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= h.threshold && r.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{r.PC})
		frame, _ := frames.Next()
		r.AddAttrs(slog.Any(slog.SourceKey, &slog.Source{
			Function: frame.Function,
			File:     frame.File,
			Line:     frame.Line,
		}))
	}
	return h.inner.Handle(ctx, r)
}

func (h *sourceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *sourceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &sourceHandler{inner: h.inner.WithAttrs(attrs), threshold: h.threshold}
}

func (h *sourceHandler) WithGroup(name string) slog.Handler {
	return &sourceHandler{inner: h.inner.WithGroup(name), threshold: h.threshold}
}
