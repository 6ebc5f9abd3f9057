package oteladapters

import (
	"context"
	"errors"
	"log/slog"
)

// teeHandler hands every record to all handlers that are enabled for its level.
type teeHandler []slog.Handler

func (t teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range t {
		if handler.Enabled(ctx, level) {
			return true
		}
	}

	return false
}

func (t teeHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []error

	for _, handler := range t {
		if !handler.Enabled(ctx, record.Level) {
			continue
		}

		if err := handler.Handle(ctx, record.Clone()); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (t teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(teeHandler, 0, len(t))
	for _, handler := range t {
		out = append(out, handler.WithAttrs(attrs))
	}

	return out
}

func (t teeHandler) WithGroup(name string) slog.Handler {
	out := make(teeHandler, 0, len(t))
	for _, handler := range t {
		out = append(out, handler.WithGroup(name))
	}

	return out
}
