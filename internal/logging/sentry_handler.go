package logging

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/getsentry/sentry-go"
)

// SentryHandler forwards ERROR+ records to Sentry. It is only attached
// when a DSN is configured.
type SentryHandler struct {
	attrs []slog.Attr
}

func NewSentryHandler() *SentryHandler {
	return &SentryHandler{}
}

func (h *SentryHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelError
}

func (h *SentryHandler) Handle(_ context.Context, record slog.Record) error {
	event := sentry.NewEvent()
	event.Level = sentry.LevelError
	event.Message = record.Message
	event.Timestamp = record.Time

	tags := make(map[string]string)
	for _, a := range h.attrs {
		tags[a.Key] = a.Value.String()
	}
	record.Attrs(func(a slog.Attr) bool {
		if a.Key == "error" {
			event.Message = fmt.Sprintf("%s: %s", record.Message, a.Value.String())
			return true
		}
		tags[a.Key] = a.Value.String()
		return true
	})
	event.Tags = tags

	sentry.CaptureEvent(event)
	return nil
}

func (h *SentryHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &SentryHandler{attrs: merged}
}

func (h *SentryHandler) WithGroup(name string) slog.Handler {
	return h
}
