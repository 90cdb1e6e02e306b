package student

import (
	"context"
	"log/slog"
)

type messagesKey struct{}

func ContextWithMessages(ctx context.Context, m *Messages) context.Context {
	return context.WithValue(ctx, messagesKey{}, m)
}

// MessagesFromContext returns the Messages stored in ctx, or DefaultMessages.
func MessagesFromContext(ctx context.Context) *Messages {
	if m, ok := ctx.Value(messagesKey{}).(*Messages); ok && m != nil {
		return m
	}
	return DefaultMessages()
}

// LoggerExtractor enriches log records with the message language.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if m, ok := ctx.Value(messagesKey{}).(*Messages); ok && m != nil {
			return slog.String("locale", m.Lang()), true
		}
		return slog.Attr{}, false
	}
}
