package logging

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type callIDKey struct{}

// NewCallID returns a short random identifier for one outbound call.
func NewCallID() string {
	return uuid.NewString()[:8]
}

// WithCallID attaches id to ctx.
func WithCallID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, callIDKey{}, id)
}

// EnsureCallID returns ctx if it already carries a call ID, otherwise a child
// carrying a new one.
func EnsureCallID(ctx context.Context) context.Context {
	if CallID(ctx) != "" {
		return ctx
	}
	return WithCallID(ctx, NewCallID())
}

// CallID returns the call ID carried by ctx, or "".
func CallID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(callIDKey{}).(string)
	return id
}

// FromContext returns the package logger tagged with the call ID in ctx.
func FromContext(ctx context.Context) *slog.Logger {
	if id := CallID(ctx); id != "" {
		return Logger().With(KeyCallID, id)
	}
	return Logger()
}
