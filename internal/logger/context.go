package logger

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type contextKey string

const (
	contextKeyRequestID contextKey = "request_id"
	contextKeyFlow      contextKey = "flow"
)

// GenerateRequestID returns a fresh request id.
func GenerateRequestID() string {
	return uuid.New().String()
}

// WithRequestID adds a request id to the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKeyRequestID, requestID)
}

// RequestID returns the request id stored in ctx, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(contextKeyRequestID).(string)
	return id
}

// WithFlow adds the flow name ("submit" or "compare") to the context.
func WithFlow(ctx context.Context, flow string) context.Context {
	return context.WithValue(ctx, contextKeyFlow, flow)
}

// WithContext returns a logger carrying the request id and flow from ctx.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	logger := l.Logger
	if id := RequestID(ctx); id != "" {
		logger = logger.With(slog.String("request_id", id))
	}
	if flow, ok := ctx.Value(contextKeyFlow).(string); ok && flow != "" {
		logger = logger.With(slog.String("flow", flow))
	}
	return &Logger{Logger: logger}
}
