// Package logger configures slog and carries per-request log attributes
// through a context.
package logger

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"
)

type ctxKey struct{}

// fields are the attributes FromContext adds; a copy is stored per derivation
type fields struct {
	requestID string
}

// New builds a logger for cfg writing to w without touching the default
func New(cfg Config, w io.Writer) *slog.Logger {
	return slog.New(cfg.handler(w)).With(cfg.baseArgs()...)
}

// InitLogger builds a logger for cfg and installs it as the slog default
func InitLogger(cfg Config, w io.Writer) *slog.Logger {
	l := New(cfg, w)
	slog.SetDefault(l)
	return l
}

// GenerateRequestID returns a fresh id for a request without one
func GenerateRequestID() string {
	return uuid.NewString()
}

func fieldsFrom(ctx context.Context) fields {
	f, _ := ctx.Value(ctxKey{}).(fields)
	return f
}

// WithRequestID tags ctx so FromContext loggers carry request_id
func WithRequestID(ctx context.Context, requestID string) context.Context {
	f := fieldsFrom(ctx)
	f.requestID = requestID
	return context.WithValue(ctx, ctxKey{}, f)
}

// GetRequestID returns the request id on ctx, or ""
func GetRequestID(ctx context.Context) string {
	return fieldsFrom(ctx).requestID
}

// FromContext returns the default logger with whatever ids ctx carries
func FromContext(ctx context.Context) *slog.Logger {
	if f := fieldsFrom(ctx); f.requestID != "" {
		return slog.Default().With(AttrKeyRequestID, f.requestID)
	}
	return slog.Default()
}
