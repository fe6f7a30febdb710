package logger

import (
	"context"

	"github.com/google/uuid"
)

// WithRequestID returns a context carrying a freshly generated request ID,
// together with that ID.
func WithRequestID(ctx context.Context) (context.Context, string) {
	requestID := uuid.New().String()
	return context.WithValue(ctx, RequestIDKey, requestID), requestID
}
