package correlationid

import (
	"context"

	"github.com/google/uuid"
)

// Header is the HTTP header carrying the correlation id.
const Header = "X-Correlation-ID"

type ctxKey struct{}

// New generates a fresh correlation id.
func New() string {
	return uuid.NewString()
}

// WithContext returns a context carrying the given correlation id.
func WithContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext extracts the correlation id from the context, if any.
func FromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}
