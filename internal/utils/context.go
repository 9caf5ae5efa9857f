// Package utils provides helpers shared by the client packages: the resty
// client constructor, correlation ids, unverified JWT inspection and JSON
// response writing for test doubles.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// CorrelationIDCtxKey stores the id sent as X-Correlation-ID.
var CorrelationIDCtxKey = contextKey("correlationID")

// WithCorrelationID returns a child context carrying id.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CorrelationIDCtxKey, id)
}

// GetCorrelationIDFromContext returns the id stored by [WithCorrelationID].
func GetCorrelationIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(CorrelationIDCtxKey).(string)
	return id, ok && id != ""
}
