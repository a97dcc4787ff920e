// Package utils provides general-purpose helpers shared by the front ends:
// type-safe context keys, trace id generation and the REST client wrapper.
package utils

import (
	"context"
	"strings"
)

// TraceIDHeader is the HTTP header carrying the trace id between the web
// front end, the people API and the logs.
const TraceIDHeader = "X-Trace-ID"

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey is the key used to store the trace id in the context.
var TraceIDCtxKey = contextKey("traceID")

// WithTraceID returns a copy of ctx carrying traceID. Blank ids are ignored.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	traceID = strings.TrimSpace(traceID)
	if traceID == "" {
		return ctx
	}
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext retrieves the trace id from the context.
//
// Returns ok == false when the value is missing or has an unexpected type.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
