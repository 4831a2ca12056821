// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, JWT session token generation
// and validation, and other common operations.
package utils

import (
	"context"

	"github.com/mignatov/authkeeper/internal/session"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionSinkCtxKey is the key used to store the caller's session sink in
// the context. The authentication middleware attaches a token-bound sink;
// downstream handlers retrieve it with GetSessionSinkFromContext.
var SessionSinkCtxKey = contextKey("sessionSink")

// GetSessionSinkFromContext retrieves the caller's session sink from the
// context.
//
// Returns the sink and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
func GetSessionSinkFromContext(ctx context.Context) (session.Sink, bool) {
	sink, ok := ctx.Value(SessionSinkCtxKey).(session.Sink)
	return sink, ok
}

// WithSessionSink returns a copy of ctx carrying the given session sink.
func WithSessionSink(ctx context.Context, sink session.Sink) context.Context {
	return context.WithValue(ctx, SessionSinkCtxKey, sink)
}
