package shared

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// ContextKey is the key type for context values owned by the API layer.
type ContextKey string

const (
	// PrincipalContextKey is the context key for the resolved request
	// principal.
	PrincipalContextKey ContextKey = "principal"

	// TraceIDKey is the key for the trace ID in the request context.
	TraceIDKey ContextKey = "traceID"

	// traceIDLength is the number of random bytes in a trace ID.
	traceIDLength = 16 // 32 hex characters
)

// Principal is the caller identity resolved from a validated bearer token.
// It is owned by one request's context and discarded at request end. It is
// built from token claims alone; no database round trip happens during
// resolution, so it reflects the identity as of token issuance.
type Principal struct {
	UserID uuid.UUID
	Email  string
	Scopes []string
}

// NewPrincipal builds a Principal from validated token claims. The scope
// claim is space-joined on the wire.
func NewPrincipal(userID uuid.UUID, email, scope string) Principal {
	return Principal{
		UserID: userID,
		Email:  email,
		Scopes: strings.Fields(scope),
	}
}

// WithPrincipal returns a context carrying the resolved principal.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, PrincipalContextKey, p)
}

// PrincipalFromContext retrieves the principal placed in the context by the
// authentication middleware. The boolean is false when the request never
// passed through (or was rejected by) the resolver.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(PrincipalContextKey).(Principal)
	if !ok || p.UserID == uuid.Nil {
		return Principal{}, false
	}
	return p, true
}

// SetTraceID adds a fresh trace ID to the context. Useful for correlating
// logs and error responses.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// generateTraceID creates a random trace ID for request tracking.
func generateTraceID() string {
	b := make([]byte, traceIDLength)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing is unrecoverable enough that a UUID fallback
		// is preferable to a static value.
		return uuid.New().String()
	}
	return hex.EncodeToString(b)
}
