package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DefaultScope is the authority granted to every registered user. Scopes are
// space-joined in the token's scope claim.
const DefaultScope = "user"

// JWTService encodes and decodes the signed session tokens. Tokens are
// self-contained: no server-side session record exists, and a token stays
// valid until natural expiry.
type JWTService interface {
	// GenerateToken creates a signed token carrying the user's identity
	// claims. Pure function of the claims and the signing secret.
	GenerateToken(ctx context.Context, userID uuid.UUID, email string) (string, error)

	// ValidateToken verifies the token's signature and expiry and extracts
	// its claims. Returns ErrInvalidToken for structural or signature
	// failures and ErrExpiredToken once the expiry instant is reached.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the validated claim set extracted from a token. It is a plain
// in-process value; the wire encoding lives entirely inside the service
// implementation.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID uuid.UUID

	// Scope is the space-joined list of granted authorities.
	Scope string

	// Standard registered JWT claims
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}
