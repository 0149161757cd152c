package auth

import "time"

// NewTestJWTService creates a JWT service with an injected time function so
// tests can pin "now" and exercise expiry deterministically. Not for
// production use; the secret length check is intentionally skipped.
func NewTestJWTService(
	secret string,
	tokenLifetime time.Duration,
	timeFunc func() time.Time,
) JWTService {
	if timeFunc == nil {
		timeFunc = time.Now
	}
	return &hmacJWTService{
		signingKey:    []byte(secret),
		tokenLifetime: tokenLifetime,
		timeFunc:      timeFunc,
	}
}
