package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/taskdeck/taskdeck-api/internal/api/shared"
	"github.com/taskdeck/taskdeck-api/internal/redact"
	"github.com/taskdeck/taskdeck-api/internal/service/auth"
)

// AuthMiddleware resolves the request identity from a bearer token. It sits
// in front of every protected route: either it attaches a trusted principal
// to the request context, or it terminates the request with a structured
// error before any handler runs. There is no partial-principal state visible
// downstream.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// Authenticate validates the Authorization header and attaches the resolved
// principal to the request context.
//
// Failure statuses are deliberately split: a missing header or a token that
// fails signature/expiry checks is 401 (re-authenticate), while any
// unclassified validation failure is 403, a conservative "don't trust this
// token at all" signal.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authorization format")
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), parts[1])
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Token expired")
			case errors.Is(err, auth.ErrInvalidToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			default:
				slog.Warn("unclassified token validation failure",
					"error", redact.Error(err))
				shared.RespondWithError(w, r, http.StatusForbidden, "Token rejected")
			}
			return
		}

		// Principal is built from claims only; no store lookup here.
		principal := shared.NewPrincipal(claims.UserID, claims.Subject, claims.Scope)
		ctx := shared.WithPrincipal(r.Context(), principal)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
