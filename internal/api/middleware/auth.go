// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/eventboard/eventboard-api/internal/api/shared"
	"github.com/eventboard/eventboard-api/internal/service/auth"
)

// missingTokenMessage is the exact error body sent when no usable
// bearer token is present on a gated route.
const missingTokenMessage = "Missing Authorization Bearer token"

// AuthMiddleware provides bearer-token authentication for routes.
type AuthMiddleware struct {
	tokenService auth.TokenService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(tokenService auth.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

// Authenticate validates bearer tokens from the Authorization header and
// adds the verified identity to the request context for authorized requests.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, missingTokenMessage)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, missingTokenMessage)
			return
		}

		identity, err := m.tokenService.ValidateToken(r.Context(), parts[1])
		if err != nil {
			// The verification failure message is part of the response
			// body by contract.
			shared.RespondWithError(w, r, http.StatusUnauthorized, err.Error())
			return
		}

		ctx := context.WithValue(r.Context(), shared.IdentityContextKey, *identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetIdentity extracts the authenticated identity from the request context.
// Returns the identity and a boolean indicating if it was found.
func GetIdentity(r *http.Request) (auth.Identity, bool) {
	identity, ok := r.Context().Value(shared.IdentityContextKey).(auth.Identity)
	return identity, ok
}
