package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/eventboard/eventboard-api/internal/api/shared"
	"github.com/eventboard/eventboard-api/internal/service/auth"
)

// Listing limits: callers may narrow the page size with a limit query
// parameter, but never widen it past the hard cap.
const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// getIdentityFromContext extracts the authenticated identity placed in
// the request context by the authentication middleware.
func getIdentityFromContext(r *http.Request) (auth.Identity, bool) {
	identity, ok := r.Context().Value(shared.IdentityContextKey).(auth.Identity)
	if !ok || identity.UID == uuid.Nil {
		return auth.Identity{}, false
	}
	return identity, true
}

// requireIdentity extracts the authenticated identity or writes a 401
// response. A miss here means the route was wired without the gate.
func requireIdentity(w http.ResponseWriter, r *http.Request) (auth.Identity, bool) {
	identity, ok := getIdentityFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Missing Authorization Bearer token")
		return auth.Identity{}, false
	}
	return identity, true
}

// getPathUUID extracts and parses a UUID path parameter. A missing or
// malformed value cannot address any stored entity, so callers treat
// the error as not-found.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// parseLimit reads the limit query parameter, falling back to the
// default for absent or unusable values and clamping to the hard cap.
func parseLimit(r *http.Request) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultListLimit
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
