package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eventboard/eventboard-api/internal/domain"
	"github.com/eventboard/eventboard-api/internal/service/auth"
	"github.com/eventboard/eventboard-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"bad credentials", ErrInvalidCredentials, http.StatusUnauthorized},
		{"foreign event", ErrNotEventOwner, http.StatusForbidden},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"event not found", store.ErrEventNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("loading: %w", store.ErrEventNotFound), http.StatusNotFound},
		{"duplicate email", store.ErrEmailExists, http.StatusConflict},
		{"invalid name", domain.ErrInvalidName, http.StatusBadRequest},
		{"invalid title", domain.ErrInvalidTitle, http.StatusBadRequest},
		{"invalid password", domain.ErrInvalidPassword, http.StatusBadRequest},
		{"unknown error", assert.AnError, http.StatusInternalServerError},
		{"nil error", nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}
