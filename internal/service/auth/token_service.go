package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenService defines operations for issuing and verifying
// authentication tokens. Verification is the capability the request
// gate submits bearer tokens to.
type TokenService interface {
	// GenerateToken creates a signed token carrying the given identity.
	// Returns the token string or an error if signing fails.
	GenerateToken(ctx context.Context, identity Identity) (string, error)

	// ValidateToken verifies the provided token string and extracts the
	// identity it was issued for. Returns ErrExpiredToken,
	// ErrTokenNotYetValid or ErrInvalidToken when verification fails.
	ValidateToken(ctx context.Context, tokenString string) (*Identity, error)
}

// Identity is the verified subject of a bearer token. The display name
// and email ride along so that handlers can denormalize them without an
// extra lookup; only the UID is guaranteed to be present.
type Identity struct {
	UID   uuid.UUID `json:"uid"`
	Name  string    `json:"name,omitempty"`
	Email string    `json:"email,omitempty"`
}

// Claims represents the full claim set extracted from a validated token.
type Claims struct {
	Identity

	// Standard registered JWT claims
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}
