// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenClaims represents the claims contained in a session token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// TokenService defines the interface for session token operations.
// Tokens are self-contained, signed and time-bounded; there is no
// server-side session record and no revocation path.
type TokenService interface {
	// GenerateAccessToken generates a signed access token for the user.
	GenerateAccessToken(ctx context.Context, userID uuid.UUID, email string) (string, error)

	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
