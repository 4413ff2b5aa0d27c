// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/finlog/backend/internal/application/adapter"
)

const tokenTypeAccess = "access"

// CustomClaims represents the custom claims for JWT tokens.
type CustomClaims struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// tokenService implements the adapter.TokenService interface with stateless
// HS256 access tokens. There is no server-side token store: expiry is the
// only revocation mechanism.
type tokenService struct {
	secret []byte
	expiry time.Duration
}

// NewTokenService creates a new token service instance.
func NewTokenService(secret string, expiry time.Duration) adapter.TokenService {
	return &tokenService{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// GenerateAccessToken generates a signed access token for the given user.
func (s *tokenService) GenerateAccessToken(_ context.Context, userID uuid.UUID, email string) (string, error) {
	now := time.Now().UTC()
	claims := CustomClaims{
		UserID:    userID.String(),
		Email:     email,
		TokenType: tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "finlog",
			Subject:   userID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateAccessToken validates an access token and returns its claims.
func (s *tokenService) ValidateAccessToken(_ context.Context, tokenString string) (*adapter.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	if claims.TokenType != tokenTypeAccess {
		return nil, fmt.Errorf("invalid token type: expected access token")
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID in token: %w", err)
	}

	return &adapter.TokenClaims{
		UserID:    userID,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
