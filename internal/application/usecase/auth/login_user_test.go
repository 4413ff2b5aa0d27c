// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/finlog/backend/internal/application/adapter"
	domainerror "github.com/finlog/backend/internal/domain/error"
)

type fakeTokenService struct{}

func (f fakeTokenService) GenerateAccessToken(ctx context.Context, userID uuid.UUID, email string) (string, error) {
	return "token-for-" + email, nil
}

func (f fakeTokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return &adapter.TokenClaims{}, nil
}

func TestLoginUser(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) *LoginUserUseCase {
		t.Helper()
		repo := newFakeUserRepo()
		register := NewRegisterUserUseCase(repo, &fakePasswordService{})
		if _, err := register.Execute(ctx, RegisterUserInput{
			Email:    "ana@example.com",
			FullName: "Ana Souza",
			Password: "correct-horse",
		}); err != nil {
			t.Fatalf("failed to seed user: %v", err)
		}
		return NewLoginUserUseCase(repo, &fakePasswordService{}, fakeTokenService{})
	}

	t.Run("valid credentials return a bearer token", func(t *testing.T) {
		useCase := setup(t)

		output, err := useCase.Execute(ctx, LoginUserInput{
			Email:    "ana@example.com",
			Password: "correct-horse",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.AccessToken == "" {
			t.Error("expected a non-empty access token")
		}
		if output.TokenType != "bearer" {
			t.Errorf("expected token type bearer, got %q", output.TokenType)
		}
		if output.User.Email != "ana@example.com" {
			t.Errorf("unexpected user in output: %q", output.User.Email)
		}
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		useCase := setup(t)

		_, unknownErr := useCase.Execute(ctx, LoginUserInput{
			Email:    "nobody@example.com",
			Password: "correct-horse",
		})
		_, wrongErr := useCase.Execute(ctx, LoginUserInput{
			Email:    "ana@example.com",
			Password: "wrong-password",
		})

		assertAuthErrorCode(t, unknownErr, domainerror.ErrCodeInvalidCredentials)
		assertAuthErrorCode(t, wrongErr, domainerror.ErrCodeInvalidCredentials)
		if unknownErr.Error() != wrongErr.Error() {
			t.Error("credential failures must carry the same message")
		}
	})
}

func TestLogoutUser(t *testing.T) {
	useCase := NewLogoutUserUseCase()
	output, err := useCase.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Message != "Successfully logged out" {
		t.Errorf("unexpected logout message: %q", output.Message)
	}
}
