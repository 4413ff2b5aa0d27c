// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/finlog/backend/internal/application/adapter"
	"github.com/finlog/backend/internal/domain/entity"
	domainerror "github.com/finlog/backend/internal/domain/error"
)

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	Email    string
	Password string
}

// LoginUserOutput represents the output of user login.
type LoginUserOutput struct {
	AccessToken string
	TokenType   string
	User        *entity.User
}

// LoginUserUseCase handles user login logic.
type LoginUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the user login. Unknown email and wrong password produce
// the same error so the response never reveals which field was wrong.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	user, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, invalidCredentialsError()
	}

	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return nil, invalidCredentialsError()
	}

	accessToken, err := uc.tokenService.GenerateAccessToken(ctx, user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &LoginUserOutput{
		AccessToken: accessToken,
		TokenType:   "bearer",
		User:        user,
	}, nil
}

func invalidCredentialsError() error {
	return domainerror.NewAuthError(
		domainerror.ErrCodeInvalidCredentials,
		"incorrect email or password",
		domainerror.ErrInvalidCredentials,
	)
}
