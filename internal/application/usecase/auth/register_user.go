// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/finlog/backend/internal/application/adapter"
	"github.com/finlog/backend/internal/application/usecase/category"
	"github.com/finlog/backend/internal/domain/entity"
	domainerror "github.com/finlog/backend/internal/domain/error"
)

// RegisterUserInput represents the input for user registration.
type RegisterUserInput struct {
	Email    string
	FullName string
	Password string
}

// RegisterUserOutput represents the output of user registration.
type RegisterUserOutput struct {
	User *entity.User
}

// RegisterUserUseCase handles user registration logic. The new user and
// their starter categories are persisted as one unit of work: a failure
// seeding categories rolls the user row back too.
type RegisterUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute performs the user registration.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	// Validate email format
	if !isValidEmail(input.Email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}

	// Validate password strength
	if err := uc.passwordService.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password does not meet minimum requirements",
			domainerror.ErrWeakPassword,
		)
	}

	// Check if email already exists
	exists, err := uc.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, emailExistsError()
	}

	// Hash password
	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Create user entity plus the starter category set, persisted atomically
	user := entity.NewUser(input.Email, input.FullName, passwordHash)
	defaults := category.DefaultCategories(user.ID)

	if err := uc.userRepo.CreateWithCategories(ctx, user, defaults); err != nil {
		// Concurrent registration with the same email loses the race at the
		// unique index rather than at the pre-check above.
		if errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			return nil, emailExistsError()
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &RegisterUserOutput{User: user}, nil
}

func emailExistsError() error {
	return domainerror.NewAuthError(
		domainerror.ErrCodeEmailExists,
		"email already registered",
		domainerror.ErrEmailAlreadyExists,
	)
}

// isValidEmail validates email format using a simple regex.
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}
