// Package auth contains authentication-related use cases.
package auth

import "context"

// LogoutUserOutput represents the output of user logout.
type LogoutUserOutput struct {
	Message string
}

// LogoutUserUseCase handles user logout. Session tokens are stateless, so
// logout is a client-side token discard; this use case only confirms the
// caller was authenticated.
type LogoutUserUseCase struct{}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase() *LogoutUserUseCase {
	return &LogoutUserUseCase{}
}

// Execute performs the user logout.
func (uc *LogoutUserUseCase) Execute(_ context.Context) (*LogoutUserOutput, error) {
	return &LogoutUserOutput{
		Message: "Successfully logged out",
	}, nil
}
