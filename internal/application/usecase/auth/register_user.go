// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"regexp"

	"github.com/iuran-warga/backend/internal/application/adapter"
	"github.com/iuran-warga/backend/internal/domain/entity"
	domainerror "github.com/iuran-warga/backend/internal/domain/error"
)

// numericKKPattern validates the household identifier: digits only.
var numericKKPattern = regexp.MustCompile(`^[0-9]+$`)

// RegisterUserInput represents the input for resident registration.
type RegisterUserInput struct {
	KK       string
	Name     string
	Password string
}

// RegisterUserOutput represents the output of resident registration.
type RegisterUserOutput struct {
	User *entity.User
}

// RegisterUserUseCase handles resident registration logic.
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

// Execute performs the resident registration.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	// Validate household id format
	if !numericKKPattern.MatchString(input.KK) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidKK,
			"KK must be numeric",
			domainerror.ErrInvalidKK,
		)
	}

	if input.Name == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingAuthFields,
			"name is required",
			nil,
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

	// Check if the household id is already registered
	exists, err := uc.userRepo.ExistsByKK(ctx, input.KK)
	if err != nil {
		return nil, fmt.Errorf("failed to check KK existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeKKExists,
			"account with the same KK already exists",
			domainerror.ErrKKAlreadyExists,
		)
	}

	// Hash password
	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Create user entity with the resident role
	user := entity.NewUser(input.KK, input.Name, passwordHash)

	// Save user to database
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &RegisterUserOutput{User: user}, nil
}
