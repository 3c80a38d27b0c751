package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iuran-warga/backend/internal/application/adapter"
	"github.com/iuran-warga/backend/internal/domain/entity"
	domainerror "github.com/iuran-warga/backend/internal/domain/error"
)

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	KK       string
	Password string
	// FcmToken, when supplied, registers the device for push delivery.
	FcmToken string
}

// LoginUserOutput represents the output of user login.
type LoginUserOutput struct {
	Token string
	User  *entity.User
}

// LoginUserUseCase handles user login logic.
type LoginUserUseCase struct {
	userRepo        adapter.UserRepository
	deviceTokenRepo adapter.DeviceTokenRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	userRepo adapter.UserRepository,
	deviceTokenRepo adapter.DeviceTokenRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:        userRepo,
		deviceTokenRepo: deviceTokenRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the user login.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	user, err := uc.userRepo.FindByKK(ctx, input.KK)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			// Same error as a wrong password so the response does not
			// reveal which household ids exist.
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeInvalidCredentials,
				"invalid account",
				domainerror.ErrInvalidCredentials,
			)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid account",
			domainerror.ErrInvalidCredentials,
		)
	}

	// Register the push token when the app supplies one. A failure here
	// must not fail the login.
	if input.FcmToken != "" {
		deviceToken := entity.NewDeviceToken(user.ID, input.FcmToken)
		if err := uc.deviceTokenRepo.Save(ctx, deviceToken); err != nil {
			slog.Warn("Failed to register device token",
				"userID", user.ID,
				"error", err,
			)
		}
	}

	token, err := uc.tokenService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginUserOutput{
		Token: token,
		User:  user,
	}, nil
}
