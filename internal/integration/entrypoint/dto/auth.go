package dto

import (
	"time"

	"github.com/iuran-warga/backend/internal/domain/entity"
)

// RegisterRequest represents the request body for resident registration.
type RegisterRequest struct {
	KK       string `json:"kk" binding:"required"`
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	KK       string `json:"kk" binding:"required"`
	Password string `json:"password" binding:"required"`
	// FcmToken registers the device for push notifications when present.
	FcmToken string `json:"fcmToken"`
}

// AuthResponse represents the response for authentication endpoints.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse represents the user data in API responses.
type UserResponse struct {
	ID        string    `json:"id"`
	KK        string    `json:"kk"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUserResponse converts a user entity to its API representation.
func ToUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		KK:        user.KK,
		Name:      user.Name,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
}
