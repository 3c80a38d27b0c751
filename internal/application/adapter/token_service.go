package adapter

import (
	"github.com/google/uuid"

	"github.com/iuran-warga/backend/internal/domain/entity"
)

// TokenClaims represents the identity carried by a bearer token.
type TokenClaims struct {
	UserID uuid.UUID
	KK     string
	Role   entity.Role
}

// TokenService defines the interface for bearer token operations.
type TokenService interface {
	// GenerateToken issues a signed token for the user.
	GenerateToken(user *entity.User) (string, error)

	// ValidateToken verifies a token and returns its claims.
	ValidateToken(token string) (*TokenClaims, error)
}
