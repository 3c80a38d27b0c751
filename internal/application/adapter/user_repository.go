// Package adapter defines interfaces for external dependencies.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/iuran-warga/backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	// Create persists a new user.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by ID. Returns ErrUserNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByKK retrieves a user by household id. Returns ErrUserNotFound when absent.
	FindByKK(ctx context.Context, kk string) (*entity.User, error)

	// ExistsByKK checks whether a household id is already registered.
	ExistsByKK(ctx context.Context, kk string) (bool, error)

	// FindByRole retrieves all users with the given role.
	FindByRole(ctx context.Context, role entity.Role) ([]*entity.User, error)
}
