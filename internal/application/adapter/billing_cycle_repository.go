package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/iuran-warga/backend/internal/domain/entity"
)

// BillingCycleRepository defines the interface for billing cycle persistence.
type BillingCycleRepository interface {
	// Create persists a new billing cycle.
	Create(ctx context.Context, cycle *entity.BillingCycle) error

	// FindByID retrieves a cycle by ID. Returns ErrBillingCycleNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BillingCycle, error)

	// FindAll retrieves all cycles ordered by billing date descending.
	FindAll(ctx context.Context) ([]*entity.BillingCycle, error)
}
