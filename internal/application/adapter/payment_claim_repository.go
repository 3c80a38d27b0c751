package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/iuran-warga/backend/internal/domain/entity"
)

// ClaimFilter narrows payment claim queries.
type ClaimFilter struct {
	// Statuses restricts results to the given lifecycle states.
	Statuses []entity.ClaimStatus
	// UserID, when set, restricts results to one resident's claims.
	UserID *uuid.UUID
}

// PaymentClaimRepository defines the interface for payment claim persistence.
type PaymentClaimRepository interface {
	// Create persists a new claim.
	Create(ctx context.Context, claim *entity.PaymentClaim) error

	// FindByID retrieves a claim by ID. Returns ErrClaimNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentClaim, error)

	// FindByFilter retrieves claims matching the filter, newest first.
	FindByFilter(ctx context.Context, filter ClaimFilter) ([]*entity.PaymentClaim, error)

	// FindByUser retrieves all claims belonging to one resident.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PaymentClaim, error)

	// Update persists the claim's status and its attempt/response lists.
	Update(ctx context.Context, claim *entity.PaymentClaim) error

	// ApplyReview persists a reviewed claim and its side effects in a single
	// transaction: for verified outcomes paidMonth is marked on the
	// resident's directory entry (when one exists), and the targeted
	// notification is stored. paidMonth and notif may be zero/nil for
	// need_to_fix outcomes.
	ApplyReview(ctx context.Context, claim *entity.PaymentClaim, paidMonth string, notif *entity.Notification) error
}
