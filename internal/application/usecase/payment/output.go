// Package payment contains payment-claim use cases: submission, review and
// the resident/admin claim views.
package payment

import (
	"context"

	"github.com/iuran-warga/backend/internal/application/adapter"
	"github.com/iuran-warga/backend/internal/domain/entity"
)

// ClaimOutput is one claim prepared for display. Cycle is the claim's
// snapshot when present, otherwise the live billing cycle row.
type ClaimOutput struct {
	Claim *entity.PaymentClaim
	Cycle *entity.BillingCycle
	User  *entity.User
}

// resolveCycle returns the claim's snapshot, falling back to a live join
// against the billing cycle store for historical rows written before
// snapshotting existed. Returns nil when neither resolves.
func resolveCycle(ctx context.Context, claim *entity.PaymentClaim, cycleRepo adapter.BillingCycleRepository) *entity.BillingCycle {
	if claim.Snapshot != nil {
		return claim.Snapshot
	}
	cycle, err := cycleRepo.FindByID(ctx, claim.BillingCycleID)
	if err != nil {
		return nil
	}
	return cycle
}
