package billing

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/iuran-warga/backend/internal/application/adapter"
	"github.com/iuran-warga/backend/internal/domain/entity"
)

// CycleView is one billing cycle prepared for display: name/description
// fallbacks applied and, for residents, a paid flag derived from their claims.
type CycleView struct {
	Cycle  *entity.BillingCycle
	IsPaid bool
}

// ListCyclesInput represents the input for listing billing cycles.
type ListCyclesInput struct {
	UserID uuid.UUID
	Role   entity.Role
}

// ListCyclesOutput represents the output of listing billing cycles.
type ListCyclesOutput struct {
	Cycles []CycleView
}

// ListCyclesUseCase lists billing cycles, newest first. Admin and chair see
// every cycle; a resident's view collapses to their latest paid and latest
// unpaid cycle.
type ListCyclesUseCase struct {
	cycleRepo adapter.BillingCycleRepository
	claimRepo adapter.PaymentClaimRepository
}

// NewListCyclesUseCase creates a new ListCyclesUseCase instance.
func NewListCyclesUseCase(
	cycleRepo adapter.BillingCycleRepository,
	claimRepo adapter.PaymentClaimRepository,
) *ListCyclesUseCase {
	return &ListCyclesUseCase{
		cycleRepo: cycleRepo,
		claimRepo: claimRepo,
	}
}

// Execute performs the listing.
func (uc *ListCyclesUseCase) Execute(ctx context.Context, input ListCyclesInput) (*ListCyclesOutput, error) {
	cycles, err := uc.cycleRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list billing cycles: %w", err)
	}

	views := make([]CycleView, len(cycles))
	for i, cycle := range cycles {
		views[i] = CycleView{Cycle: cycle}
	}

	if input.Role != entity.RoleWarga {
		return &ListCyclesOutput{Cycles: views}, nil
	}

	// Mark the cycles this resident has claimed against.
	claims, err := uc.claimRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list claims: %w", err)
	}
	claimed := make(map[uuid.UUID]bool, len(claims))
	for _, claim := range claims {
		claimed[claim.BillingCycleID] = true
	}
	for i := range views {
		views[i].IsPaid = claimed[views[i].Cycle.ID]
	}

	// Residents see only their latest paid and latest unpaid cycle
	// (cycles are already newest first).
	if len(views) == 0 {
		return &ListCyclesOutput{Cycles: views}, nil
	}

	var latestPaid, latestUnpaid *CycleView
	for i := range views {
		v := &views[i]
		if v.IsPaid {
			if latestPaid == nil {
				latestPaid = v
			}
		} else if latestUnpaid == nil {
			latestUnpaid = v
		}
		if latestPaid != nil && latestUnpaid != nil {
			break
		}
	}
	if latestPaid == nil {
		latestPaid = &views[0]
	}
	if latestUnpaid == nil {
		latestUnpaid = &views[0]
	}

	return &ListCyclesOutput{Cycles: []CycleView{*latestPaid, *latestUnpaid}}, nil
}
