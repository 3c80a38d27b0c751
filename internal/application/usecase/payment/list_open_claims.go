package payment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/iuran-warga/backend/internal/application/adapter"
	"github.com/iuran-warga/backend/internal/domain/entity"
)

// ListOpenClaimsInput represents the input for listing claims pending
// review. UserID narrows the list to one resident when set.
type ListOpenClaimsInput struct {
	UserID *uuid.UUID
}

// ListOpenClaimsOutput represents the output of listing open claims.
type ListOpenClaimsOutput struct {
	Claims []ClaimOutput
}

// ListOpenClaimsUseCase lists claims in processing or need_to_fix state,
// enriched with the billing cycle and the submitting resident.
type ListOpenClaimsUseCase struct {
	claimRepo adapter.PaymentClaimRepository
	cycleRepo adapter.BillingCycleRepository
	userRepo  adapter.UserRepository
}

// NewListOpenClaimsUseCase creates a new ListOpenClaimsUseCase instance.
func NewListOpenClaimsUseCase(
	claimRepo adapter.PaymentClaimRepository,
	cycleRepo adapter.BillingCycleRepository,
	userRepo adapter.UserRepository,
) *ListOpenClaimsUseCase {
	return &ListOpenClaimsUseCase{
		claimRepo: claimRepo,
		cycleRepo: cycleRepo,
		userRepo:  userRepo,
	}
}

// Execute lists open claims, newest first.
func (uc *ListOpenClaimsUseCase) Execute(ctx context.Context, input ListOpenClaimsInput) (*ListOpenClaimsOutput, error) {
	claims, err := uc.claimRepo.FindByFilter(ctx, adapter.ClaimFilter{
		Statuses: []entity.ClaimStatus{entity.ClaimStatusProcessing, entity.ClaimStatusNeedToFix},
		UserID:   input.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list payment claims: %w", err)
	}

	outputs := make([]ClaimOutput, 0, len(claims))
	for _, claim := range claims {
		user, err := uc.userRepo.FindByID(ctx, claim.UserID)
		if err != nil {
			slog.Warn("claim refers to unknown user", "claim_id", claim.ID, "user_id", claim.UserID)
			user = nil
		}
		outputs = append(outputs, ClaimOutput{
			Claim: claim,
			Cycle: resolveCycle(ctx, claim, uc.cycleRepo),
			User:  user,
		})
	}

	return &ListOpenClaimsOutput{Claims: outputs}, nil
}
