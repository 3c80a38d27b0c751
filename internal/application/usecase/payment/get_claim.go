package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/iuran-warga/backend/internal/application/adapter"
	domainerror "github.com/iuran-warga/backend/internal/domain/error"
)

// GetClaimUseCase retrieves one payment claim with its cycle and resident.
type GetClaimUseCase struct {
	claimRepo adapter.PaymentClaimRepository
	cycleRepo adapter.BillingCycleRepository
	userRepo  adapter.UserRepository
}

// NewGetClaimUseCase creates a new GetClaimUseCase instance.
func NewGetClaimUseCase(
	claimRepo adapter.PaymentClaimRepository,
	cycleRepo adapter.BillingCycleRepository,
	userRepo adapter.UserRepository,
) *GetClaimUseCase {
	return &GetClaimUseCase{
		claimRepo: claimRepo,
		cycleRepo: cycleRepo,
		userRepo:  userRepo,
	}
}

// Execute retrieves the claim by id.
func (uc *GetClaimUseCase) Execute(ctx context.Context, id uuid.UUID) (*ClaimOutput, error) {
	claim, err := uc.claimRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrClaimNotFound) {
			return nil, domainerror.NewBillingError(
				domainerror.ErrCodeClaimNotFound,
				"data not found",
				domainerror.ErrClaimNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find payment claim: %w", err)
	}

	user, err := uc.userRepo.FindByID(ctx, claim.UserID)
	if err != nil {
		user = nil
	}

	return &ClaimOutput{
		Claim: claim,
		Cycle: resolveCycle(ctx, claim, uc.cycleRepo),
		User:  user,
	}, nil
}
