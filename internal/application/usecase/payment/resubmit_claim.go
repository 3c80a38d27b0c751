package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/iuran-warga/backend/internal/application/adapter"
	"github.com/iuran-warga/backend/internal/domain/entity"
	domainerror "github.com/iuran-warga/backend/internal/domain/error"
)

// ResubmitClaimInput represents the input for a resident resubmission after
// a need_to_fix review.
type ResubmitClaimInput struct {
	ClaimID     uuid.UUID
	ProofImage  string
	Description string
}

// ResubmitClaimOutput represents the output of a resubmission.
type ResubmitClaimOutput struct {
	Claim *entity.PaymentClaim
}

// ResubmitClaimUseCase appends a new submission attempt to an existing
// claim. Prior attempts are never replaced, and the claim returns to
// processing whatever its prior status was.
type ResubmitClaimUseCase struct {
	claimRepo  adapter.PaymentClaimRepository
	imageStore adapter.ImageStore
}

// NewResubmitClaimUseCase creates a new ResubmitClaimUseCase instance.
func NewResubmitClaimUseCase(
	claimRepo adapter.PaymentClaimRepository,
	imageStore adapter.ImageStore,
) *ResubmitClaimUseCase {
	return &ResubmitClaimUseCase{
		claimRepo:  claimRepo,
		imageStore: imageStore,
	}
}

// Execute performs the resubmission.
func (uc *ResubmitClaimUseCase) Execute(ctx context.Context, input ResubmitClaimInput) (*ResubmitClaimOutput, error) {
	if input.ProofImage == "" {
		return nil, domainerror.NewBillingError(
			domainerror.ErrCodeMissingProofImage,
			"proof image is required",
			domainerror.ErrMissingProofImage,
		)
	}

	claim, err := uc.claimRepo.FindByID(ctx, input.ClaimID)
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

	proofPath, err := uc.imageStore.Save(ctx, input.ProofImage)
	if err != nil {
		return nil, fmt.Errorf("failed to store proof image: %w", err)
	}

	claim.AppendAttempt(entity.SubmissionAttempt{
		Date:          time.Now().UTC(),
		TransferProof: []string{proofPath},
		Description:   input.Description,
	})

	if err := uc.claimRepo.Update(ctx, claim); err != nil {
		return nil, fmt.Errorf("failed to update payment claim: %w", err)
	}

	return &ResubmitClaimOutput{Claim: claim}, nil
}
