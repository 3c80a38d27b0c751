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

// SubmitClaimInput represents the input for a resident payment submission.
type SubmitClaimInput struct {
	UserID         uuid.UUID
	BillingCycleID uuid.UUID
	// ProofImage is a base64 payload, optionally with a data-URI prefix.
	ProofImage  string
	Description string
}

// SubmitClaimOutput represents the output of a payment submission.
type SubmitClaimOutput struct {
	Claim *entity.PaymentClaim
}

// SubmitClaimUseCase creates a payment claim against a billing cycle. The
// cycle's current content is snapshotted into the claim so later edits to
// the cycle never change what the resident agreed to pay.
//
// No duplicate-claim check is made: a resident may hold several claims
// against the same cycle at once.
type SubmitClaimUseCase struct {
	claimRepo  adapter.PaymentClaimRepository
	cycleRepo  adapter.BillingCycleRepository
	imageStore adapter.ImageStore
}

// NewSubmitClaimUseCase creates a new SubmitClaimUseCase instance.
func NewSubmitClaimUseCase(
	claimRepo adapter.PaymentClaimRepository,
	cycleRepo adapter.BillingCycleRepository,
	imageStore adapter.ImageStore,
) *SubmitClaimUseCase {
	return &SubmitClaimUseCase{
		claimRepo:  claimRepo,
		cycleRepo:  cycleRepo,
		imageStore: imageStore,
	}
}

// Execute performs the submission.
func (uc *SubmitClaimUseCase) Execute(ctx context.Context, input SubmitClaimInput) (*SubmitClaimOutput, error) {
	if input.ProofImage == "" {
		return nil, domainerror.NewBillingError(
			domainerror.ErrCodeMissingProofImage,
			"proof image is required",
			domainerror.ErrMissingProofImage,
		)
	}

	cycle, err := uc.cycleRepo.FindByID(ctx, input.BillingCycleID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBillingCycleNotFound) {
			return nil, domainerror.NewBillingError(
				domainerror.ErrCodeBillingCycleNotFound,
				"data not found",
				domainerror.ErrBillingCycleNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find billing cycle: %w", err)
	}

	proofPath, err := uc.imageStore.Save(ctx, input.ProofImage)
	if err != nil {
		return nil, fmt.Errorf("failed to store proof image: %w", err)
	}

	attempt := entity.SubmissionAttempt{
		Date:          time.Now().UTC(),
		TransferProof: []string{proofPath},
		Description:   input.Description,
	}

	claim := entity.NewPaymentClaim(input.UserID, cycle, attempt)

	if err := uc.claimRepo.Create(ctx, claim); err != nil {
		return nil, fmt.Errorf("failed to create payment claim: %w", err)
	}

	return &SubmitClaimOutput{Claim: claim}, nil
}
