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

// ReviewClaimInput represents the input for an admin review of a claim.
type ReviewClaimInput struct {
	ClaimID uuid.UUID
	// Status must be verified or need_to_fix.
	Status entity.ClaimStatus
	Note   string
	// Images are base64 payloads attached to the admin response.
	Images []string
}

// ReviewClaimOutput represents the output of a claim review.
type ReviewClaimOutput struct {
	Claim *entity.PaymentClaim
}

// ReviewClaimUseCase applies an admin review outcome to a claim. The admin
// response is appended to the response list, keeping the full review
// history. For verified outcomes the claim update, the directory
// paid-month mark and the targeted resident notification are persisted in
// one transaction.
type ReviewClaimUseCase struct {
	claimRepo  adapter.PaymentClaimRepository
	cycleRepo  adapter.BillingCycleRepository
	imageStore adapter.ImageStore
}

// NewReviewClaimUseCase creates a new ReviewClaimUseCase instance.
func NewReviewClaimUseCase(
	claimRepo adapter.PaymentClaimRepository,
	cycleRepo adapter.BillingCycleRepository,
	imageStore adapter.ImageStore,
) *ReviewClaimUseCase {
	return &ReviewClaimUseCase{
		claimRepo:  claimRepo,
		cycleRepo:  cycleRepo,
		imageStore: imageStore,
	}
}

// Execute performs the review.
func (uc *ReviewClaimUseCase) Execute(ctx context.Context, input ReviewClaimInput) (*ReviewClaimOutput, error) {
	if !input.Status.IsReviewOutcome() {
		return nil, domainerror.NewBillingError(
			domainerror.ErrCodeInvalidClaimStatus,
			"status must be 'verified' or 'need_to_fix'",
			domainerror.ErrInvalidClaimStatus,
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

	// Re-reviewing with the same outcome and nothing new to say is a no-op,
	// so a double-submitted review does not duplicate responses or
	// notifications.
	if claim.Status == input.Status && input.Note == "" && len(input.Images) == 0 {
		return &ReviewClaimOutput{Claim: claim}, nil
	}

	images := make([]string, 0, len(input.Images))
	for _, payload := range input.Images {
		path, err := uc.imageStore.Save(ctx, payload)
		if err != nil {
			return nil, fmt.Errorf("failed to store admin image: %w", err)
		}
		images = append(images, path)
	}

	claim.ApplyReview(input.Status, entity.AdminResponse{
		Date:   time.Now().UTC(),
		Note:   input.Note,
		Images: images,
	})

	var paidMonth string
	title := "Pembayaran Perlu Diperbaiki"
	message := "Pembayaran kamu perlu diperbaiki, silakan kirim ulang bukti transfer"
	if input.Status == entity.ClaimStatusVerified {
		paidMonth = claim.BillingMonth(resolveCycle(ctx, claim, uc.cycleRepo))
		title = "Pembayaran Terverifikasi"
		message = "Pembayaran kamu sudah diverifikasi oleh admin"
	}

	notification := entity.NewTargetedNotification(claim.UserID, title, message, entity.NotificationTypeReviewed)

	if err := uc.claimRepo.ApplyReview(ctx, claim, paidMonth, notification); err != nil {
		return nil, fmt.Errorf("failed to apply review: %w", err)
	}

	return &ReviewClaimOutput{Claim: claim}, nil
}
