package payment

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/iuran-warga/backend/internal/application/adapter"
	"github.com/iuran-warga/backend/internal/domain/entity"
)

// ListVerifiedHistoryInput represents the input for the verified payment
// history. Month filters by the claim's billing month name,
// case-insensitively; UserID narrows to one resident.
type ListVerifiedHistoryInput struct {
	UserID *uuid.UUID
	Month  string
}

// HistoryEntry is one verified claim collapsed to its latest attempt and
// latest admin response.
type HistoryEntry struct {
	Claim          *entity.PaymentClaim
	Cycle          *entity.BillingCycle
	User           *entity.User
	Month          string
	LatestAttempt  *entity.SubmissionAttempt
	LatestResponse *entity.AdminResponse
}

// ListVerifiedHistoryOutput represents the output of the history listing.
type ListVerifiedHistoryOutput struct {
	Entries []HistoryEntry
}

// ListVerifiedHistoryUseCase lists verified claims as a payment history.
// Each claim keeps its full attempt and response lists in storage; the
// history view shows only the most recent of each.
type ListVerifiedHistoryUseCase struct {
	claimRepo adapter.PaymentClaimRepository
	cycleRepo adapter.BillingCycleRepository
	userRepo  adapter.UserRepository
}

// NewListVerifiedHistoryUseCase creates a new ListVerifiedHistoryUseCase
// instance.
func NewListVerifiedHistoryUseCase(
	claimRepo adapter.PaymentClaimRepository,
	cycleRepo adapter.BillingCycleRepository,
	userRepo adapter.UserRepository,
) *ListVerifiedHistoryUseCase {
	return &ListVerifiedHistoryUseCase{
		claimRepo: claimRepo,
		cycleRepo: cycleRepo,
		userRepo:  userRepo,
	}
}

// Execute lists the verified history, newest first.
func (uc *ListVerifiedHistoryUseCase) Execute(ctx context.Context, input ListVerifiedHistoryInput) (*ListVerifiedHistoryOutput, error) {
	claims, err := uc.claimRepo.FindByFilter(ctx, adapter.ClaimFilter{
		Statuses: []entity.ClaimStatus{entity.ClaimStatusVerified},
		UserID:   input.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list payment claims: %w", err)
	}

	entries := make([]HistoryEntry, 0, len(claims))
	for _, claim := range claims {
		cycle := resolveCycle(ctx, claim, uc.cycleRepo)
		month := claim.BillingMonth(cycle)
		if input.Month != "" && !strings.EqualFold(month, input.Month) {
			continue
		}

		user, err := uc.userRepo.FindByID(ctx, claim.UserID)
		if err != nil {
			user = nil
		}

		entry := HistoryEntry{
			Claim: claim,
			Cycle: cycle,
			User:  user,
			Month: month,
		}
		if n := len(claim.Attempts); n > 0 {
			entry.LatestAttempt = &claim.Attempts[n-1]
		}
		if n := len(claim.AdminResponses); n > 0 {
			entry.LatestResponse = &claim.AdminResponses[n-1]
		}
		entries = append(entries, entry)
	}

	return &ListVerifiedHistoryOutput{Entries: entries}, nil
}
