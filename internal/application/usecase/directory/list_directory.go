package directory

import (
	"context"
	"fmt"

	"github.com/iuran-warga/backend/internal/application/adapter"
	"github.com/iuran-warga/backend/internal/domain/entity"
)

// ListDirectoryInput represents the input for listing the directory.
type ListDirectoryInput struct {
	Search string
	Page   int
	Limit  int
}

// ListDirectoryOutput is one page of entries with the derived matrices
// already applied.
type ListDirectoryOutput struct {
	Entries    []*entity.DirectoryEntry
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ListDirectoryUseCase lists directory entries. The paid-month matrix shown
// is derived at read time: the stored matrix overlaid with the resident's
// verified claims, so a verified claim shows paid even if the stored row
// has not been rewritten yet.
type ListDirectoryUseCase struct {
	directoryRepo adapter.DirectoryRepository
	claimRepo     adapter.PaymentClaimRepository
}

// NewListDirectoryUseCase creates a new ListDirectoryUseCase instance.
func NewListDirectoryUseCase(
	directoryRepo adapter.DirectoryRepository,
	claimRepo adapter.PaymentClaimRepository,
) *ListDirectoryUseCase {
	return &ListDirectoryUseCase{
		directoryRepo: directoryRepo,
		claimRepo:     claimRepo,
	}
}

// Execute lists one page of the directory.
func (uc *ListDirectoryUseCase) Execute(ctx context.Context, input ListDirectoryInput) (*ListDirectoryOutput, error) {
	if input.Page < 1 {
		input.Page = 1
	}
	if input.Limit < 1 {
		input.Limit = 10
	}

	result, err := uc.directoryRepo.FindByFilter(ctx, adapter.DirectoryFilter{
		Search: input.Search,
		Page:   input.Page,
		Limit:  input.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list directory: %w", err)
	}

	claims, err := uc.claimRepo.FindByFilter(ctx, adapter.ClaimFilter{
		Statuses: []entity.ClaimStatus{entity.ClaimStatusVerified},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list verified claims: %w", err)
	}

	byUser := groupClaimsByUser(claims)
	for _, entry := range result.Entries {
		entry.PaymentStatus = DerivePaymentMatrix(entry, byUser[entry.UserID])
	}

	return &ListDirectoryOutput{
		Entries:    result.Entries,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	}, nil
}
