package directory

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/iuran-warga/backend/internal/application/adapter"
	"github.com/iuran-warga/backend/internal/domain/entity"
	domainerror "github.com/iuran-warga/backend/internal/domain/error"
)

// GetEntryUseCase retrieves one directory entry with its derived matrix.
type GetEntryUseCase struct {
	directoryRepo adapter.DirectoryRepository
	claimRepo     adapter.PaymentClaimRepository
}

// NewGetEntryUseCase creates a new GetEntryUseCase instance.
func NewGetEntryUseCase(
	directoryRepo adapter.DirectoryRepository,
	claimRepo adapter.PaymentClaimRepository,
) *GetEntryUseCase {
	return &GetEntryUseCase{
		directoryRepo: directoryRepo,
		claimRepo:     claimRepo,
	}
}

// Execute retrieves the entry by id.
func (uc *GetEntryUseCase) Execute(ctx context.Context, id uuid.UUID) (*entity.DirectoryEntry, error) {
	entry, err := uc.directoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrDirectoryEntryNotFound) {
			return nil, domainerror.NewDirectoryError(
				domainerror.ErrCodeDirectoryEntryNotFound,
				"data not found",
				domainerror.ErrDirectoryEntryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find directory entry: %w", err)
	}

	claims, err := uc.claimRepo.FindByUser(ctx, entry.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list claims: %w", err)
	}
	entry.PaymentStatus = DerivePaymentMatrix(entry, claims)

	return entry, nil
}
