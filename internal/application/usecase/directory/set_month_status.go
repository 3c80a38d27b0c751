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

// SetMonthStatusInput represents a manual paid/unpaid override for one month.
type SetMonthStatusInput struct {
	EntryID uuid.UUID
	Month   string
	Paid    bool
}

// SetMonthStatusUseCase applies a manual admin override to an entry's
// matrix. Unlike derivation this can set a month in either direction, but
// an unset can be re-shadowed at read time by a verified claim for the
// same month.
type SetMonthStatusUseCase struct {
	directoryRepo adapter.DirectoryRepository
}

// NewSetMonthStatusUseCase creates a new SetMonthStatusUseCase instance.
func NewSetMonthStatusUseCase(directoryRepo adapter.DirectoryRepository) *SetMonthStatusUseCase {
	return &SetMonthStatusUseCase{directoryRepo: directoryRepo}
}

// Execute applies the override.
func (uc *SetMonthStatusUseCase) Execute(ctx context.Context, input SetMonthStatusInput) (*entity.DirectoryEntry, error) {
	if !entity.IsValidMonthName(input.Month) {
		return nil, domainerror.NewDirectoryError(
			domainerror.ErrCodeInvalidMonthName,
			fmt.Sprintf("unknown month %q", input.Month),
			domainerror.ErrInvalidMonthName,
		)
	}

	entry, err := uc.directoryRepo.FindByID(ctx, input.EntryID)
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

	entry.PaymentStatus = entry.PaymentStatus.Normalized()
	entry.PaymentStatus.Set(input.Month, input.Paid)

	if err := uc.directoryRepo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update directory entry: %w", err)
	}
	return entry, nil
}
