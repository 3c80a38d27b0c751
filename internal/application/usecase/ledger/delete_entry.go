package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/iuran-warga/backend/internal/application/adapter"
	domainerror "github.com/iuran-warga/backend/internal/domain/error"
)

// DeleteEntryUseCase removes a ledger entry.
type DeleteEntryUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewDeleteEntryUseCase creates a new DeleteEntryUseCase instance.
func NewDeleteEntryUseCase(ledgerRepo adapter.LedgerRepository) *DeleteEntryUseCase {
	return &DeleteEntryUseCase{ledgerRepo: ledgerRepo}
}

// Execute deletes the entry by id.
func (uc *DeleteEntryUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.ledgerRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, domainerror.ErrLedgerEntryNotFound) {
			return domainerror.NewLedgerError(
				domainerror.ErrCodeLedgerEntryNotFound,
				"data not found",
				domainerror.ErrLedgerEntryNotFound,
			)
		}
		return fmt.Errorf("failed to find ledger entry: %w", err)
	}

	if err := uc.ledgerRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete ledger entry: %w", err)
	}
	return nil
}
