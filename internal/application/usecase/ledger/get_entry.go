package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/iuran-warga/backend/internal/application/adapter"
	"github.com/iuran-warga/backend/internal/domain/entity"
	domainerror "github.com/iuran-warga/backend/internal/domain/error"
)

// GetEntryUseCase retrieves one ledger entry.
type GetEntryUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewGetEntryUseCase creates a new GetEntryUseCase instance.
func NewGetEntryUseCase(ledgerRepo adapter.LedgerRepository) *GetEntryUseCase {
	return &GetEntryUseCase{ledgerRepo: ledgerRepo}
}

// Execute retrieves the entry by id.
func (uc *GetEntryUseCase) Execute(ctx context.Context, id uuid.UUID) (*entity.LedgerEntry, error) {
	entry, err := uc.ledgerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrLedgerEntryNotFound) {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeLedgerEntryNotFound,
				"data not found",
				domainerror.ErrLedgerEntryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find ledger entry: %w", err)
	}
	return entry, nil
}
