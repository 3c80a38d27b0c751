package ledger

import (
	"context"
	"fmt"

	"github.com/iuran-warga/backend/internal/application/adapter"
	"github.com/iuran-warga/backend/internal/domain/entity"
	domainerror "github.com/iuran-warga/backend/internal/domain/error"
)

// ListEntriesInput represents the input for listing ledger entries.
type ListEntriesInput struct {
	Periode string
	Jenis   *entity.TransactionKind
}

// ListEntriesUseCase lists ledger entries, date descending.
type ListEntriesUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewListEntriesUseCase creates a new ListEntriesUseCase instance.
func NewListEntriesUseCase(ledgerRepo adapter.LedgerRepository) *ListEntriesUseCase {
	return &ListEntriesUseCase{ledgerRepo: ledgerRepo}
}

// Execute lists entries matching the filter.
func (uc *ListEntriesUseCase) Execute(ctx context.Context, input ListEntriesInput) ([]*entity.LedgerEntry, error) {
	if input.Periode != "" && !entity.IsValidPeriode(input.Periode) {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidPeriode,
			"periode must match YYYY-MM",
			domainerror.ErrInvalidPeriode,
		)
	}
	if input.Jenis != nil && !input.Jenis.IsValid() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidTransactionKind,
			"jenisTransaksi must be 'pemasukan' or 'pengeluaran'",
			domainerror.ErrInvalidTransactionKind,
		)
	}

	entries, err := uc.ledgerRepo.FindByFilter(ctx, adapter.LedgerFilter{
		Periode: input.Periode,
		Jenis:   input.Jenis,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	return entries, nil
}
