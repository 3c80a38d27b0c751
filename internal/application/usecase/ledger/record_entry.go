// Package ledger contains the financial report ("laporan keuangan") use
// cases: manual entry CRUD, period summaries, publication to residents,
// the verified-claim import and the XLSX export.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/iuran-warga/backend/internal/application/adapter"
	"github.com/iuran-warga/backend/internal/domain/entity"
	domainerror "github.com/iuran-warga/backend/internal/domain/error"
)

// RecordEntryInput represents the input for recording a ledger entry.
type RecordEntryInput struct {
	Tanggal        time.Time
	JenisTransaksi entity.TransactionKind
	Kategori       string
	PihakKetiga    string
	Jumlah         decimal.Decimal
	Keterangan     string
	// Periode defaults to the YYYY-MM of Tanggal when empty.
	Periode string
	// BuktiTransaksi are base64 receipt images.
	BuktiTransaksi []string
	CreatedBy      uuid.UUID
}

// RecordEntryUseCase records a manual income or expense entry.
type RecordEntryUseCase struct {
	ledgerRepo adapter.LedgerRepository
	imageStore adapter.ImageStore
}

// NewRecordEntryUseCase creates a new RecordEntryUseCase instance.
func NewRecordEntryUseCase(ledgerRepo adapter.LedgerRepository, imageStore adapter.ImageStore) *RecordEntryUseCase {
	return &RecordEntryUseCase{ledgerRepo: ledgerRepo, imageStore: imageStore}
}

// Execute validates and persists the entry.
func (uc *RecordEntryUseCase) Execute(ctx context.Context, input RecordEntryInput) (*entity.LedgerEntry, error) {
	if err := validateEntryFields(input.JenisTransaksi, input.Kategori, input.Jumlah, input.Periode); err != nil {
		return nil, err
	}

	entry := entity.NewLedgerEntry(
		input.Tanggal,
		input.JenisTransaksi,
		input.Kategori,
		input.PihakKetiga,
		input.Jumlah,
		input.Keterangan,
		input.Periode,
		input.CreatedBy,
	)

	for _, payload := range input.BuktiTransaksi {
		path, err := uc.imageStore.Save(ctx, payload)
		if err != nil {
			return nil, fmt.Errorf("failed to store receipt image: %w", err)
		}
		entry.BuktiTransaksi = append(entry.BuktiTransaksi, path)
	}

	if err := uc.ledgerRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create ledger entry: %w", err)
	}
	return entry, nil
}

func validateEntryFields(kind entity.TransactionKind, kategori string, jumlah decimal.Decimal, periode string) error {
	if !kind.IsValid() {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidTransactionKind,
			"jenisTransaksi must be 'pemasukan' or 'pengeluaran'",
			domainerror.ErrInvalidTransactionKind,
		)
	}
	if kategori == "" {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeMissingLedgerFields,
			"kategori is required",
			nil,
		)
	}
	if jumlah.IsNegative() {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"jumlah must not be negative",
			domainerror.ErrInvalidAmount,
		)
	}
	if periode != "" && !entity.IsValidPeriode(periode) {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidPeriode,
			"periode must match YYYY-MM",
			domainerror.ErrInvalidPeriode,
		)
	}
	return nil
}
