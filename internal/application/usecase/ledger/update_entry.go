package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/iuran-warga/backend/internal/application/adapter"
	"github.com/iuran-warga/backend/internal/domain/entity"
	domainerror "github.com/iuran-warga/backend/internal/domain/error"
)

// UpdateEntryInput represents the input for editing a ledger entry. All
// fields replace the stored values; new receipt images are appended.
type UpdateEntryInput struct {
	EntryID        uuid.UUID
	Tanggal        time.Time
	JenisTransaksi entity.TransactionKind
	Kategori       string
	PihakKetiga    string
	Jumlah         decimal.Decimal
	Keterangan     string
	Periode        string
	// NewBuktiTransaksi are base64 receipt images appended to the entry.
	NewBuktiTransaksi []string
}

// UpdateEntryUseCase edits an existing ledger entry.
type UpdateEntryUseCase struct {
	ledgerRepo adapter.LedgerRepository
	imageStore adapter.ImageStore
}

// NewUpdateEntryUseCase creates a new UpdateEntryUseCase instance.
func NewUpdateEntryUseCase(ledgerRepo adapter.LedgerRepository, imageStore adapter.ImageStore) *UpdateEntryUseCase {
	return &UpdateEntryUseCase{ledgerRepo: ledgerRepo, imageStore: imageStore}
}

// Execute applies the edit.
func (uc *UpdateEntryUseCase) Execute(ctx context.Context, input UpdateEntryInput) (*entity.LedgerEntry, error) {
	if err := validateEntryFields(input.JenisTransaksi, input.Kategori, input.Jumlah, input.Periode); err != nil {
		return nil, err
	}

	entry, err := uc.ledgerRepo.FindByID(ctx, input.EntryID)
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

	entry.Tanggal = input.Tanggal
	entry.JenisTransaksi = input.JenisTransaksi
	entry.Kategori = input.Kategori
	entry.PihakKetiga = input.PihakKetiga
	entry.Jumlah = input.Jumlah
	entry.Keterangan = input.Keterangan
	if input.Periode != "" {
		entry.Periode = input.Periode
	} else {
		entry.Periode = entity.PeriodeOf(input.Tanggal)
	}
	entry.UpdatedAt = time.Now().UTC()

	for _, payload := range input.NewBuktiTransaksi {
		path, err := uc.imageStore.Save(ctx, payload)
		if err != nil {
			return nil, fmt.Errorf("failed to store receipt image: %w", err)
		}
		entry.BuktiTransaksi = append(entry.BuktiTransaksi, path)
	}

	if err := uc.ledgerRepo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update ledger entry: %w", err)
	}
	return entry, nil
}
