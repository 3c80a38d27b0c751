package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/iuran-warga/backend/internal/domain/entity"
)

// LedgerFilter narrows ledger entry queries.
type LedgerFilter struct {
	Periode string
	Jenis   *entity.TransactionKind
}

// PeriodTotal is one (periode, kind) aggregation row.
type PeriodTotal struct {
	Periode        string
	JenisTransaksi string
	Total          decimal.Decimal
}

// LedgerRepository defines the interface for ledger entry persistence.
type LedgerRepository interface {
	// Create persists a new ledger entry.
	Create(ctx context.Context, entry *entity.LedgerEntry) error

	// FindByID retrieves an entry by ID. Returns ErrLedgerEntryNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.LedgerEntry, error)

	// FindByFilter retrieves entries matching the filter, date descending.
	FindByFilter(ctx context.Context, filter LedgerFilter) ([]*entity.LedgerEntry, error)

	// Update persists changes to an entry.
	Update(ctx context.Context, entry *entity.LedgerEntry) error

	// Delete removes an entry.
	Delete(ctx context.Context, id uuid.UUID) error

	// SumByPeriode returns amount sums grouped by (periode, jenisTransaksi).
	// An empty periode aggregates every period.
	SumByPeriode(ctx context.Context, periode string) ([]PeriodTotal, error)

	// DistinctPeriods returns the distinct periods, descending.
	DistinctPeriods(ctx context.Context) ([]string, error)

	// ExistsSimilar checks for an entry with the same kategori, pihakKetiga,
	// jumlah and periode; used by the idempotent verified-claim import.
	ExistsSimilar(ctx context.Context, kategori, pihakKetiga string, jumlah decimal.Decimal, periode string) (bool, error)
}

// PublicationRepository defines the interface for period publication records.
type PublicationRepository interface {
	// Exists checks whether a period has been published.
	Exists(ctx context.Context, periode string) (bool, error)

	// Publish stores the publication record and its per-resident
	// notification fan-out in a single transaction.
	Publish(ctx context.Context, record *entity.PublishedPeriod, fanout []*entity.Notification) error

	// FindAll retrieves all publication records, newest first.
	FindAll(ctx context.Context) ([]*entity.PublishedPeriod, error)
}
