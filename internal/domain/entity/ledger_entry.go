package entity

import (
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind distinguishes income from expense ledger entries.
type TransactionKind string

const (
	// KindPemasukan is income.
	KindPemasukan TransactionKind = "pemasukan"
	// KindPengeluaran is expense.
	KindPengeluaran TransactionKind = "pengeluaran"
)

// IsValid reports whether the kind is pemasukan or pengeluaran.
func (k TransactionKind) IsValid() bool {
	return k == KindPemasukan || k == KindPengeluaran
}

// periodePattern matches the "YYYY-MM" reporting period format.
var periodePattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// IsValidPeriode reports whether periode is a well-formed "YYYY-MM" string.
func IsValidPeriode(periode string) bool {
	return periodePattern.MatchString(periode)
}

// PeriodeOf returns the "YYYY-MM" period of a date.
func PeriodeOf(t time.Time) string {
	return t.Format("2006-01")
}

// LedgerEntry is one financial transaction record ("laporan keuangan").
type LedgerEntry struct {
	ID             uuid.UUID
	Tanggal        time.Time
	JenisTransaksi TransactionKind
	Kategori       string
	PihakKetiga    string
	Jumlah         decimal.Decimal
	Keterangan     string
	Periode        string
	BuktiTransaksi []string
	CreatedBy      uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewLedgerEntry creates a ledger entry. When periode is empty it defaults
// to the "YYYY-MM" of tanggal.
func NewLedgerEntry(
	tanggal time.Time,
	kind TransactionKind,
	kategori, pihakKetiga string,
	jumlah decimal.Decimal,
	keterangan, periode string,
	createdBy uuid.UUID,
) *LedgerEntry {
	if periode == "" {
		periode = PeriodeOf(tanggal)
	}
	now := time.Now().UTC()
	return &LedgerEntry{
		ID:             uuid.New(),
		Tanggal:        tanggal,
		JenisTransaksi: kind,
		Kategori:       kategori,
		PihakKetiga:    pihakKetiga,
		Jumlah:         jumlah,
		Keterangan:     keterangan,
		Periode:        periode,
		BuktiTransaksi: []string{},
		CreatedBy:      createdBy,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// PeriodSummary is the aggregation result for one reporting period.
// Saldo is always Pemasukan minus Pengeluaran.
type PeriodSummary struct {
	Periode     string
	Pemasukan   decimal.Decimal
	Pengeluaran decimal.Decimal
	Saldo       decimal.Decimal
}

// PublishedPeriod gates resident visibility of a ledger period. At most one
// record exists per periode; publishing twice is a conflict, not an upsert.
type PublishedPeriod struct {
	ID          uuid.UUID
	Periode     string
	PublishedBy uuid.UUID
	PublishedAt time.Time
}

// NewPublishedPeriod creates a publication record for a period.
func NewPublishedPeriod(periode string, publishedBy uuid.UUID) *PublishedPeriod {
	return &PublishedPeriod{
		ID:          uuid.New(),
		Periode:     periode,
		PublishedBy: publishedBy,
		PublishedAt: time.Now().UTC(),
	}
}
