package dto

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/iuran-warga/backend/internal/application/usecase/ledger"
	"github.com/iuran-warga/backend/internal/domain/entity"
)

// RecordEntryRequest represents the request body for recording a ledger
// entry. Tanggal uses the "2006-01-02" date format.
type RecordEntryRequest struct {
	Tanggal        string          `json:"tanggal" binding:"required"`
	JenisTransaksi string          `json:"jenisTransaksi" binding:"required"`
	Kategori       string          `json:"kategori"`
	PihakKetiga    string          `json:"pihakKetiga"`
	Jumlah         decimal.Decimal `json:"jumlah"`
	Keterangan     string          `json:"keterangan"`
	Periode        string          `json:"periode"`
	// BuktiTransaksi are base64 receipt images.
	BuktiTransaksi []string `json:"buktiTransaksi"`
}

// UpdateEntryRequest represents the request body for editing a ledger
// entry. New receipt images are appended, never replaced.
type UpdateEntryRequest struct {
	Tanggal        string          `json:"tanggal" binding:"required"`
	JenisTransaksi string          `json:"jenisTransaksi" binding:"required"`
	Kategori       string          `json:"kategori"`
	PihakKetiga    string          `json:"pihakKetiga"`
	Jumlah         decimal.Decimal `json:"jumlah"`
	Keterangan     string          `json:"keterangan"`
	Periode        string          `json:"periode"`
	BuktiTransaksi []string        `json:"buktiTransaksi"`
}

// PublishPeriodRequest represents the request body for publishing a period.
type PublishPeriodRequest struct {
	Periode string `json:"periode" binding:"required"`
}

// LedgerEntryResponse represents a ledger entry in API responses.
type LedgerEntryResponse struct {
	ID             string          `json:"id"`
	Tanggal        time.Time       `json:"tanggal"`
	JenisTransaksi string          `json:"jenisTransaksi"`
	Kategori       string          `json:"kategori"`
	PihakKetiga    string          `json:"pihakKetiga"`
	Jumlah         decimal.Decimal `json:"jumlah"`
	Keterangan     string          `json:"keterangan"`
	Periode        string          `json:"periode"`
	BuktiTransaksi []string        `json:"buktiTransaksi"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// ToLedgerEntryResponse converts a ledger entry to its API representation.
func ToLedgerEntryResponse(ctx *gin.Context, entry *entity.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:             entry.ID.String(),
		Tanggal:        entry.Tanggal,
		JenisTransaksi: string(entry.JenisTransaksi),
		Kategori:       entry.Kategori,
		PihakKetiga:    entry.PihakKetiga,
		Jumlah:         entry.Jumlah,
		Keterangan:     entry.Keterangan,
		Periode:        entry.Periode,
		BuktiTransaksi: AbsoluteImageURLs(ctx, entry.BuktiTransaksi),
		CreatedAt:      entry.CreatedAt,
		UpdatedAt:      entry.UpdatedAt,
	}
}

// ToLedgerEntryResponses converts a slice of ledger entries.
func ToLedgerEntryResponses(ctx *gin.Context, entries []*entity.LedgerEntry) []LedgerEntryResponse {
	out := make([]LedgerEntryResponse, len(entries))
	for i, entry := range entries {
		out[i] = ToLedgerEntryResponse(ctx, entry)
	}
	return out
}

// PeriodSummaryResponse is the aggregation for one reporting period.
type PeriodSummaryResponse struct {
	Periode     string          `json:"periode"`
	Pemasukan   decimal.Decimal `json:"pemasukan"`
	Pengeluaran decimal.Decimal `json:"pengeluaran"`
	Saldo       decimal.Decimal `json:"saldo"`
}

// ToPeriodSummaryResponse converts a period summary.
func ToPeriodSummaryResponse(summary entity.PeriodSummary) PeriodSummaryResponse {
	return PeriodSummaryResponse{
		Periode:     summary.Periode,
		Pemasukan:   summary.Pemasukan,
		Pengeluaran: summary.Pengeluaran,
		Saldo:       summary.Saldo,
	}
}

// PeriodInfoResponse is one reporting period with its publication flag.
type PeriodInfoResponse struct {
	Periode     string `json:"periode"`
	IsPublished bool   `json:"isPublished"`
}

// ToPeriodInfoResponses converts the period listing.
func ToPeriodInfoResponses(periods []ledger.PeriodInfo) []PeriodInfoResponse {
	out := make([]PeriodInfoResponse, len(periods))
	for i, p := range periods {
		out[i] = PeriodInfoResponse{Periode: p.Periode, IsPublished: p.IsPublished}
	}
	return out
}

// PublishedPeriodResponse represents a publication record.
type PublishedPeriodResponse struct {
	ID          string    `json:"id"`
	Periode     string    `json:"periode"`
	PublishedAt time.Time `json:"publishedAt"`
}

// ToPublishedPeriodResponse converts a publication record.
func ToPublishedPeriodResponse(record *entity.PublishedPeriod) PublishedPeriodResponse {
	return PublishedPeriodResponse{
		ID:          record.ID.String(),
		Periode:     record.Periode,
		PublishedAt: record.PublishedAt,
	}
}

// ResidentSummaryResponse is the published report view residents see.
type ResidentSummaryResponse struct {
	Summary PeriodSummaryResponse `json:"summary"`
	Entries []LedgerEntryResponse `json:"entries"`
}

// ImportClaimsResponse reports what the verified-claim import did.
type ImportClaimsResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}
