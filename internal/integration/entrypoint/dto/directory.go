package dto

import (
	"time"

	"github.com/iuran-warga/backend/internal/domain/entity"
)

// UpdateAddressRequest represents an admin address edit.
type UpdateAddressRequest struct {
	Alamat string `json:"alamat"`
}

// SetMonthStatusRequest represents a manual paid/unpaid override.
type SetMonthStatusRequest struct {
	Month string `json:"month" binding:"required"`
	Paid  *bool  `json:"paid" binding:"required"`
}

// DirectoryEntryResponse represents one resident directory row. The
// paymentStatus matrix is the derived view: stored state overlaid with the
// resident's verified claims.
type DirectoryEntryResponse struct {
	ID            string          `json:"id"`
	UserID        string          `json:"userId"`
	Nama          string          `json:"nama"`
	Alamat        string          `json:"alamat"`
	PaymentStatus map[string]bool `json:"paymentStatus"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ToDirectoryEntryResponse converts a directory entry to its API
// representation.
func ToDirectoryEntryResponse(entry *entity.DirectoryEntry) DirectoryEntryResponse {
	return DirectoryEntryResponse{
		ID:            entry.ID.String(),
		UserID:        entry.UserID.String(),
		Nama:          entry.Nama,
		Alamat:        entry.Alamat,
		PaymentStatus: entry.PaymentStatus,
		UpdatedAt:     entry.UpdatedAt,
	}
}

// DirectoryListResponse is one page of the resident directory.
type DirectoryListResponse struct {
	Entries    []DirectoryEntryResponse `json:"entries"`
	Total      int64                    `json:"total"`
	Page       int                      `json:"page"`
	Limit      int                      `json:"limit"`
	TotalPages int                      `json:"totalPages"`
}

// MonthStatsResponse is the paid/unpaid count for one month.
type MonthStatsResponse struct {
	Paid   int `json:"paid"`
	Unpaid int `json:"unpaid"`
}

// DirectoryStatsResponse aggregates per-month counts over the directory.
type DirectoryStatsResponse struct {
	TotalWarga   int                           `json:"totalWarga"`
	MonthlyStats map[string]MonthStatsResponse `json:"monthlyStats"`
}

// ToDirectoryStatsResponse converts directory stats to the API
// representation.
func ToDirectoryStatsResponse(stats *entity.DirectoryStats) DirectoryStatsResponse {
	monthly := make(map[string]MonthStatsResponse, len(stats.MonthlyStats))
	for month, s := range stats.MonthlyStats {
		monthly[month] = MonthStatsResponse{Paid: s.Paid, Unpaid: s.Unpaid}
	}
	return DirectoryStatsResponse{
		TotalWarga:   stats.TotalWarga,
		MonthlyStats: monthly,
	}
}

// SyncDirectoryResponse reports what a directory sync did.
type SyncDirectoryResponse struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
}
