package entity

import (
	"time"

	"github.com/google/uuid"
)

// DirectoryEntry is the denormalized per-resident record ("data warga")
// backing the monthly paid/unpaid matrix. It is created by the sync
// operation and mutated by both derivation and manual admin edits.
type DirectoryEntry struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Nama          string
	Alamat        string
	PaymentStatus MonthMatrix
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewDirectoryEntry creates an entry with an all-false matrix and the
// placeholder address used until an admin fills it in.
func NewDirectoryEntry(userID uuid.UUID, nama string) *DirectoryEntry {
	now := time.Now().UTC()
	return &DirectoryEntry{
		ID:            uuid.New(),
		UserID:        userID,
		Nama:          nama,
		Alamat:        "-",
		PaymentStatus: NewMonthMatrix(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// MonthStats is the paid/unpaid count for one month across the directory.
type MonthStats struct {
	Paid   int
	Unpaid int
}

// DirectoryStats aggregates per-month counts over all directory entries.
type DirectoryStats struct {
	TotalWarga   int
	MonthlyStats map[string]MonthStats
}
