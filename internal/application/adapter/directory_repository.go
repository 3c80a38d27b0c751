package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/iuran-warga/backend/internal/domain/entity"
)

// DirectoryFilter narrows directory listings.
type DirectoryFilter struct {
	// Search is a case-insensitive substring match on nama.
	Search string
	Page   int
	Limit  int
}

// DirectoryListResult is one page of directory entries with pagination metadata.
type DirectoryListResult struct {
	Entries    []*entity.DirectoryEntry
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// DirectoryRepository defines the interface for resident directory persistence.
// All queries are restricted to entries whose linked user has the resident role.
type DirectoryRepository interface {
	// Create persists a new directory entry.
	Create(ctx context.Context, entry *entity.DirectoryEntry) error

	// FindByID retrieves an entry by ID. Returns ErrDirectoryEntryNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DirectoryEntry, error)

	// FindByUserID retrieves the entry for one resident, or
	// ErrDirectoryEntryNotFound when none exists.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.DirectoryEntry, error)

	// FindAll retrieves every entry ordered by nama ascending.
	FindAll(ctx context.Context) ([]*entity.DirectoryEntry, error)

	// FindByFilter retrieves one page of entries; the total uses the same filter.
	FindByFilter(ctx context.Context, filter DirectoryFilter) (*DirectoryListResult, error)

	// Update persists the entry's nama, alamat and month matrix.
	Update(ctx context.Context, entry *entity.DirectoryEntry) error
}
