package directory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iuran-warga/backend/internal/application/adapter"
	"github.com/iuran-warga/backend/internal/domain/entity"
	domainerror "github.com/iuran-warga/backend/internal/domain/error"
)

// SyncDirectoryOutput reports what the sync did.
type SyncDirectoryOutput struct {
	Created int
	Updated int
}

// SyncDirectoryUseCase reconciles the directory against registered resident
// accounts. Accounts without an entry get one with an all-unpaid matrix and
// the placeholder address; existing entries only have their nama refreshed,
// never their matrix or alamat. Admin and RT accounts are not listed.
type SyncDirectoryUseCase struct {
	directoryRepo adapter.DirectoryRepository
	userRepo      adapter.UserRepository
}

// NewSyncDirectoryUseCase creates a new SyncDirectoryUseCase instance.
func NewSyncDirectoryUseCase(
	directoryRepo adapter.DirectoryRepository,
	userRepo adapter.UserRepository,
) *SyncDirectoryUseCase {
	return &SyncDirectoryUseCase{
		directoryRepo: directoryRepo,
		userRepo:      userRepo,
	}
}

// Execute performs the reconciliation.
func (uc *SyncDirectoryUseCase) Execute(ctx context.Context) (*SyncDirectoryOutput, error) {
	residents, err := uc.userRepo.FindByRole(ctx, entity.RoleWarga)
	if err != nil {
		return nil, fmt.Errorf("failed to list residents: %w", err)
	}

	out := &SyncDirectoryOutput{}
	for _, resident := range residents {
		entry, err := uc.directoryRepo.FindByUserID(ctx, resident.ID)
		if err != nil {
			if !errors.Is(err, domainerror.ErrDirectoryEntryNotFound) {
				return nil, fmt.Errorf("failed to find directory entry: %w", err)
			}
			if err := uc.directoryRepo.Create(ctx, entity.NewDirectoryEntry(resident.ID, resident.Name)); err != nil {
				return nil, fmt.Errorf("failed to create directory entry: %w", err)
			}
			out.Created++
			continue
		}

		if entry.Nama != resident.Name {
			entry.Nama = resident.Name
			if err := uc.directoryRepo.Update(ctx, entry); err != nil {
				return nil, fmt.Errorf("failed to update directory entry: %w", err)
			}
			out.Updated++
		}
	}

	slog.Info("directory sync finished", "created", out.Created, "updated", out.Updated)
	return out, nil
}
