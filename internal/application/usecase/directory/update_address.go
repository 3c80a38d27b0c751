package directory

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/iuran-warga/backend/internal/application/adapter"
	"github.com/iuran-warga/backend/internal/domain/entity"
	domainerror "github.com/iuran-warga/backend/internal/domain/error"
)

// UpdateAddressInput represents an admin address edit.
type UpdateAddressInput struct {
	EntryID uuid.UUID
	Alamat  string
}

// UpdateAddressUseCase updates a directory entry's address.
type UpdateAddressUseCase struct {
	directoryRepo adapter.DirectoryRepository
}

// NewUpdateAddressUseCase creates a new UpdateAddressUseCase instance.
func NewUpdateAddressUseCase(directoryRepo adapter.DirectoryRepository) *UpdateAddressUseCase {
	return &UpdateAddressUseCase{directoryRepo: directoryRepo}
}

// Execute updates the address.
func (uc *UpdateAddressUseCase) Execute(ctx context.Context, input UpdateAddressInput) (*entity.DirectoryEntry, error) {
	if input.Alamat == "" {
		return nil, domainerror.NewDirectoryError(
			domainerror.ErrCodeEmptyAlamat,
			"alamat is required",
			domainerror.ErrEmptyAlamat,
		)
	}

	entry, err := uc.directoryRepo.FindByID(ctx, input.EntryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrDirectoryEntryNotFound) {
			return nil, domainerror.NewDirectoryError(
				domainerror.ErrCodeDirectoryEntryNotFound,
				"data not found",
				domainerror.ErrDirectoryEntryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find directory entry: %w", err)
	}

	entry.Alamat = input.Alamat
	if err := uc.directoryRepo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update directory entry: %w", err)
	}
	return entry, nil
}
