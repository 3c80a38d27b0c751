package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/iuran-warga/backend/internal/application/adapter"
	"github.com/iuran-warga/backend/internal/domain/entity"
	domainerror "github.com/iuran-warga/backend/internal/domain/error"
	"github.com/iuran-warga/backend/internal/integration/persistence/model"
)

// directoryRepository implements the adapter.DirectoryRepository interface.
type directoryRepository struct {
	db *gorm.DB
}

// NewDirectoryRepository creates a new directory repository instance.
func NewDirectoryRepository(db *gorm.DB) adapter.DirectoryRepository {
	return &directoryRepository{db: db}
}

// residentScope restricts directory queries to entries whose linked user
// still holds the resident role.
func (r *directoryRepository) residentScope(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&model.DirectoryEntryModel{}).
		Joins("JOIN users ON users.id = directory_entries.user_id").
		Where("users.role = ?", string(entity.RoleWarga))
}

// Create creates a new directory entry in the database.
func (r *directoryRepository) Create(ctx context.Context, entry *entity.DirectoryEntry) error {
	entryModel := model.DirectoryEntryFromEntity(entry)
	if err := r.db.WithContext(ctx).Create(entryModel).Error; err != nil {
		return err
	}
	return nil
}

// FindByID retrieves a directory entry by its ID.
func (r *directoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DirectoryEntry, error) {
	var entryModel model.DirectoryEntryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrDirectoryEntryNotFound
		}
		return nil, result.Error
	}
	return entryModel.ToEntity(), nil
}

// FindByUserID retrieves the entry for one resident.
func (r *directoryRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.DirectoryEntry, error) {
	var entryModel model.DirectoryEntryModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrDirectoryEntryNotFound
		}
		return nil, result.Error
	}
	return entryModel.ToEntity(), nil
}

// FindAll retrieves every resident entry ordered by nama ascending.
func (r *directoryRepository) FindAll(ctx context.Context) ([]*entity.DirectoryEntry, error) {
	var entryModels []model.DirectoryEntryModel
	result := r.residentScope(ctx).
		Order("directory_entries.nama ASC").
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.DirectoryEntry, len(entryModels))
	for i, em := range entryModels {
		entries[i] = em.ToEntity()
	}
	return entries, nil
}

// FindByFilter retrieves one page of resident entries.
func (r *directoryRepository) FindByFilter(ctx context.Context, filter adapter.DirectoryFilter) (*adapter.DirectoryListResult, error) {
	query := r.residentScope(ctx)

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(directory_entries.nama) LIKE ?", pattern)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	var entryModels []model.DirectoryEntryModel
	result := query.
		Order("directory_entries.nama ASC").
		Offset(offset).
		Limit(limit).
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.DirectoryEntry, len(entryModels))
	for i, em := range entryModels {
		entries[i] = em.ToEntity()
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &adapter.DirectoryListResult{
		Entries:    entries,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// Update persists the entry's nama, alamat and month matrix.
func (r *directoryRepository) Update(ctx context.Context, entry *entity.DirectoryEntry) error {
	entryModel := model.DirectoryEntryFromEntity(entry)
	result := r.db.WithContext(ctx).
		Model(&model.DirectoryEntryModel{}).
		Where("id = ?", entry.ID).
		Updates(map[string]interface{}{
			"nama":           entryModel.Nama,
			"alamat":         entryModel.Alamat,
			"payment_status": entryModel.PaymentStatus,
			"updated_at":     entryModel.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrDirectoryEntryNotFound
	}
	return nil
}
