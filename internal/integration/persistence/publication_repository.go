package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/iuran-warga/backend/internal/application/adapter"
	"github.com/iuran-warga/backend/internal/domain/entity"
	"github.com/iuran-warga/backend/internal/integration/persistence/model"
)

// publicationRepository implements the adapter.PublicationRepository interface.
type publicationRepository struct {
	db *gorm.DB
}

// NewPublicationRepository creates a new publication repository instance.
func NewPublicationRepository(db *gorm.DB) adapter.PublicationRepository {
	return &publicationRepository{db: db}
}

// Exists checks whether a period has been published.
func (r *publicationRepository) Exists(ctx context.Context, periode string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.PublishedPeriodModel{}).
		Where("periode = ?", periode).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Publish stores the publication record and its notification fan-out in a
// single transaction, so a failed fan-out never leaves a period published
// without its notifications.
func (r *publicationRepository) Publish(ctx context.Context, record *entity.PublishedPeriod, fanout []*entity.Notification) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.PublishedPeriodFromEntity(record)).Error; err != nil {
			return err
		}

		for _, notif := range fanout {
			if err := tx.Create(model.NotificationFromEntity(notif)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindAll retrieves all publication records, newest first.
func (r *publicationRepository) FindAll(ctx context.Context) ([]*entity.PublishedPeriod, error) {
	var recordModels []model.PublishedPeriodModel
	result := r.db.WithContext(ctx).
		Order("published_at DESC").
		Find(&recordModels)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]*entity.PublishedPeriod, len(recordModels))
	for i, rm := range recordModels {
		records[i] = rm.ToEntity()
	}
	return records, nil
}
