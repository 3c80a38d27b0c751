package persistence

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/iuran-warga/backend/internal/application/adapter"
	"github.com/iuran-warga/backend/internal/domain/entity"
	"github.com/iuran-warga/backend/internal/integration/persistence/model"
)

// deviceTokenRepository implements the adapter.DeviceTokenRepository interface.
type deviceTokenRepository struct {
	db *gorm.DB
}

// NewDeviceTokenRepository creates a new device token repository instance.
func NewDeviceTokenRepository(db *gorm.DB) adapter.DeviceTokenRepository {
	return &deviceTokenRepository{db: db}
}

// Save persists a device token. Re-registering the same token moves it to
// its latest owner instead of failing on the unique index.
func (r *deviceTokenRepository) Save(ctx context.Context, token *entity.DeviceToken) error {
	tokenModel := model.DeviceTokenFromEntity(token)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token"}},
			DoUpdates: clause.AssignmentColumns([]string{"user_id"}),
		}).
		Create(tokenModel).Error
}

// FindAll retrieves every registered device token.
func (r *deviceTokenRepository) FindAll(ctx context.Context) ([]*entity.DeviceToken, error) {
	var tokenModels []model.DeviceTokenModel
	if err := r.db.WithContext(ctx).Find(&tokenModels).Error; err != nil {
		return nil, err
	}

	tokens := make([]*entity.DeviceToken, len(tokenModels))
	for i, tm := range tokenModels {
		tokens[i] = tm.ToEntity()
	}
	return tokens, nil
}
