package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/iuran-warga/backend/internal/application/adapter"
	"github.com/iuran-warga/backend/internal/domain/entity"
	"github.com/iuran-warga/backend/internal/integration/persistence/model"
)

// notificationRepository implements the adapter.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository instance.
func NewNotificationRepository(db *gorm.DB) adapter.NotificationRepository {
	return &notificationRepository{db: db}
}

// Create persists a notification record.
func (r *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	notifModel := model.NotificationFromEntity(notification)
	if err := r.db.WithContext(ctx).Create(notifModel).Error; err != nil {
		return err
	}
	return nil
}

// FindVisibleToUser retrieves the union of global notifications and
// notifications targeted at the user, excluding dismissed ones.
func (r *notificationRepository) FindVisibleToUser(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error) {
	var notifModels []model.NotificationModel
	result := r.db.WithContext(ctx).
		Where("(is_global = ? OR user_id = ?)", true, userID).
		Where("id NOT IN (?)",
			r.db.Model(&model.NotificationDismissalModel{}).
				Select("notification_id").
				Where("user_id = ?", userID),
		).
		Order("created_at DESC").
		Find(&notifModels)
	if result.Error != nil {
		return nil, result.Error
	}

	notifications := make([]*entity.Notification, len(notifModels))
	for i, nm := range notifModels {
		notifications[i] = nm.ToEntity()
	}
	return notifications, nil
}

// Dismiss records a per-user dismissal. The unique (user_id,
// notification_id) index makes a repeat dismissal a no-op.
func (r *notificationRepository) Dismiss(ctx context.Context, userID, notificationID uuid.UUID) error {
	dismissal := model.NotificationDismissalModel{
		ID:             uuid.New(),
		UserID:         userID,
		NotificationID: notificationID,
		CreatedAt:      time.Now().UTC(),
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dismissal).Error
}
