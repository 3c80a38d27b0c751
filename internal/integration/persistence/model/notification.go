package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/iuran-warga/backend/internal/domain/entity"
)

// NotificationModel represents the notifications table in the database.
type NotificationModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Title          string     `gorm:"type:varchar(255);not null"`
	Message        string     `gorm:"type:text;not null"`
	Type           string     `gorm:"type:varchar(20);not null"`
	IsGlobal       bool       `gorm:"not null;default:false;index"`
	ForRole        string     `gorm:"type:varchar(10);not null;default:'user'"`
	BillingCycleID *uuid.UUID `gorm:"type:uuid"`
	UserID         *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt      time.Time  `gorm:"not null;index"`
}

// TableName returns the table name for the NotificationModel.
func (NotificationModel) TableName() string {
	return "notifications"
}

// ToEntity converts a NotificationModel to a domain Notification entity.
func (m *NotificationModel) ToEntity() *entity.Notification {
	return &entity.Notification{
		ID:             m.ID,
		Title:          m.Title,
		Message:        m.Message,
		Type:           m.Type,
		IsGlobal:       m.IsGlobal,
		ForRole:        entity.Role(m.ForRole),
		BillingCycleID: m.BillingCycleID,
		UserID:         m.UserID,
		CreatedAt:      m.CreatedAt,
	}
}

// NotificationFromEntity converts a domain Notification entity to a model.
func NotificationFromEntity(n *entity.Notification) *NotificationModel {
	return &NotificationModel{
		ID:             n.ID,
		Title:          n.Title,
		Message:        n.Message,
		Type:           n.Type,
		IsGlobal:       n.IsGlobal,
		ForRole:        string(n.ForRole),
		BillingCycleID: n.BillingCycleID,
		UserID:         n.UserID,
		CreatedAt:      n.CreatedAt,
	}
}

// NotificationDismissalModel represents the notification_dismissals table.
// The (user_id, notification_id) pair is unique so re-dismissing conflicts
// instead of duplicating.
type NotificationDismissalModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_dismissal_user_notification"`
	NotificationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_dismissal_user_notification"`
	CreatedAt      time.Time `gorm:"not null"`
}

// TableName returns the table name for the NotificationDismissalModel.
func (NotificationDismissalModel) TableName() string {
	return "notification_dismissals"
}
