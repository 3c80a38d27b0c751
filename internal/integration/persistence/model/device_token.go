package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/iuran-warga/backend/internal/domain/entity"
)

// DeviceTokenModel represents the device_tokens table in the database.
type DeviceTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Token     string    `gorm:"type:varchar(512);not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the DeviceTokenModel.
func (DeviceTokenModel) TableName() string {
	return "device_tokens"
}

// ToEntity converts a DeviceTokenModel to a domain DeviceToken entity.
func (m *DeviceTokenModel) ToEntity() *entity.DeviceToken {
	return &entity.DeviceToken{
		ID:        m.ID,
		UserID:    m.UserID,
		Token:     m.Token,
		CreatedAt: m.CreatedAt,
	}
}

// DeviceTokenFromEntity converts a domain DeviceToken entity to a model.
func DeviceTokenFromEntity(t *entity.DeviceToken) *DeviceTokenModel {
	return &DeviceTokenModel{
		ID:        t.ID,
		UserID:    t.UserID,
		Token:     t.Token,
		CreatedAt: t.CreatedAt,
	}
}
