package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/iuran-warga/backend/internal/domain/entity"
)

// DirectoryEntryModel represents the directory_entries table in the database.
type DirectoryEntryModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	Nama          string         `gorm:"type:varchar(255);not null;index"`
	Alamat        string         `gorm:"type:varchar(255);not null;default:'-'"`
	PaymentStatus datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt     time.Time      `gorm:"not null"`
	UpdatedAt     time.Time      `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the DirectoryEntryModel.
func (DirectoryEntryModel) TableName() string {
	return "directory_entries"
}

// ToEntity converts a DirectoryEntryModel to a domain DirectoryEntry entity.
// The stored matrix is normalized so corrupted rows still yield all twelve
// months.
func (m *DirectoryEntryModel) ToEntity() *entity.DirectoryEntry {
	matrix := entity.MonthMatrix{}
	fromJSON(m.PaymentStatus, &matrix)

	return &entity.DirectoryEntry{
		ID:            m.ID,
		UserID:        m.UserID,
		Nama:          m.Nama,
		Alamat:        m.Alamat,
		PaymentStatus: matrix.Normalized(),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// DirectoryEntryFromEntity converts a domain DirectoryEntry entity to a model.
func DirectoryEntryFromEntity(e *entity.DirectoryEntry) *DirectoryEntryModel {
	return &DirectoryEntryModel{
		ID:            e.ID,
		UserID:        e.UserID,
		Nama:          e.Nama,
		Alamat:        e.Alamat,
		PaymentStatus: toJSON(e.PaymentStatus.Normalized()),
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}
