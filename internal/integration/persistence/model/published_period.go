package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/iuran-warga/backend/internal/domain/entity"
)

// PublishedPeriodModel represents the published_periods table in the database.
type PublishedPeriodModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Periode     string    `gorm:"type:varchar(7);not null;uniqueIndex"`
	PublishedBy uuid.UUID `gorm:"type:uuid;not null"`
	PublishedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the PublishedPeriodModel.
func (PublishedPeriodModel) TableName() string {
	return "published_periods"
}

// ToEntity converts a PublishedPeriodModel to a domain PublishedPeriod entity.
func (m *PublishedPeriodModel) ToEntity() *entity.PublishedPeriod {
	return &entity.PublishedPeriod{
		ID:          m.ID,
		Periode:     m.Periode,
		PublishedBy: m.PublishedBy,
		PublishedAt: m.PublishedAt,
	}
}

// PublishedPeriodFromEntity converts a domain PublishedPeriod entity to a model.
func PublishedPeriodFromEntity(p *entity.PublishedPeriod) *PublishedPeriodModel {
	return &PublishedPeriodModel{
		ID:          p.ID,
		Periode:     p.Periode,
		PublishedBy: p.PublishedBy,
		PublishedAt: p.PublishedAt,
	}
}
