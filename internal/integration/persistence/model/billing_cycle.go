package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/iuran-warga/backend/internal/domain/entity"
)

// billingItemJSON is the JSON shape of one line item.
type billingItemJSON struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// BillingCycleModel represents the billing_cycles table in the database.
type BillingCycleModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(255)"`
	Description string          `gorm:"type:text"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	Items       datatypes.JSON  `gorm:"type:jsonb"`
	TotalPrice  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BillingCycleModel.
func (BillingCycleModel) TableName() string {
	return "billing_cycles"
}

// ToEntity converts a BillingCycleModel to a domain BillingCycle entity.
func (m *BillingCycleModel) ToEntity() *entity.BillingCycle {
	var items []billingItemJSON
	fromJSON(m.Items, &items)

	entityItems := make([]entity.BillingItem, len(items))
	for i, item := range items {
		entityItems[i] = entity.BillingItem{Name: item.Name, Price: item.Price}
	}

	return &entity.BillingCycle{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Date:        m.Date,
		Items:       entityItems,
		TotalPrice:  m.TotalPrice,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// BillingCycleFromEntity converts a domain BillingCycle entity to a model.
func BillingCycleFromEntity(c *entity.BillingCycle) *BillingCycleModel {
	items := make([]billingItemJSON, len(c.Items))
	for i, item := range c.Items {
		items[i] = billingItemJSON{Name: item.Name, Price: item.Price}
	}

	return &BillingCycleModel{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Date:        c.Date,
		Items:       toJSON(items),
		TotalPrice:  c.TotalPrice,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
