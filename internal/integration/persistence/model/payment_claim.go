package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/iuran-warga/backend/internal/domain/entity"
)

// cycleSnapshotJSON is the JSON shape of the billing cycle snapshot stored
// on a claim.
type cycleSnapshotJSON struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Date        time.Time         `json:"date"`
	Items       []billingItemJSON `json:"items"`
	TotalPrice  decimal.Decimal   `json:"totalPrice"`
}

// submissionAttemptJSON is the JSON shape of one resident attempt.
type submissionAttemptJSON struct {
	Date          time.Time `json:"date"`
	TransferProof []string  `json:"transferProof"`
	Description   string    `json:"description"`
}

// adminResponseJSON is the JSON shape of one admin reply.
type adminResponseJSON struct {
	Date   time.Time `json:"date"`
	Note   string    `json:"note"`
	Images []string  `json:"images"`
}

// PaymentClaimModel represents the payment_claims table in the database.
// Snapshot, Attempts and AdminResponses are JSON columns read with the
// tolerant decoder, so corrupted legacy rows degrade to empty values
// instead of failing the query.
type PaymentClaimModel struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID      `gorm:"type:uuid;not null;index"`
	BillingCycleID uuid.UUID      `gorm:"type:uuid;not null;index"`
	Snapshot       datatypes.JSON `gorm:"type:jsonb"`
	Status         string         `gorm:"type:varchar(20);not null;index;default:'processing'"`
	PaidAt         *time.Time     `gorm:"type:timestamp"`
	Attempts       datatypes.JSON `gorm:"type:jsonb"`
	AdminResponses datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt      time.Time      `gorm:"not null;index"`
	UpdatedAt      time.Time      `gorm:"not null"`
}

// TableName returns the table name for the PaymentClaimModel.
func (PaymentClaimModel) TableName() string {
	return "payment_claims"
}

// ToEntity converts a PaymentClaimModel to a domain PaymentClaim entity.
func (m *PaymentClaimModel) ToEntity() *entity.PaymentClaim {
	var snapshot *entity.BillingCycle
	var snapJSON cycleSnapshotJSON
	fromJSON(m.Snapshot, &snapJSON)
	if snapJSON.ID != uuid.Nil {
		items := make([]entity.BillingItem, len(snapJSON.Items))
		for i, item := range snapJSON.Items {
			items[i] = entity.BillingItem{Name: item.Name, Price: item.Price}
		}
		snapshot = &entity.BillingCycle{
			ID:          snapJSON.ID,
			Name:        snapJSON.Name,
			Description: snapJSON.Description,
			Date:        snapJSON.Date,
			Items:       items,
			TotalPrice:  snapJSON.TotalPrice,
		}
	}

	var attemptsJSON []submissionAttemptJSON
	fromJSON(m.Attempts, &attemptsJSON)
	attempts := make([]entity.SubmissionAttempt, len(attemptsJSON))
	for i, a := range attemptsJSON {
		attempts[i] = entity.SubmissionAttempt{
			Date:          a.Date,
			TransferProof: a.TransferProof,
			Description:   a.Description,
		}
	}

	var responsesJSON []adminResponseJSON
	fromJSON(m.AdminResponses, &responsesJSON)
	responses := make([]entity.AdminResponse, len(responsesJSON))
	for i, r := range responsesJSON {
		responses[i] = entity.AdminResponse{
			Date:   r.Date,
			Note:   r.Note,
			Images: r.Images,
		}
	}

	return &entity.PaymentClaim{
		ID:             m.ID,
		UserID:         m.UserID,
		BillingCycleID: m.BillingCycleID,
		Snapshot:       snapshot,
		Status:         entity.ClaimStatus(m.Status),
		PaidAt:         m.PaidAt,
		Attempts:       attempts,
		AdminResponses: responses,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// PaymentClaimFromEntity converts a domain PaymentClaim entity to a model.
func PaymentClaimFromEntity(c *entity.PaymentClaim) *PaymentClaimModel {
	var snapshot datatypes.JSON
	if c.Snapshot != nil {
		items := make([]billingItemJSON, len(c.Snapshot.Items))
		for i, item := range c.Snapshot.Items {
			items[i] = billingItemJSON{Name: item.Name, Price: item.Price}
		}
		snapshot = toJSON(cycleSnapshotJSON{
			ID:          c.Snapshot.ID,
			Name:        c.Snapshot.Name,
			Description: c.Snapshot.Description,
			Date:        c.Snapshot.Date,
			Items:       items,
			TotalPrice:  c.Snapshot.TotalPrice,
		})
	}

	attempts := make([]submissionAttemptJSON, len(c.Attempts))
	for i, a := range c.Attempts {
		attempts[i] = submissionAttemptJSON{
			Date:          a.Date,
			TransferProof: a.TransferProof,
			Description:   a.Description,
		}
	}

	responses := make([]adminResponseJSON, len(c.AdminResponses))
	for i, r := range c.AdminResponses {
		responses[i] = adminResponseJSON{
			Date:   r.Date,
			Note:   r.Note,
			Images: r.Images,
		}
	}

	return &PaymentClaimModel{
		ID:             c.ID,
		UserID:         c.UserID,
		BillingCycleID: c.BillingCycleID,
		Snapshot:       snapshot,
		Status:         string(c.Status),
		PaidAt:         c.PaidAt,
		Attempts:       toJSON(attempts),
		AdminResponses: toJSON(responses),
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
