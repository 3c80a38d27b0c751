package entity

import (
	"time"

	"github.com/google/uuid"
)

// ClaimStatus represents the lifecycle state of a payment claim.
type ClaimStatus string

const (
	// ClaimStatusProcessing is the initial state and the state a claim
	// returns to after a resident resubmits.
	ClaimStatusProcessing ClaimStatus = "processing"
	// ClaimStatusNeedToFix means the admin asked the resident to fix the
	// submission.
	ClaimStatusNeedToFix ClaimStatus = "need_to_fix"
	// ClaimStatusVerified is the terminal success state. Only verified
	// claims count toward paid-month state and ledger import.
	ClaimStatusVerified ClaimStatus = "verified"
)

// IsReviewOutcome reports whether the status is a valid admin review outcome.
func (s ClaimStatus) IsReviewOutcome() bool {
	return s == ClaimStatusVerified || s == ClaimStatusNeedToFix
}

// SubmissionAttempt is one resident payment submission: proof images plus a
// free-text description. The attempt list on a claim is append-only.
type SubmissionAttempt struct {
	Date          time.Time
	TransferProof []string
	Description   string
}

// AdminResponse is one admin reply to a claim. Responses are appended so the
// full review history is retained.
type AdminResponse struct {
	Date   time.Time
	Note   string
	Images []string
}

// PaymentClaim represents one resident's payment submission against a
// billing cycle ("tagihan user"). The embedded snapshot never changes after
// creation, even if the source cycle is edited later.
type PaymentClaim struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	BillingCycleID uuid.UUID
	Snapshot       *BillingCycle
	Status         ClaimStatus
	PaidAt         *time.Time
	Attempts       []SubmissionAttempt
	AdminResponses []AdminResponse
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewPaymentClaim creates a claim in the processing state with the cycle
// snapshotted and a first submission attempt recorded.
func NewPaymentClaim(userID uuid.UUID, cycle *BillingCycle, attempt SubmissionAttempt) *PaymentClaim {
	now := time.Now().UTC()
	return &PaymentClaim{
		ID:             uuid.New(),
		UserID:         userID,
		BillingCycleID: cycle.ID,
		Snapshot:       cycle.Clone(),
		Status:         ClaimStatusProcessing,
		PaidAt:         &now,
		Attempts:       []SubmissionAttempt{attempt},
		AdminResponses: []AdminResponse{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// AppendAttempt records a resubmission and forces the claim back to
// processing regardless of its prior status.
func (c *PaymentClaim) AppendAttempt(attempt SubmissionAttempt) {
	c.Attempts = append(c.Attempts, attempt)
	c.Status = ClaimStatusProcessing
	c.UpdatedAt = time.Now().UTC()
}

// ApplyReview appends an admin response and moves the claim to the review
// outcome.
func (c *PaymentClaim) ApplyReview(status ClaimStatus, response AdminResponse) {
	c.AdminResponses = append(c.AdminResponses, response)
	c.Status = status
	c.UpdatedAt = time.Now().UTC()
}

// BillingMonth returns the fixed month name of the snapshot's billing date,
// falling back to the given cycle when the snapshot is absent. Returns ""
// when neither is available.
func (c *PaymentClaim) BillingMonth(fallback *BillingCycle) string {
	if c.Snapshot != nil {
		return MonthNameOf(c.Snapshot.Date)
	}
	if fallback != nil {
		return MonthNameOf(fallback.Date)
	}
	return ""
}
