package dto

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/iuran-warga/backend/internal/application/usecase/payment"
	"github.com/iuran-warga/backend/internal/domain/entity"
)

// SubmitClaimRequest represents the request body for a payment submission.
type SubmitClaimRequest struct {
	BillingCycleID string `json:"billingCycleId" binding:"required"`
	// ProofImage is a base64 payload, optionally with a data-URI prefix.
	ProofImage  string `json:"proofImage"`
	Description string `json:"description"`
}

// ResubmitClaimRequest represents the request body for a resubmission after
// a need_to_fix review.
type ResubmitClaimRequest struct {
	ProofImage  string `json:"proofImage"`
	Description string `json:"description"`
}

// ReviewClaimRequest represents the request body for an admin review.
type ReviewClaimRequest struct {
	Status string   `json:"status" binding:"required"`
	Note   string   `json:"note"`
	Images []string `json:"images"`
}

// SubmissionAttemptResponse is one resident submission in API responses.
type SubmissionAttemptResponse struct {
	Date          time.Time `json:"date"`
	TransferProof []string  `json:"transferProof"`
	Description   string    `json:"description"`
}

// AdminResponseResponse is one admin reply in API responses.
type AdminResponseResponse struct {
	Date   time.Time `json:"date"`
	Note   string    `json:"note"`
	Images []string  `json:"images"`
}

// ClaimResponse represents a payment claim in API responses. Cycle is the
// snapshot taken at submission when present.
type ClaimResponse struct {
	ID             string                      `json:"id"`
	UserID         string                      `json:"userId"`
	BillingCycleID string                      `json:"billingCycleId"`
	Status         string                      `json:"status"`
	Cycle          *BillingCycleResponse       `json:"cycle,omitempty"`
	User           *UserResponse               `json:"user,omitempty"`
	PaidAt         *time.Time                  `json:"paidAt,omitempty"`
	Attempts       []SubmissionAttemptResponse `json:"attempts"`
	AdminResponses []AdminResponseResponse     `json:"adminResponses"`
	CreatedAt      time.Time                   `json:"createdAt"`
	UpdatedAt      time.Time                   `json:"updatedAt"`
}

// ToClaimResponse converts a claim with its enrichments to the API
// representation, rewriting image paths to absolute URLs.
func ToClaimResponse(ctx *gin.Context, claim *entity.PaymentClaim, cycle *entity.BillingCycle, user *entity.User) ClaimResponse {
	resp := ClaimResponse{
		ID:             claim.ID.String(),
		UserID:         claim.UserID.String(),
		BillingCycleID: claim.BillingCycleID.String(),
		Status:         string(claim.Status),
		PaidAt:         claim.PaidAt,
		Attempts:       toAttemptResponses(ctx, claim.Attempts),
		AdminResponses: toAdminResponseResponses(ctx, claim.AdminResponses),
		CreatedAt:      claim.CreatedAt,
		UpdatedAt:      claim.UpdatedAt,
	}
	if cycle != nil {
		cycleResp := ToBillingCycleResponse(cycle, false)
		resp.Cycle = &cycleResp
	}
	if user != nil {
		userResp := ToUserResponse(user)
		resp.User = &userResp
	}
	return resp
}

// HistoryEntryResponse is one verified claim collapsed to its latest
// attempt and latest admin response.
type HistoryEntryResponse struct {
	ID             string                     `json:"id"`
	Month          string                     `json:"month"`
	Cycle          *BillingCycleResponse      `json:"cycle,omitempty"`
	User           *UserResponse              `json:"user,omitempty"`
	PaidAt         *time.Time                 `json:"paidAt,omitempty"`
	LatestAttempt  *SubmissionAttemptResponse `json:"latestAttempt,omitempty"`
	LatestResponse *AdminResponseResponse     `json:"latestResponse,omitempty"`
}

// ToHistoryEntryResponse converts one history entry to its API
// representation.
func ToHistoryEntryResponse(ctx *gin.Context, entry payment.HistoryEntry) HistoryEntryResponse {
	resp := HistoryEntryResponse{
		ID:     entry.Claim.ID.String(),
		Month:  entry.Month,
		PaidAt: entry.Claim.PaidAt,
	}
	if entry.Cycle != nil {
		cycleResp := ToBillingCycleResponse(entry.Cycle, true)
		resp.Cycle = &cycleResp
	}
	if entry.User != nil {
		userResp := ToUserResponse(entry.User)
		resp.User = &userResp
	}
	if entry.LatestAttempt != nil {
		attempt := toAttemptResponses(ctx, []entity.SubmissionAttempt{*entry.LatestAttempt})[0]
		resp.LatestAttempt = &attempt
	}
	if entry.LatestResponse != nil {
		response := toAdminResponseResponses(ctx, []entity.AdminResponse{*entry.LatestResponse})[0]
		resp.LatestResponse = &response
	}
	return resp
}

func toAttemptResponses(ctx *gin.Context, attempts []entity.SubmissionAttempt) []SubmissionAttemptResponse {
	out := make([]SubmissionAttemptResponse, len(attempts))
	for i, attempt := range attempts {
		out[i] = SubmissionAttemptResponse{
			Date:          attempt.Date,
			TransferProof: AbsoluteImageURLs(ctx, attempt.TransferProof),
			Description:   attempt.Description,
		}
	}
	return out
}

func toAdminResponseResponses(ctx *gin.Context, responses []entity.AdminResponse) []AdminResponseResponse {
	out := make([]AdminResponseResponse, len(responses))
	for i, response := range responses {
		out[i] = AdminResponseResponse{
			Date:   response.Date,
			Note:   response.Note,
			Images: AbsoluteImageURLs(ctx, response.Images),
		}
	}
	return out
}
