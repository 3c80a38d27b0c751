package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/iuran-warga/backend/internal/application/usecase/payment"
	"github.com/iuran-warga/backend/internal/domain/entity"
	domainerror "github.com/iuran-warga/backend/internal/domain/error"
	"github.com/iuran-warga/backend/internal/integration/entrypoint/dto"
	"github.com/iuran-warga/backend/internal/integration/entrypoint/middleware"
)

// PaymentController handles payment claim endpoints.
type PaymentController struct {
	submitUseCase   *payment.SubmitClaimUseCase
	resubmitUseCase *payment.ResubmitClaimUseCase
	reviewUseCase   *payment.ReviewClaimUseCase
	listOpenUseCase *payment.ListOpenClaimsUseCase
	getClaimUseCase *payment.GetClaimUseCase
	historyUseCase  *payment.ListVerifiedHistoryUseCase
}

// NewPaymentController creates a new payment controller instance.
func NewPaymentController(
	submitUseCase *payment.SubmitClaimUseCase,
	resubmitUseCase *payment.ResubmitClaimUseCase,
	reviewUseCase *payment.ReviewClaimUseCase,
	listOpenUseCase *payment.ListOpenClaimsUseCase,
	getClaimUseCase *payment.GetClaimUseCase,
	historyUseCase *payment.ListVerifiedHistoryUseCase,
) *PaymentController {
	return &PaymentController{
		submitUseCase:   submitUseCase,
		resubmitUseCase: resubmitUseCase,
		reviewUseCase:   reviewUseCase,
		listOpenUseCase: listOpenUseCase,
		getClaimUseCase: getClaimUseCase,
		historyUseCase:  historyUseCase,
	}
}

// Submit handles POST /payments requests: a resident submits payment proof
// against a billing cycle.
func (c *PaymentController) Submit(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Invalid or expired token",
			Code:  string(domainerror.ErrCodeInvalidToken),
		})
		return
	}

	var req dto.SubmitClaimRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingBillFields),
		})
		return
	}

	cycleID, err := uuid.Parse(req.BillingCycleID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid billingCycleId",
			Code:  string(domainerror.ErrCodeMissingBillFields),
		})
		return
	}

	output, err := c.submitUseCase.Execute(ctx.Request.Context(), payment.SubmitClaimInput{
		UserID:         userID,
		BillingCycleID: cycleID,
		ProofImage:     req.ProofImage,
		Description:    req.Description,
	})
	if err != nil {
		c.handleClaimError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToClaimResponse(ctx, output.Claim, output.Claim.Snapshot, nil))
}

// Resubmit handles POST /payments/:id/resubmit requests.
func (c *PaymentController) Resubmit(ctx *gin.Context) {
	claimID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid id",
			Code:  string(domainerror.ErrCodeMissingBillFields),
		})
		return
	}

	var req dto.ResubmitClaimRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingBillFields),
		})
		return
	}

	output, err := c.resubmitUseCase.Execute(ctx.Request.Context(), payment.ResubmitClaimInput{
		ClaimID:     claimID,
		ProofImage:  req.ProofImage,
		Description: req.Description,
	})
	if err != nil {
		c.handleClaimError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClaimResponse(ctx, output.Claim, output.Claim.Snapshot, nil))
}

// Review handles POST /payments/:id/review requests: an admin verifies a
// claim or sends it back for fixing.
func (c *PaymentController) Review(ctx *gin.Context) {
	claimID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid id",
			Code:  string(domainerror.ErrCodeMissingBillFields),
		})
		return
	}

	var req dto.ReviewClaimRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidClaimStatus),
		})
		return
	}

	output, err := c.reviewUseCase.Execute(ctx.Request.Context(), payment.ReviewClaimInput{
		ClaimID: claimID,
		Status:  entity.ClaimStatus(req.Status),
		Note:    req.Note,
		Images:  req.Images,
	})
	if err != nil {
		c.handleClaimError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClaimResponse(ctx, output.Claim, output.Claim.Snapshot, nil))
}

// ListOpen handles GET /payments requests: claims pending review. Residents
// see their own; admin and chair see everyone's and may filter by userId.
func (c *PaymentController) ListOpen(ctx *gin.Context) {
	userFilter, ok := c.scopeUserFilter(ctx)
	if !ok {
		return
	}

	output, err := c.listOpenUseCase.Execute(ctx.Request.Context(), payment.ListOpenClaimsInput{
		UserID: userFilter,
	})
	if err != nil {
		c.handleClaimError(ctx, err)
		return
	}

	claims := make([]dto.ClaimResponse, len(output.Claims))
	for i, claim := range output.Claims {
		claims[i] = dto.ToClaimResponse(ctx, claim.Claim, claim.Cycle, claim.User)
	}
	ctx.JSON(http.StatusOK, gin.H{"claims": claims})
}

// Get handles GET /payments/:id requests.
func (c *PaymentController) Get(ctx *gin.Context) {
	claimID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid id",
			Code:  string(domainerror.ErrCodeMissingBillFields),
		})
		return
	}

	output, err := c.getClaimUseCase.Execute(ctx.Request.Context(), claimID)
	if err != nil {
		c.handleClaimError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClaimResponse(ctx, output.Claim, output.Cycle, output.User))
}

// History handles GET /payments/history requests: the verified payment
// history, optionally filtered by month name.
func (c *PaymentController) History(ctx *gin.Context) {
	userFilter, ok := c.scopeUserFilter(ctx)
	if !ok {
		return
	}

	output, err := c.historyUseCase.Execute(ctx.Request.Context(), payment.ListVerifiedHistoryInput{
		UserID: userFilter,
		Month:  ctx.Query("month"),
	})
	if err != nil {
		c.handleClaimError(ctx, err)
		return
	}

	entries := make([]dto.HistoryEntryResponse, len(output.Entries))
	for i, entry := range output.Entries {
		entries[i] = dto.ToHistoryEntryResponse(ctx, entry)
	}
	ctx.JSON(http.StatusOK, gin.H{"history": entries})
}

// scopeUserFilter resolves the user filter for listing endpoints: residents
// are always scoped to themselves, privileged roles may pass ?userId= or
// see everyone.
func (c *PaymentController) scopeUserFilter(ctx *gin.Context) (*uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Invalid or expired token",
			Code:  string(domainerror.ErrCodeInvalidToken),
		})
		return nil, false
	}

	role, _ := middleware.GetRoleFromContext(ctx)
	if !isPrivileged(role) {
		return &userID, true
	}

	if raw := ctx.Query("userId"); raw != "" {
		filtered, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid userId",
				Code:  string(domainerror.ErrCodeMissingBillFields),
			})
			return nil, false
		}
		return &filtered, true
	}
	return nil, true
}

// handleClaimError handles claim errors and returns appropriate HTTP responses.
func (c *PaymentController) handleClaimError(ctx *gin.Context, err error) {
	var billingErr *domainerror.BillingError
	if errors.As(err, &billingErr) {
		ctx.JSON(statusCodeForBillingError(billingErr.Code), dto.ErrorResponse{
			Error: billingErr.Message,
			Code:  string(billingErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
