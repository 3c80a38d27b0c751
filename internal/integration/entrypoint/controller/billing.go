package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/iuran-warga/backend/internal/application/usecase/billing"
	domainerror "github.com/iuran-warga/backend/internal/domain/error"
	"github.com/iuran-warga/backend/internal/domain/entity"
	"github.com/iuran-warga/backend/internal/integration/entrypoint/dto"
	"github.com/iuran-warga/backend/internal/integration/entrypoint/middleware"
)

// BillingController handles billing cycle ("tagihan") endpoints.
type BillingController struct {
	createCycleUseCase *billing.CreateCycleUseCase
	listCyclesUseCase  *billing.ListCyclesUseCase
	getCycleUseCase    *billing.GetCycleUseCase
}

// NewBillingController creates a new billing controller instance.
func NewBillingController(
	createCycleUseCase *billing.CreateCycleUseCase,
	listCyclesUseCase *billing.ListCyclesUseCase,
	getCycleUseCase *billing.GetCycleUseCase,
) *BillingController {
	return &BillingController{
		createCycleUseCase: createCycleUseCase,
		listCyclesUseCase:  listCyclesUseCase,
		getCycleUseCase:    getCycleUseCase,
	}
}

// Create handles POST /tagihan requests.
func (c *BillingController) Create(ctx *gin.Context) {
	var req dto.CreateCycleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingBillFields),
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "date must use the YYYY-MM-DD format",
			Code:  string(domainerror.ErrCodeMissingBillFields),
		})
		return
	}

	items := make([]billing.CycleItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = billing.CycleItemInput{Name: item.Name, Price: item.Price}
	}

	output, err := c.createCycleUseCase.Execute(ctx.Request.Context(), billing.CreateCycleInput{
		Name:        req.Name,
		Description: req.Description,
		Date:        date,
		Items:       items,
	})
	if err != nil {
		c.handleBillingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBillingCycleResponse(output.Cycle, false))
}

// List handles GET /tagihan requests. Admin and chair see every cycle;
// residents get their collapsed paid/unpaid view.
func (c *BillingController) List(ctx *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(ctx)
	role, _ := middleware.GetRoleFromContext(ctx)

	output, err := c.listCyclesUseCase.Execute(ctx.Request.Context(), billing.ListCyclesInput{
		UserID: userID,
		Role:   role,
	})
	if err != nil {
		c.handleBillingError(ctx, err)
		return
	}

	cycles := make([]dto.BillingCycleResponse, len(output.Cycles))
	for i, view := range output.Cycles {
		cycles[i] = dto.ToBillingCycleResponse(view.Cycle, view.IsPaid)
	}
	ctx.JSON(http.StatusOK, dto.CycleListResponse{Cycles: cycles})
}

// Get handles GET /tagihan/:id requests.
func (c *BillingController) Get(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid id",
			Code:  string(domainerror.ErrCodeMissingBillFields),
		})
		return
	}

	cycle, err := c.getCycleUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		c.handleBillingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBillingCycleResponse(cycle, false))
}

// handleBillingError handles billing errors and returns appropriate HTTP responses.
func (c *BillingController) handleBillingError(ctx *gin.Context, err error) {
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

// statusCodeForBillingError maps billing error codes to HTTP status codes.
func statusCodeForBillingError(code domainerror.BillingErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmptyBillingItems,
		domainerror.ErrCodeInvalidClaimStatus,
		domainerror.ErrCodeMissingProofImage,
		domainerror.ErrCodeMissingBillFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeBillingCycleNotFound,
		domainerror.ErrCodeClaimNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// isPrivileged reports whether the role may see data beyond its own account.
func isPrivileged(role entity.Role) bool {
	return role == entity.RoleAdmin || role == entity.RoleRT
}
