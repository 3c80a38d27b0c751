package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/iuran-warga/backend/internal/application/usecase/directory"
	domainerror "github.com/iuran-warga/backend/internal/domain/error"
	"github.com/iuran-warga/backend/internal/integration/entrypoint/dto"
)

// DirectoryController handles resident directory ("data warga") endpoints.
type DirectoryController struct {
	listUseCase           *directory.ListDirectoryUseCase
	getUseCase            *directory.GetEntryUseCase
	syncUseCase           *directory.SyncDirectoryUseCase
	setMonthStatusUseCase *directory.SetMonthStatusUseCase
	updateAddressUseCase  *directory.UpdateAddressUseCase
	statsUseCase          *directory.PaymentStatsUseCase
}

// NewDirectoryController creates a new directory controller instance.
func NewDirectoryController(
	listUseCase *directory.ListDirectoryUseCase,
	getUseCase *directory.GetEntryUseCase,
	syncUseCase *directory.SyncDirectoryUseCase,
	setMonthStatusUseCase *directory.SetMonthStatusUseCase,
	updateAddressUseCase *directory.UpdateAddressUseCase,
	statsUseCase *directory.PaymentStatsUseCase,
) *DirectoryController {
	return &DirectoryController{
		listUseCase:           listUseCase,
		getUseCase:            getUseCase,
		syncUseCase:           syncUseCase,
		setMonthStatusUseCase: setMonthStatusUseCase,
		updateAddressUseCase:  updateAddressUseCase,
		statsUseCase:          statsUseCase,
	}
}

// List handles GET /warga requests: one page of the directory with derived
// paid-month matrices.
func (c *DirectoryController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))

	output, err := c.listUseCase.Execute(ctx.Request.Context(), directory.ListDirectoryInput{
		Search: ctx.Query("search"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		c.handleDirectoryError(ctx, err)
		return
	}

	entries := make([]dto.DirectoryEntryResponse, len(output.Entries))
	for i, entry := range output.Entries {
		entries[i] = dto.ToDirectoryEntryResponse(entry)
	}
	ctx.JSON(http.StatusOK, dto.DirectoryListResponse{
		Entries:    entries,
		Total:      output.Total,
		Page:       output.Page,
		Limit:      output.Limit,
		TotalPages: output.TotalPages,
	})
}

// Get handles GET /warga/:id requests.
func (c *DirectoryController) Get(ctx *gin.Context) {
	id, ok := c.parseEntryID(ctx)
	if !ok {
		return
	}

	entry, err := c.getUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		c.handleDirectoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDirectoryEntryResponse(entry))
}

// Sync handles POST /warga/sync requests: reconcile the directory against
// registered resident accounts.
func (c *DirectoryController) Sync(ctx *gin.Context) {
	output, err := c.syncUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleDirectoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SyncDirectoryResponse{
		Created: output.Created,
		Updated: output.Updated,
	})
}

// SetMonthStatus handles PATCH /warga/:id/status requests: a manual
// paid/unpaid override for one month.
func (c *DirectoryController) SetMonthStatus(ctx *gin.Context) {
	id, ok := c.parseEntryID(ctx)
	if !ok {
		return
	}

	var req dto.SetMonthStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidDirectoryRequest),
		})
		return
	}

	entry, err := c.setMonthStatusUseCase.Execute(ctx.Request.Context(), directory.SetMonthStatusInput{
		EntryID: id,
		Month:   req.Month,
		Paid:    *req.Paid,
	})
	if err != nil {
		c.handleDirectoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDirectoryEntryResponse(entry))
}

// UpdateAddress handles PATCH /warga/:id/alamat requests.
func (c *DirectoryController) UpdateAddress(ctx *gin.Context) {
	id, ok := c.parseEntryID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateAddressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidDirectoryRequest),
		})
		return
	}

	entry, err := c.updateAddressUseCase.Execute(ctx.Request.Context(), directory.UpdateAddressInput{
		EntryID: id,
		Alamat:  req.Alamat,
	})
	if err != nil {
		c.handleDirectoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDirectoryEntryResponse(entry))
}

// Stats handles GET /warga/stats requests: per-month paid/unpaid counts,
// optionally narrowed to one month via ?month=.
func (c *DirectoryController) Stats(ctx *gin.Context) {
	stats, err := c.statsUseCase.Execute(ctx.Request.Context(), directory.PaymentStatsInput{
		Month: ctx.Query("month"),
	})
	if err != nil {
		c.handleDirectoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDirectoryStatsResponse(stats))
}

// parseEntryID parses the :id path parameter, answering 400 with the
// generic invalid-request code when it is not a UUID.
func (c *DirectoryController) parseEntryID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid id",
			Code:  string(domainerror.ErrCodeInvalidDirectoryRequest),
		})
		return uuid.Nil, false
	}
	return id, true
}

// handleDirectoryError handles directory errors and returns appropriate HTTP responses.
func (c *DirectoryController) handleDirectoryError(ctx *gin.Context, err error) {
	var dirErr *domainerror.DirectoryError
	if errors.As(err, &dirErr) {
		status := http.StatusBadRequest
		if dirErr.Code == domainerror.ErrCodeDirectoryEntryNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: dirErr.Message,
			Code:  string(dirErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
