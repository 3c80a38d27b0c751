package controller

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/iuran-warga/backend/internal/application/usecase/ledger"
	"github.com/iuran-warga/backend/internal/domain/entity"
	domainerror "github.com/iuran-warga/backend/internal/domain/error"
	"github.com/iuran-warga/backend/internal/integration/entrypoint/dto"
	"github.com/iuran-warga/backend/internal/integration/entrypoint/middleware"
)

// LedgerController handles financial report ("laporan keuangan") endpoints.
type LedgerController struct {
	recordUseCase          *ledger.RecordEntryUseCase
	updateUseCase          *ledger.UpdateEntryUseCase
	deleteUseCase          *ledger.DeleteEntryUseCase
	getUseCase             *ledger.GetEntryUseCase
	listUseCase            *ledger.ListEntriesUseCase
	summarizeUseCase       *ledger.SummarizeUseCase
	listPeriodsUseCase     *ledger.ListPeriodsUseCase
	publishUseCase         *ledger.PublishPeriodUseCase
	residentSummaryUseCase *ledger.ResidentSummaryUseCase
	importClaimsUseCase    *ledger.ImportVerifiedClaimsUseCase
	exportUseCase          *ledger.ExportReportUseCase
}

// NewLedgerController creates a new ledger controller instance.
func NewLedgerController(
	recordUseCase *ledger.RecordEntryUseCase,
	updateUseCase *ledger.UpdateEntryUseCase,
	deleteUseCase *ledger.DeleteEntryUseCase,
	getUseCase *ledger.GetEntryUseCase,
	listUseCase *ledger.ListEntriesUseCase,
	summarizeUseCase *ledger.SummarizeUseCase,
	listPeriodsUseCase *ledger.ListPeriodsUseCase,
	publishUseCase *ledger.PublishPeriodUseCase,
	residentSummaryUseCase *ledger.ResidentSummaryUseCase,
	importClaimsUseCase *ledger.ImportVerifiedClaimsUseCase,
	exportUseCase *ledger.ExportReportUseCase,
) *LedgerController {
	return &LedgerController{
		recordUseCase:          recordUseCase,
		updateUseCase:          updateUseCase,
		deleteUseCase:          deleteUseCase,
		getUseCase:             getUseCase,
		listUseCase:            listUseCase,
		summarizeUseCase:       summarizeUseCase,
		listPeriodsUseCase:     listPeriodsUseCase,
		publishUseCase:         publishUseCase,
		residentSummaryUseCase: residentSummaryUseCase,
		importClaimsUseCase:    importClaimsUseCase,
		exportUseCase:          exportUseCase,
	}
}

// Record handles POST /laporan requests.
func (c *LedgerController) Record(ctx *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(ctx)

	var req dto.RecordEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingLedgerFields),
		})
		return
	}

	tanggal, err := time.Parse("2006-01-02", req.Tanggal)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "tanggal must use the YYYY-MM-DD format",
			Code:  string(domainerror.ErrCodeMissingLedgerFields),
		})
		return
	}

	entry, err := c.recordUseCase.Execute(ctx.Request.Context(), ledger.RecordEntryInput{
		Tanggal:        tanggal,
		JenisTransaksi: entity.TransactionKind(req.JenisTransaksi),
		Kategori:       req.Kategori,
		PihakKetiga:    req.PihakKetiga,
		Jumlah:         req.Jumlah,
		Keterangan:     req.Keterangan,
		Periode:        req.Periode,
		BuktiTransaksi: req.BuktiTransaksi,
		CreatedBy:      userID,
	})
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToLedgerEntryResponse(ctx, entry))
}

// Update handles PATCH /laporan/:id requests.
func (c *LedgerController) Update(ctx *gin.Context) {
	id, ok := c.parseID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingLedgerFields),
		})
		return
	}

	tanggal, err := time.Parse("2006-01-02", req.Tanggal)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "tanggal must use the YYYY-MM-DD format",
			Code:  string(domainerror.ErrCodeMissingLedgerFields),
		})
		return
	}

	entry, err := c.updateUseCase.Execute(ctx.Request.Context(), ledger.UpdateEntryInput{
		EntryID:           id,
		Tanggal:           tanggal,
		JenisTransaksi:    entity.TransactionKind(req.JenisTransaksi),
		Kategori:          req.Kategori,
		PihakKetiga:       req.PihakKetiga,
		Jumlah:            req.Jumlah,
		Keterangan:        req.Keterangan,
		Periode:           req.Periode,
		NewBuktiTransaksi: req.BuktiTransaksi,
	})
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLedgerEntryResponse(ctx, entry))
}

// Delete handles DELETE /laporan/:id requests.
func (c *LedgerController) Delete(ctx *gin.Context) {
	id, ok := c.parseID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "laporan deleted"})
}

// Get handles GET /laporan/:id requests.
func (c *LedgerController) Get(ctx *gin.Context) {
	id, ok := c.parseID(ctx)
	if !ok {
		return
	}

	entry, err := c.getUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLedgerEntryResponse(ctx, entry))
}

// List handles GET /laporan requests, filtered by ?periode= and ?jenis=.
func (c *LedgerController) List(ctx *gin.Context) {
	var jenis *entity.TransactionKind
	if raw := ctx.Query("jenis"); raw != "" {
		kind := entity.TransactionKind(raw)
		jenis = &kind
	}

	entries, err := c.listUseCase.Execute(ctx.Request.Context(), ledger.ListEntriesInput{
		Periode: ctx.Query("periode"),
		Jenis:   jenis,
	})
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"entries": dto.ToLedgerEntryResponses(ctx, entries)})
}

// Summary handles GET /laporan/summary requests. Without ?periode= every
// period is summarized.
func (c *LedgerController) Summary(ctx *gin.Context) {
	output, err := c.summarizeUseCase.Execute(ctx.Request.Context(), ledger.SummarizeInput{
		Periode: ctx.Query("periode"),
	})
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	summaries := make([]dto.PeriodSummaryResponse, len(output.Summaries))
	for i, summary := range output.Summaries {
		summaries[i] = dto.ToPeriodSummaryResponse(summary)
	}
	ctx.JSON(http.StatusOK, gin.H{"summaries": summaries})
}

// Periods handles GET /laporan/periods requests: distinct reporting periods
// with their publication flags.
func (c *LedgerController) Periods(ctx *gin.Context) {
	periods, err := c.listPeriodsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"periods": dto.ToPeriodInfoResponses(periods)})
}

// Publish handles POST /laporan/publish requests.
func (c *LedgerController) Publish(ctx *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(ctx)

	var req dto.PublishPeriodRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidPeriode),
		})
		return
	}

	output, err := c.publishUseCase.Execute(ctx.Request.Context(), ledger.PublishPeriodInput{
		Periode:     req.Periode,
		PublishedBy: userID,
	})
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPublishedPeriodResponse(output.Record))
}

// Published handles GET /laporan/published requests: the periods residents
// may view.
func (c *LedgerController) Published(ctx *gin.Context) {
	records, err := c.residentSummaryUseCase.ListPublishedPeriods(ctx.Request.Context())
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	periods := make([]dto.PublishedPeriodResponse, len(records))
	for i, record := range records {
		periods[i] = dto.ToPublishedPeriodResponse(record)
	}
	ctx.JSON(http.StatusOK, gin.H{"periods": periods})
}

// ResidentSummary handles GET /laporan/resident requests: the published
// report for ?periode=, gated on publication.
func (c *LedgerController) ResidentSummary(ctx *gin.Context) {
	output, err := c.residentSummaryUseCase.Execute(ctx.Request.Context(), ledger.ResidentSummaryInput{
		Periode: ctx.Query("periode"),
	})
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ResidentSummaryResponse{
		Summary: dto.ToPeriodSummaryResponse(output.Summary),
		Entries: dto.ToLedgerEntryResponses(ctx, output.Entries),
	})
}

// ImportPayments handles POST /laporan/import-payments requests: the
// idempotent verified-claim import.
func (c *LedgerController) ImportPayments(ctx *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(ctx)

	output, err := c.importClaimsUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ImportClaimsResponse{
		Imported: output.Imported,
		Skipped:  output.Skipped,
	})
}

// Export handles GET /laporan/export requests and streams the XLSX workbook.
func (c *LedgerController) Export(ctx *gin.Context) {
	output, err := c.exportUseCase.Execute(ctx.Request.Context(), ledger.ExportReportInput{
		Periode: ctx.Query("periode"),
	})
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.FileName))
	ctx.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		output.Content,
	)
}

func (c *LedgerController) parseID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid id",
			Code:  string(domainerror.ErrCodeMissingLedgerFields),
		})
		return uuid.Nil, false
	}
	return id, true
}

// handleLedgerError handles ledger errors and returns appropriate HTTP responses.
func (c *LedgerController) handleLedgerError(ctx *gin.Context, err error) {
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		ctx.JSON(statusCodeForLedgerError(ledgerErr.Code), dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForLedgerError maps ledger error codes to HTTP status codes.
func statusCodeForLedgerError(code domainerror.LedgerErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidTransactionKind,
		domainerror.ErrCodeInvalidAmount,
		domainerror.ErrCodeInvalidPeriode,
		domainerror.ErrCodeMissingLedgerFields:
		return http.StatusBadRequest
	case domainerror.ErrCodePeriodeAlreadyPublished:
		return http.StatusConflict
	case domainerror.ErrCodePeriodeNotPublished:
		return http.StatusForbidden
	case domainerror.ErrCodeLedgerEntryNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
