package ledger

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/iuran-warga/backend/internal/application/adapter"
	"github.com/iuran-warga/backend/internal/domain/entity"
	domainerror "github.com/iuran-warga/backend/internal/domain/error"
)

// ExportReportInput represents the input for the XLSX export. An empty
// Periode exports the full ledger.
type ExportReportInput struct {
	Periode string
}

// ExportReportOutput carries the generated workbook.
type ExportReportOutput struct {
	FileName string
	Content  []byte
}

// ExportReportUseCase renders the ledger as an XLSX workbook: one row per
// entry plus a totals block, with amounts formatted using Indonesian
// digit grouping.
type ExportReportUseCase struct {
	ledgerRepo adapter.LedgerRepository
	summarize  *SummarizeUseCase
}

// NewExportReportUseCase creates a new ExportReportUseCase instance.
func NewExportReportUseCase(ledgerRepo adapter.LedgerRepository) *ExportReportUseCase {
	return &ExportReportUseCase{
		ledgerRepo: ledgerRepo,
		summarize:  NewSummarizeUseCase(ledgerRepo),
	}
}

// Execute builds the workbook.
func (uc *ExportReportUseCase) Execute(ctx context.Context, input ExportReportInput) (*ExportReportOutput, error) {
	if input.Periode != "" && !entity.IsValidPeriode(input.Periode) {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidPeriode,
			"periode must match YYYY-MM",
			domainerror.ErrInvalidPeriode,
		)
	}

	entries, err := uc.ledgerRepo.FindByFilter(ctx, adapter.LedgerFilter{Periode: input.Periode})
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}

	summaryOut, err := uc.summarize.Execute(ctx, SummarizeInput{Periode: input.Periode})
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Laporan Keuangan"
	f.SetSheetName(f.GetSheetName(0), sheet)

	printer := message.NewPrinter(language.Indonesian)
	headers := []string{"Tanggal", "Jenis", "Kategori", "Pihak Ketiga", "Jumlah (Rp)", "Keterangan", "Periode"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for row, entry := range entries {
		values := []interface{}{
			entry.Tanggal.Format("2006-01-02"),
			string(entry.JenisTransaksi),
			entry.Kategori,
			entry.PihakKetiga,
			printer.Sprintf("%d", entry.Jumlah.IntPart()),
			entry.Keterangan,
			entry.Periode,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write row: %w", err)
			}
		}
	}

	totalsRow := len(entries) + 3
	for i, summary := range summaryOut.Summaries {
		base := totalsRow + i*4
		lines := [][2]string{
			{fmt.Sprintf("Periode %s", summary.Periode), ""},
			{"Total Pemasukan", printer.Sprintf("Rp %d", summary.Pemasukan.IntPart())},
			{"Total Pengeluaran", printer.Sprintf("Rp %d", summary.Pengeluaran.IntPart())},
			{"Saldo", printer.Sprintf("Rp %d", summary.Saldo.IntPart())},
		}
		for j, line := range lines {
			labelCell, _ := excelize.CoordinatesToCellName(1, base+j)
			valueCell, _ := excelize.CoordinatesToCellName(2, base+j)
			if err := f.SetCellValue(sheet, labelCell, line[0]); err != nil {
				return nil, fmt.Errorf("failed to write totals: %w", err)
			}
			if line[1] != "" {
				if err := f.SetCellValue(sheet, valueCell, line[1]); err != nil {
					return nil, fmt.Errorf("failed to write totals: %w", err)
				}
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}

	name := "laporan-keuangan.xlsx"
	if input.Periode != "" {
		name = fmt.Sprintf("laporan-keuangan-%s.xlsx", input.Periode)
	}
	return &ExportReportOutput{FileName: name, Content: buf.Bytes()}, nil
}
