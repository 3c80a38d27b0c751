package ledger

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/iuran-warga/backend/internal/application/adapter"
	"github.com/iuran-warga/backend/internal/domain/entity"
	domainerror "github.com/iuran-warga/backend/internal/domain/error"
)

// SummarizeInput represents the input for the period summary. An empty
// Periode summarizes every period.
type SummarizeInput struct {
	Periode string
}

// SummarizeOutput represents the output of the summary.
type SummarizeOutput struct {
	Summaries []entity.PeriodSummary
}

// SummarizeUseCase computes pemasukan/pengeluaran/saldo per reporting
// period from the aggregation rows.
type SummarizeUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewSummarizeUseCase creates a new SummarizeUseCase instance.
func NewSummarizeUseCase(ledgerRepo adapter.LedgerRepository) *SummarizeUseCase {
	return &SummarizeUseCase{ledgerRepo: ledgerRepo}
}

// Execute computes the summaries, newest period first.
func (uc *SummarizeUseCase) Execute(ctx context.Context, input SummarizeInput) (*SummarizeOutput, error) {
	if input.Periode != "" && !entity.IsValidPeriode(input.Periode) {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidPeriode,
			"periode must match YYYY-MM",
			domainerror.ErrInvalidPeriode,
		)
	}

	totals, err := uc.ledgerRepo.SumByPeriode(ctx, input.Periode)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate ledger: %w", err)
	}

	byPeriode := make(map[string]*entity.PeriodSummary)
	for _, row := range totals {
		summary, ok := byPeriode[row.Periode]
		if !ok {
			summary = &entity.PeriodSummary{
				Periode:     row.Periode,
				Pemasukan:   decimal.Zero,
				Pengeluaran: decimal.Zero,
			}
			byPeriode[row.Periode] = summary
		}
		switch entity.TransactionKind(row.JenisTransaksi) {
		case entity.KindPemasukan:
			summary.Pemasukan = summary.Pemasukan.Add(row.Total)
		case entity.KindPengeluaran:
			summary.Pengeluaran = summary.Pengeluaran.Add(row.Total)
		}
	}

	summaries := make([]entity.PeriodSummary, 0, len(byPeriode))
	for _, summary := range byPeriode {
		summary.Saldo = summary.Pemasukan.Sub(summary.Pengeluaran)
		summaries = append(summaries, *summary)
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Periode > summaries[j].Periode })

	// A requested period with no rows still yields a zero summary.
	if input.Periode != "" && len(summaries) == 0 {
		summaries = append(summaries, entity.PeriodSummary{
			Periode:     input.Periode,
			Pemasukan:   decimal.Zero,
			Pengeluaran: decimal.Zero,
			Saldo:       decimal.Zero,
		})
	}

	return &SummarizeOutput{Summaries: summaries}, nil
}
