package ledger

import (
	"context"
	"fmt"

	"github.com/iuran-warga/backend/internal/application/adapter"
	"github.com/iuran-warga/backend/internal/domain/entity"
	domainerror "github.com/iuran-warga/backend/internal/domain/error"
)

// ResidentSummaryInput represents a resident's report request.
type ResidentSummaryInput struct {
	Periode string
}

// ResidentSummaryOutput is the report view residents see: the period
// summary plus the underlying entries.
type ResidentSummaryOutput struct {
	Summary entity.PeriodSummary
	Entries []*entity.LedgerEntry
}

// ResidentSummaryUseCase serves the resident-facing report. Residents only
// ever see periods an admin has published; unpublished periods answer as
// not available regardless of whether entries exist.
type ResidentSummaryUseCase struct {
	ledgerRepo      adapter.LedgerRepository
	publicationRepo adapter.PublicationRepository
	summarize       *SummarizeUseCase
}

// NewResidentSummaryUseCase creates a new ResidentSummaryUseCase instance.
func NewResidentSummaryUseCase(
	ledgerRepo adapter.LedgerRepository,
	publicationRepo adapter.PublicationRepository,
) *ResidentSummaryUseCase {
	return &ResidentSummaryUseCase{
		ledgerRepo:      ledgerRepo,
		publicationRepo: publicationRepo,
		summarize:       NewSummarizeUseCase(ledgerRepo),
	}
}

// Execute serves the published report for one period. An empty periode
// answers with the most recently published period.
func (uc *ResidentSummaryUseCase) Execute(ctx context.Context, input ResidentSummaryInput) (*ResidentSummaryOutput, error) {
	if input.Periode == "" {
		latest, err := uc.latestPublishedPeriode(ctx)
		if err != nil {
			return nil, err
		}
		input.Periode = latest
	} else {
		if !entity.IsValidPeriode(input.Periode) {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeInvalidPeriode,
				"periode must match YYYY-MM",
				domainerror.ErrInvalidPeriode,
			)
		}

		published, err := uc.publicationRepo.Exists(ctx, input.Periode)
		if err != nil {
			return nil, fmt.Errorf("failed to check publication: %w", err)
		}
		if !published {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodePeriodeNotPublished,
				fmt.Sprintf("laporan periode %s belum diterbitkan", input.Periode),
				domainerror.ErrPeriodeNotPublished,
			)
		}
	}

	summaryOut, err := uc.summarize.Execute(ctx, SummarizeInput{Periode: input.Periode})
	if err != nil {
		return nil, err
	}

	entries, err := uc.ledgerRepo.FindByFilter(ctx, adapter.LedgerFilter{Periode: input.Periode})
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}

	return &ResidentSummaryOutput{
		Summary: summaryOut.Summaries[0],
		Entries: entries,
	}, nil
}

// latestPublishedPeriode picks the most recent published period. Periods
// use the YYYY-MM form, so the lexicographic maximum is the newest.
func (uc *ResidentSummaryUseCase) latestPublishedPeriode(ctx context.Context) (string, error) {
	records, err := uc.publicationRepo.FindAll(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list publications: %w", err)
	}
	if len(records) == 0 {
		return "", domainerror.NewLedgerError(
			domainerror.ErrCodePeriodeNotPublished,
			"belum ada laporan yang diterbitkan",
			domainerror.ErrPeriodeNotPublished,
		)
	}

	latest := records[0].Periode
	for _, record := range records[1:] {
		if record.Periode > latest {
			latest = record.Periode
		}
	}
	return latest, nil
}

// ListPublishedPeriods lists the periods residents may request.
func (uc *ResidentSummaryUseCase) ListPublishedPeriods(ctx context.Context) ([]*entity.PublishedPeriod, error) {
	records, err := uc.publicationRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list publications: %w", err)
	}
	return records, nil
}
