package ledger

import (
	"context"
	"fmt"

	"github.com/iuran-warga/backend/internal/application/adapter"
)

// PeriodInfo is one reporting period with its publication flag.
type PeriodInfo struct {
	Periode     string
	IsPublished bool
}

// ListPeriodsUseCase lists the distinct reporting periods, flagging the
// ones that have been published to residents.
type ListPeriodsUseCase struct {
	ledgerRepo      adapter.LedgerRepository
	publicationRepo adapter.PublicationRepository
}

// NewListPeriodsUseCase creates a new ListPeriodsUseCase instance.
func NewListPeriodsUseCase(
	ledgerRepo adapter.LedgerRepository,
	publicationRepo adapter.PublicationRepository,
) *ListPeriodsUseCase {
	return &ListPeriodsUseCase{
		ledgerRepo:      ledgerRepo,
		publicationRepo: publicationRepo,
	}
}

// Execute lists the periods, newest first.
func (uc *ListPeriodsUseCase) Execute(ctx context.Context) ([]PeriodInfo, error) {
	periods, err := uc.ledgerRepo.DistinctPeriods(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list periods: %w", err)
	}

	published, err := uc.publicationRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list publications: %w", err)
	}
	isPublished := make(map[string]bool, len(published))
	for _, record := range published {
		isPublished[record.Periode] = true
	}

	out := make([]PeriodInfo, 0, len(periods))
	for _, periode := range periods {
		out = append(out, PeriodInfo{Periode: periode, IsPublished: isPublished[periode]})
	}
	return out, nil
}
