package directory

import (
	"context"
	"fmt"

	"github.com/iuran-warga/backend/internal/application/adapter"
	"github.com/iuran-warga/backend/internal/domain/entity"
	domainerror "github.com/iuran-warga/backend/internal/domain/error"
)

// PaymentStatsInput narrows the stats computation.
type PaymentStatsInput struct {
	// Month restricts the stats to one month name; empty covers all twelve.
	Month string
}

// PaymentStatsUseCase aggregates per-month paid/unpaid counts across the
// whole directory, using the derived matrices so verified claims are
// counted immediately.
type PaymentStatsUseCase struct {
	directoryRepo adapter.DirectoryRepository
	claimRepo     adapter.PaymentClaimRepository
}

// NewPaymentStatsUseCase creates a new PaymentStatsUseCase instance.
func NewPaymentStatsUseCase(
	directoryRepo adapter.DirectoryRepository,
	claimRepo adapter.PaymentClaimRepository,
) *PaymentStatsUseCase {
	return &PaymentStatsUseCase{
		directoryRepo: directoryRepo,
		claimRepo:     claimRepo,
	}
}

// Execute computes the stats. Each resident counts at most once per month:
// paid when the derived matrix has the month set, unpaid otherwise.
func (uc *PaymentStatsUseCase) Execute(ctx context.Context, input PaymentStatsInput) (*entity.DirectoryStats, error) {
	months := entity.MonthNames()
	if input.Month != "" {
		if !entity.IsValidMonthName(input.Month) {
			return nil, domainerror.NewDirectoryError(
				domainerror.ErrCodeInvalidMonthName,
				fmt.Sprintf("unknown month %q", input.Month),
				domainerror.ErrInvalidMonthName,
			)
		}
		months = []string{input.Month}
	}

	entries, err := uc.directoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory: %w", err)
	}

	claims, err := uc.claimRepo.FindByFilter(ctx, adapter.ClaimFilter{
		Statuses: []entity.ClaimStatus{entity.ClaimStatusVerified},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list verified claims: %w", err)
	}
	byUser := groupClaimsByUser(claims)

	stats := &entity.DirectoryStats{
		TotalWarga:   len(entries),
		MonthlyStats: make(map[string]entity.MonthStats, len(months)),
	}
	for _, month := range months {
		stats.MonthlyStats[month] = entity.MonthStats{}
	}

	for _, entry := range entries {
		matrix := DerivePaymentMatrix(entry, byUser[entry.UserID])
		for _, month := range months {
			s := stats.MonthlyStats[month]
			if matrix[month] {
				s.Paid++
			} else {
				s.Unpaid++
			}
			stats.MonthlyStats[month] = s
		}
	}

	return stats, nil
}
