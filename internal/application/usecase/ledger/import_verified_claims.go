package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/iuran-warga/backend/internal/application/adapter"
	"github.com/iuran-warga/backend/internal/domain/entity"
)

// importKategori is the income category verified dues claims land under.
const importKategori = "Iuran Warga"

// ImportVerifiedClaimsOutput reports what the import did.
type ImportVerifiedClaimsOutput struct {
	Imported int
	Skipped  int
}

// ImportVerifiedClaimsUseCase converts verified payment claims into ledger
// income entries. The import is idempotent: a claim whose (kategori,
// resident, amount, periode) tuple already has a ledger row is skipped, so
// re-running never double-counts income.
type ImportVerifiedClaimsUseCase struct {
	claimRepo  adapter.PaymentClaimRepository
	cycleRepo  adapter.BillingCycleRepository
	userRepo   adapter.UserRepository
	ledgerRepo adapter.LedgerRepository
}

// NewImportVerifiedClaimsUseCase creates a new ImportVerifiedClaimsUseCase
// instance.
func NewImportVerifiedClaimsUseCase(
	claimRepo adapter.PaymentClaimRepository,
	cycleRepo adapter.BillingCycleRepository,
	userRepo adapter.UserRepository,
	ledgerRepo adapter.LedgerRepository,
) *ImportVerifiedClaimsUseCase {
	return &ImportVerifiedClaimsUseCase{
		claimRepo:  claimRepo,
		cycleRepo:  cycleRepo,
		userRepo:   userRepo,
		ledgerRepo: ledgerRepo,
	}
}

// Execute runs the import. importedBy is recorded as the creator of the
// generated entries.
func (uc *ImportVerifiedClaimsUseCase) Execute(ctx context.Context, importedBy uuid.UUID) (*ImportVerifiedClaimsOutput, error) {
	claims, err := uc.claimRepo.FindByFilter(ctx, adapter.ClaimFilter{
		Statuses: []entity.ClaimStatus{entity.ClaimStatusVerified},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list verified claims: %w", err)
	}

	out := &ImportVerifiedClaimsOutput{}
	for _, claim := range claims {
		cycle := claim.Snapshot
		if cycle == nil {
			live, err := uc.cycleRepo.FindByID(ctx, claim.BillingCycleID)
			if err != nil {
				slog.Warn("skipping claim without a resolvable cycle", "claim_id", claim.ID)
				out.Skipped++
				continue
			}
			cycle = live
		}

		pihakKetiga := claim.UserID.String()
		if user, err := uc.userRepo.FindByID(ctx, claim.UserID); err == nil {
			pihakKetiga = user.Name
		}

		tanggal := claim.CreatedAt
		if claim.PaidAt != nil {
			tanggal = *claim.PaidAt
		}
		periode := entity.PeriodeOf(cycle.Date)

		exists, err := uc.ledgerRepo.ExistsSimilar(ctx, importKategori, pihakKetiga, cycle.TotalPrice, periode)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing entry: %w", err)
		}
		if exists {
			out.Skipped++
			continue
		}

		entry := entity.NewLedgerEntry(
			tanggal,
			entity.KindPemasukan,
			importKategori,
			pihakKetiga,
			cycle.TotalPrice,
			fmt.Sprintf("Pembayaran iuran %s", cycle.DisplayName()),
			periode,
			importedBy,
		)
		if err := uc.ledgerRepo.Create(ctx, entry); err != nil {
			return nil, fmt.Errorf("failed to create ledger entry: %w", err)
		}
		out.Imported++
	}

	slog.Info("verified claim import finished", "imported", out.Imported, "skipped", out.Skipped)
	return out, nil
}
