package directory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/iuran-warga/backend/internal/domain/entity"
	domainerror "github.com/iuran-warga/backend/internal/domain/error"
)

func verifiedClaimFor(userID uuid.UUID, month time.Month) *entity.PaymentClaim {
	cycle := entity.NewBillingCycle("", "", time.Date(2025, month, 1, 0, 0, 0, 0, time.UTC),
		[]entity.BillingItem{{Name: "Iuran", Price: decimal.NewFromInt(75000)}})
	claim := entity.NewPaymentClaim(userID, cycle, entity.SubmissionAttempt{Date: time.Now().UTC()})
	claim.ApplyReview(entity.ClaimStatusVerified, entity.AdminResponse{})
	return claim
}

func TestDerivePaymentMatrix(t *testing.T) {
	userID := uuid.New()
	entry := entity.NewDirectoryEntry(userID, "Budi")

	t.Run("verified claims mark their billing month", func(t *testing.T) {
		matrix := DerivePaymentMatrix(entry, []*entity.PaymentClaim{verifiedClaimFor(userID, time.July)})
		if !matrix["July"] {
			t.Error("expected July to be marked paid")
		}
		if matrix["August"] {
			t.Error("August must stay unpaid")
		}
	})

	t.Run("non-verified claims are ignored", func(t *testing.T) {
		claim := verifiedClaimFor(userID, time.March)
		claim.Status = entity.ClaimStatusProcessing
		matrix := DerivePaymentMatrix(entry, []*entity.PaymentClaim{claim})
		if matrix["March"] {
			t.Error("processing claims must not mark a month paid")
		}
	})

	t.Run("other residents' claims are ignored", func(t *testing.T) {
		matrix := DerivePaymentMatrix(entry, []*entity.PaymentClaim{verifiedClaimFor(uuid.New(), time.May)})
		if matrix["May"] {
			t.Error("another resident's claim must not mark this entry")
		}
	})

	t.Run("derivation never unsets a stored paid month", func(t *testing.T) {
		manual := entity.NewDirectoryEntry(userID, "Budi")
		manual.PaymentStatus.Set("February", true)
		matrix := DerivePaymentMatrix(manual, nil)
		if !matrix["February"] {
			t.Error("manually set months must survive derivation")
		}
	})

	t.Run("unknown keys from corrupted rows are dropped", func(t *testing.T) {
		dirty := entity.NewDirectoryEntry(userID, "Budi")
		dirty.PaymentStatus["Bogus"] = true
		matrix := DerivePaymentMatrix(dirty, nil)
		if _, ok := matrix["Bogus"]; ok {
			t.Error("unknown month keys must be dropped")
		}
		if len(matrix) != 12 {
			t.Errorf("expected exactly 12 months, got %d", len(matrix))
		}
	})
}

func TestSyncDirectoryUseCase_Execute(t *testing.T) {
	directoryRepo := newFakeDirectoryRepo()
	userRepo := newFakeUserRepo()

	resident := entity.NewUser("3171000000000001", "Budi", "hash")
	userRepo.users[resident.ID] = resident

	admin := entity.NewUser("3171000000000002", "Admin", "hash")
	admin.Role = entity.RoleAdmin
	userRepo.users[admin.ID] = admin

	uc := NewSyncDirectoryUseCase(directoryRepo, userRepo)

	out, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Created != 1 {
		t.Errorf("expected 1 created entry, got %d", out.Created)
	}
	if len(directoryRepo.entries) != 1 {
		t.Fatalf("admin accounts must not get directory entries, got %d entries", len(directoryRepo.entries))
	}

	var entry *entity.DirectoryEntry
	for _, e := range directoryRepo.entries {
		entry = e
	}
	if entry.Alamat != "-" {
		t.Errorf("expected placeholder alamat, got %q", entry.Alamat)
	}
	for month, paid := range entry.PaymentStatus {
		if paid {
			t.Errorf("expected all-unpaid matrix, %s is paid", month)
		}
	}

	t.Run("re-sync preserves the matrix and refreshes nama", func(t *testing.T) {
		entry.PaymentStatus.Set("July", true)
		resident.Name = "Budi Santoso"

		out, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Created != 0 || out.Updated != 1 {
			t.Errorf("expected 0 created and 1 updated, got %d/%d", out.Created, out.Updated)
		}
		if entry.Nama != "Budi Santoso" {
			t.Errorf("expected refreshed nama, got %q", entry.Nama)
		}
		if !entry.PaymentStatus["July"] {
			t.Error("re-sync must not reset the matrix")
		}
	})
}

func TestSetMonthStatusUseCase_Execute(t *testing.T) {
	directoryRepo := newFakeDirectoryRepo()
	entry := entity.NewDirectoryEntry(uuid.New(), "Budi")
	directoryRepo.entries[entry.ID] = entry

	uc := NewSetMonthStatusUseCase(directoryRepo)

	t.Run("sets and unsets a month", func(t *testing.T) {
		got, err := uc.Execute(context.Background(), SetMonthStatusInput{EntryID: entry.ID, Month: "June", Paid: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.PaymentStatus["June"] {
			t.Error("expected June paid")
		}

		got, err = uc.Execute(context.Background(), SetMonthStatusInput{EntryID: entry.ID, Month: "June", Paid: false})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.PaymentStatus["June"] {
			t.Error("expected June unpaid after manual unset")
		}
	})

	t.Run("rejects unknown month names", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), SetMonthStatusInput{EntryID: entry.ID, Month: "Juli", Paid: true})
		if !errors.Is(err, domainerror.ErrInvalidMonthName) {
			t.Errorf("expected ErrInvalidMonthName, got %v", err)
		}
	})
}

func TestPaymentStatsUseCase_Execute(t *testing.T) {
	directoryRepo := newFakeDirectoryRepo()
	claimRepo := newFakeClaimRepo()

	budi := entity.NewDirectoryEntry(uuid.New(), "Budi")
	sari := entity.NewDirectoryEntry(uuid.New(), "Sari")
	directoryRepo.entries[budi.ID] = budi
	directoryRepo.entries[sari.ID] = sari

	// Budi has two verified claims for July; he must count once.
	c1 := verifiedClaimFor(budi.UserID, time.July)
	c2 := verifiedClaimFor(budi.UserID, time.July)
	claimRepo.claims[c1.ID] = c1
	claimRepo.claims[c2.ID] = c2

	uc := NewPaymentStatsUseCase(directoryRepo, claimRepo)
	stats, err := uc.Execute(context.Background(), PaymentStatsInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.TotalWarga != 2 {
		t.Errorf("expected 2 residents, got %d", stats.TotalWarga)
	}
	july := stats.MonthlyStats["July"]
	if july.Paid != 1 || july.Unpaid != 1 {
		t.Errorf("expected July 1 paid / 1 unpaid, got %d/%d", july.Paid, july.Unpaid)
	}
	august := stats.MonthlyStats["August"]
	if august.Paid != 0 || august.Unpaid != 2 {
		t.Errorf("expected August 0 paid / 2 unpaid, got %d/%d", august.Paid, august.Unpaid)
	}
	if len(stats.MonthlyStats) != 12 {
		t.Errorf("expected stats for all 12 months, got %d", len(stats.MonthlyStats))
	}

	t.Run("month filter narrows the stats to one month", func(t *testing.T) {
		march := verifiedClaimFor(sari.UserID, time.March)
		claimRepo.claims[march.ID] = march

		stats, err := uc.Execute(context.Background(), PaymentStatsInput{Month: "March"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(stats.MonthlyStats) != 1 {
			t.Fatalf("expected stats for March only, got %d months", len(stats.MonthlyStats))
		}
		got := stats.MonthlyStats["March"]
		if got.Paid != 1 || got.Unpaid != 1 {
			t.Errorf("expected March 1 paid / 1 unpaid, got %d/%d", got.Paid, got.Unpaid)
		}
		if stats.TotalWarga != 2 {
			t.Errorf("expected 2 residents, got %d", stats.TotalWarga)
		}
	})

	t.Run("rejects unknown month names", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), PaymentStatsInput{Month: "Maret"})
		if !errors.Is(err, domainerror.ErrInvalidMonthName) {
			t.Errorf("expected ErrInvalidMonthName, got %v", err)
		}
	})
}

func TestListDirectoryUseCase_Execute(t *testing.T) {
	directoryRepo := newFakeDirectoryRepo()
	claimRepo := newFakeClaimRepo()

	budi := entity.NewDirectoryEntry(uuid.New(), "Budi")
	sari := entity.NewDirectoryEntry(uuid.New(), "Sari")
	directoryRepo.entries[budi.ID] = budi
	directoryRepo.entries[sari.ID] = sari

	claim := verifiedClaimFor(budi.UserID, time.July)
	claimRepo.claims[claim.ID] = claim

	uc := NewListDirectoryUseCase(directoryRepo, claimRepo)

	t.Run("overlays verified claims on the listing", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), ListDirectoryInput{Page: 1, Limit: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Total != 2 {
			t.Fatalf("expected total 2, got %d", out.Total)
		}
		for _, entry := range out.Entries {
			if entry.UserID == budi.UserID && !entry.PaymentStatus["July"] {
				t.Error("expected Budi's July to be derived paid")
			}
			if entry.UserID == sari.UserID && entry.PaymentStatus["July"] {
				t.Error("Sari must stay unpaid")
			}
		}
	})

	t.Run("search narrows by nama", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), ListDirectoryInput{Search: "sar", Page: 1, Limit: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Entries) != 1 || out.Entries[0].Nama != "Sari" {
			t.Fatalf("expected only Sari, got %d entries", len(out.Entries))
		}
	})
}
