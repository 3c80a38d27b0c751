package payment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/iuran-warga/backend/internal/domain/entity"
)

func cycleFor(month time.Month) *entity.BillingCycle {
	return entity.NewBillingCycle(
		"",
		"",
		time.Date(2025, month, 1, 0, 0, 0, 0, time.UTC),
		[]entity.BillingItem{{Name: "Iuran", Price: decimal.NewFromInt(75000)}},
	)
}

func TestListVerifiedHistoryUseCase_Execute(t *testing.T) {
	claimRepo := newFakeClaimRepo()
	cycleRepo := newFakeCycleRepo()
	userRepo := newFakeUserRepo()

	user := entity.NewUser("3171234567890001", "Budi", "hash")
	userRepo.users[user.ID] = user

	verified := entity.NewPaymentClaim(user.ID, cycleFor(time.July), entity.SubmissionAttempt{
		Date: time.Now().UTC(), TransferProof: []string{"/public/uploads/a.png"},
	})
	verified.AppendAttempt(entity.SubmissionAttempt{
		Date: time.Now().UTC(), TransferProof: []string{"/public/uploads/b.png"}, Description: "ulang",
	})
	verified.ApplyReview(entity.ClaimStatusVerified, entity.AdminResponse{Note: "ok"})
	claimRepo.claims[verified.ID] = verified

	august := entity.NewPaymentClaim(user.ID, cycleFor(time.August), entity.SubmissionAttempt{
		Date: time.Now().UTC(), TransferProof: []string{"/public/uploads/c.png"},
	})
	august.ApplyReview(entity.ClaimStatusVerified, entity.AdminResponse{Note: "ok"})
	claimRepo.claims[august.ID] = august

	pending := entity.NewPaymentClaim(user.ID, cycleFor(time.September), entity.SubmissionAttempt{
		Date: time.Now().UTC(), TransferProof: []string{"/public/uploads/d.png"},
	})
	claimRepo.claims[pending.ID] = pending

	uc := NewListVerifiedHistoryUseCase(claimRepo, cycleRepo, userRepo)

	t.Run("lists only verified claims", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), ListVerifiedHistoryInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Entries) != 2 {
			t.Fatalf("expected 2 verified entries, got %d", len(out.Entries))
		}
		for _, entry := range out.Entries {
			if entry.Claim.Status != entity.ClaimStatusVerified {
				t.Errorf("unexpected status %s in history", entry.Claim.Status)
			}
			if entry.User == nil || entry.User.Name != "Budi" {
				t.Error("expected the resident to be joined onto the entry")
			}
		}
	})

	t.Run("collapses to the latest attempt and response", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), ListVerifiedHistoryInput{Month: "July"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Entries) != 1 {
			t.Fatalf("expected 1 July entry, got %d", len(out.Entries))
		}
		entry := out.Entries[0]
		if entry.LatestAttempt == nil || entry.LatestAttempt.Description != "ulang" {
			t.Error("expected the latest attempt, not the first")
		}
		if entry.LatestResponse == nil || entry.LatestResponse.Note != "ok" {
			t.Error("expected the latest admin response")
		}
	})

	t.Run("month filter is case-insensitive", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), ListVerifiedHistoryInput{Month: "august"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Entries) != 1 {
			t.Fatalf("expected 1 entry for 'august', got %d", len(out.Entries))
		}
		if out.Entries[0].Month != "August" {
			t.Errorf("expected month name August, got %q", out.Entries[0].Month)
		}
	})

	t.Run("filters by resident", func(t *testing.T) {
		other := uuid.New()
		out, err := uc.Execute(context.Background(), ListVerifiedHistoryInput{UserID: &other})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Entries) != 0 {
			t.Errorf("expected no entries for an unknown resident, got %d", len(out.Entries))
		}
	})
}

func TestListOpenClaimsUseCase_Execute(t *testing.T) {
	claimRepo := newFakeClaimRepo()
	cycleRepo := newFakeCycleRepo()
	userRepo := newFakeUserRepo()

	user := entity.NewUser("3171234567890002", "Sari", "hash")
	userRepo.users[user.ID] = user

	open := entity.NewPaymentClaim(user.ID, cycleFor(time.July), entity.SubmissionAttempt{
		Date: time.Now().UTC(), TransferProof: []string{"/public/uploads/a.png"},
	})
	claimRepo.claims[open.ID] = open

	fix := entity.NewPaymentClaim(user.ID, cycleFor(time.August), entity.SubmissionAttempt{
		Date: time.Now().UTC(), TransferProof: []string{"/public/uploads/b.png"},
	})
	fix.ApplyReview(entity.ClaimStatusNeedToFix, entity.AdminResponse{Note: "buram"})
	claimRepo.claims[fix.ID] = fix

	done := entity.NewPaymentClaim(user.ID, cycleFor(time.June), entity.SubmissionAttempt{
		Date: time.Now().UTC(), TransferProof: []string{"/public/uploads/c.png"},
	})
	done.ApplyReview(entity.ClaimStatusVerified, entity.AdminResponse{})
	claimRepo.claims[done.ID] = done

	uc := NewListOpenClaimsUseCase(claimRepo, cycleRepo, userRepo)
	out, err := uc.Execute(context.Background(), ListOpenClaimsInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Claims) != 2 {
		t.Fatalf("expected processing and need_to_fix claims only, got %d", len(out.Claims))
	}
	for _, c := range out.Claims {
		if c.Claim.Status == entity.ClaimStatusVerified {
			t.Error("verified claims must not appear in the open list")
		}
		if c.Cycle == nil {
			t.Error("expected the snapshot cycle to be resolved")
		}
	}
}
