package payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/iuran-warga/backend/internal/domain/entity"
	domainerror "github.com/iuran-warga/backend/internal/domain/error"
)

func seedClaim(t *testing.T, repo *fakeClaimRepo) *entity.PaymentClaim {
	t.Helper()
	claim := entity.NewPaymentClaim(uuid.New(), testCycle(), entity.SubmissionAttempt{
		Date:          time.Now().UTC(),
		TransferProof: []string{"/public/uploads/first.png"},
	})
	repo.claims[claim.ID] = claim
	return claim
}

func TestReviewClaimUseCase_Execute(t *testing.T) {
	t.Run("verifies a claim and marks the billing month paid", func(t *testing.T) {
		claimRepo := newFakeClaimRepo()
		claim := seedClaim(t, claimRepo)

		uc := NewReviewClaimUseCase(claimRepo, newFakeCycleRepo(), &fakeImageStore{})
		out, err := uc.Execute(context.Background(), ReviewClaimInput{
			ClaimID: claim.ID,
			Status:  entity.ClaimStatusVerified,
			Note:    "lunas",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Claim.Status != entity.ClaimStatusVerified {
			t.Errorf("expected status verified, got %s", out.Claim.Status)
		}
		if len(out.Claim.AdminResponses) != 1 {
			t.Fatalf("expected 1 admin response, got %d", len(out.Claim.AdminResponses))
		}
		if out.Claim.AdminResponses[0].Note != "lunas" {
			t.Errorf("expected note 'lunas', got %q", out.Claim.AdminResponses[0].Note)
		}

		if len(claimRepo.reviews) != 1 {
			t.Fatalf("expected 1 ApplyReview call, got %d", len(claimRepo.reviews))
		}
		review := claimRepo.reviews[0]
		if review.paidMonth != "July" {
			t.Errorf("expected paid month July from the snapshot date, got %q", review.paidMonth)
		}
		if review.notif == nil || review.notif.IsGlobal {
			t.Fatal("expected a targeted notification")
		}
		if review.notif.UserID == nil || *review.notif.UserID != claim.UserID {
			t.Error("notification must target the claim's resident")
		}
		if review.notif.Type != entity.NotificationTypeReviewed {
			t.Errorf("expected notification type reviewed, got %q", review.notif.Type)
		}
	})

	t.Run("need_to_fix appends the response without a paid month", func(t *testing.T) {
		claimRepo := newFakeClaimRepo()
		claim := seedClaim(t, claimRepo)

		uc := NewReviewClaimUseCase(claimRepo, newFakeCycleRepo(), &fakeImageStore{})
		out, err := uc.Execute(context.Background(), ReviewClaimInput{
			ClaimID: claim.ID,
			Status:  entity.ClaimStatusNeedToFix,
			Note:    "bukti buram",
			Images:  []string{"aGVsbG8="},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Claim.Status != entity.ClaimStatusNeedToFix {
			t.Errorf("expected status need_to_fix, got %s", out.Claim.Status)
		}
		if len(out.Claim.AdminResponses[0].Images) != 1 {
			t.Errorf("expected 1 stored admin image, got %d", len(out.Claim.AdminResponses[0].Images))
		}
		if claimRepo.reviews[0].paidMonth != "" {
			t.Errorf("need_to_fix must not carry a paid month, got %q", claimRepo.reviews[0].paidMonth)
		}
	})

	t.Run("repeating the same outcome with nothing new is a no-op", func(t *testing.T) {
		claimRepo := newFakeClaimRepo()
		claim := seedClaim(t, claimRepo)

		uc := NewReviewClaimUseCase(claimRepo, newFakeCycleRepo(), &fakeImageStore{})
		first := ReviewClaimInput{ClaimID: claim.ID, Status: entity.ClaimStatusVerified, Note: "ok"}
		if _, err := uc.Execute(context.Background(), first); err != nil {
			t.Fatalf("first review failed: %v", err)
		}
		if _, err := uc.Execute(context.Background(), ReviewClaimInput{
			ClaimID: claim.ID,
			Status:  entity.ClaimStatusVerified,
		}); err != nil {
			t.Fatalf("second review failed: %v", err)
		}

		if len(claimRepo.reviews) != 1 {
			t.Errorf("expected the second review to be a no-op, got %d ApplyReview calls", len(claimRepo.reviews))
		}
		if len(claim.AdminResponses) != 1 {
			t.Errorf("expected 1 admin response, got %d", len(claim.AdminResponses))
		}
	})

	t.Run("a new note on the same outcome is appended", func(t *testing.T) {
		claimRepo := newFakeClaimRepo()
		claim := seedClaim(t, claimRepo)

		uc := NewReviewClaimUseCase(claimRepo, newFakeCycleRepo(), &fakeImageStore{})
		if _, err := uc.Execute(context.Background(), ReviewClaimInput{
			ClaimID: claim.ID, Status: entity.ClaimStatusNeedToFix, Note: "buram",
		}); err != nil {
			t.Fatalf("first review failed: %v", err)
		}
		if _, err := uc.Execute(context.Background(), ReviewClaimInput{
			ClaimID: claim.ID, Status: entity.ClaimStatusNeedToFix, Note: "nominal kurang",
		}); err != nil {
			t.Fatalf("second review failed: %v", err)
		}

		if len(claim.AdminResponses) != 2 {
			t.Fatalf("expected 2 admin responses, got %d", len(claim.AdminResponses))
		}
		if claim.AdminResponses[0].Note != "buram" || claim.AdminResponses[1].Note != "nominal kurang" {
			t.Error("responses must be appended in order")
		}
	})

	t.Run("rejects a non-review status", func(t *testing.T) {
		uc := NewReviewClaimUseCase(newFakeClaimRepo(), newFakeCycleRepo(), &fakeImageStore{})
		_, err := uc.Execute(context.Background(), ReviewClaimInput{
			ClaimID: uuid.New(),
			Status:  entity.ClaimStatusProcessing,
		})
		if !errors.Is(err, domainerror.ErrInvalidClaimStatus) {
			t.Errorf("expected ErrInvalidClaimStatus, got %v", err)
		}
	})

	t.Run("returns not found for an unknown claim", func(t *testing.T) {
		uc := NewReviewClaimUseCase(newFakeClaimRepo(), newFakeCycleRepo(), &fakeImageStore{})
		_, err := uc.Execute(context.Background(), ReviewClaimInput{
			ClaimID: uuid.New(),
			Status:  entity.ClaimStatusVerified,
		})
		if !errors.Is(err, domainerror.ErrClaimNotFound) {
			t.Errorf("expected ErrClaimNotFound, got %v", err)
		}
	})
}
