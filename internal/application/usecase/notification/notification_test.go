package notification

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/iuran-warga/backend/internal/domain/entity"
)

// fakeNotificationRepo mirrors the per-user dismissal overlay semantics.
type fakeNotificationRepo struct {
	notifications []*entity.Notification
	dismissed     map[uuid.UUID]map[uuid.UUID]bool
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{dismissed: make(map[uuid.UUID]map[uuid.UUID]bool)}
}

func (r *fakeNotificationRepo) Create(_ context.Context, n *entity.Notification) error {
	r.notifications = append(r.notifications, n)
	return nil
}

func (r *fakeNotificationRepo) FindVisibleToUser(_ context.Context, userID uuid.UUID) ([]*entity.Notification, error) {
	var out []*entity.Notification
	for _, n := range r.notifications {
		if !n.IsGlobal && (n.UserID == nil || *n.UserID != userID) {
			continue
		}
		if r.dismissed[userID][n.ID] {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func (r *fakeNotificationRepo) Dismiss(_ context.Context, userID, notificationID uuid.UUID) error {
	if r.dismissed[userID] == nil {
		r.dismissed[userID] = make(map[uuid.UUID]bool)
	}
	r.dismissed[userID][notificationID] = true
	return nil
}

func TestNotificationInbox(t *testing.T) {
	repo := newFakeNotificationRepo()
	budi := uuid.New()
	sari := uuid.New()

	global := entity.NewGlobalNotification("Tagihan Baru", "Tagihan Baru untuk bulan July sudah terbit",
		entity.NotificationTypeCreated, nil)
	targeted := entity.NewTargetedNotification(budi, "Pembayaran Terverifikasi",
		"Pembayaran kamu sudah diverifikasi oleh admin", entity.NotificationTypeReviewed)
	repo.notifications = append(repo.notifications, global, targeted)

	list := NewListNotificationsUseCase(repo)
	dismiss := NewDismissNotificationUseCase(repo)

	t.Run("targeted notifications reach only their user", func(t *testing.T) {
		budiInbox, err := list.Execute(context.Background(), budi)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(budiInbox) != 2 {
			t.Errorf("expected Budi to see 2 notifications, got %d", len(budiInbox))
		}

		sariInbox, err := list.Execute(context.Background(), sari)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sariInbox) != 1 {
			t.Errorf("expected Sari to see only the global notification, got %d", len(sariInbox))
		}
	})

	t.Run("dismissal hides the record for that user only", func(t *testing.T) {
		if err := dismiss.Execute(context.Background(), budi, global.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		budiInbox, _ := list.Execute(context.Background(), budi)
		for _, n := range budiInbox {
			if n.ID == global.ID {
				t.Error("dismissed notification must not appear in Budi's inbox")
			}
		}

		sariInbox, _ := list.Execute(context.Background(), sari)
		if len(sariInbox) != 1 {
			t.Error("Budi's dismissal must not affect Sari's inbox")
		}
	})

	t.Run("re-dismissing is a no-op", func(t *testing.T) {
		if err := dismiss.Execute(context.Background(), budi, global.ID); err != nil {
			t.Errorf("expected idempotent dismissal, got %v", err)
		}
	})
}
