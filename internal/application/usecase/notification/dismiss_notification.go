package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/iuran-warga/backend/internal/application/adapter"
)

// DismissNotificationUseCase hides one notification for one user. The
// underlying record is untouched, so a global notification dismissed by
// one resident stays visible to everyone else. Re-dismissing is a no-op.
type DismissNotificationUseCase struct {
	notificationRepo adapter.NotificationRepository
}

// NewDismissNotificationUseCase creates a new DismissNotificationUseCase
// instance.
func NewDismissNotificationUseCase(notificationRepo adapter.NotificationRepository) *DismissNotificationUseCase {
	return &DismissNotificationUseCase{notificationRepo: notificationRepo}
}

// Execute records the dismissal.
func (uc *DismissNotificationUseCase) Execute(ctx context.Context, userID, notificationID uuid.UUID) error {
	if err := uc.notificationRepo.Dismiss(ctx, userID, notificationID); err != nil {
		return fmt.Errorf("failed to dismiss notification: %w", err)
	}
	return nil
}
