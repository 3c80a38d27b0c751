// Package notification contains the resident notification inbox use cases.
package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/iuran-warga/backend/internal/application/adapter"
	"github.com/iuran-warga/backend/internal/domain/entity"
)

// ListNotificationsUseCase lists the notifications visible to one user:
// global records plus the ones targeted at them, minus their dismissals.
type ListNotificationsUseCase struct {
	notificationRepo adapter.NotificationRepository
}

// NewListNotificationsUseCase creates a new ListNotificationsUseCase instance.
func NewListNotificationsUseCase(notificationRepo adapter.NotificationRepository) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{notificationRepo: notificationRepo}
}

// Execute lists the user's inbox, newest first.
func (uc *ListNotificationsUseCase) Execute(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error) {
	notifications, err := uc.notificationRepo.FindVisibleToUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}
