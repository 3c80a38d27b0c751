package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/iuran-warga/backend/internal/domain/entity"
)

// NotificationRepository defines the interface for notification persistence.
type NotificationRepository interface {
	// Create persists a notification record.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindVisibleToUser retrieves the union of global notifications and
	// notifications targeted at the user, excluding any the user has
	// dismissed, newest first.
	FindVisibleToUser(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error)

	// Dismiss records a per-user dismissal. Dismissing the same
	// notification twice is a no-op success.
	Dismiss(ctx context.Context, userID, notificationID uuid.UUID) error
}

// DeviceTokenRepository defines the interface for push token persistence.
type DeviceTokenRepository interface {
	// Save persists a device token registered at login.
	Save(ctx context.Context, token *entity.DeviceToken) error

	// FindAll retrieves every registered device token.
	FindAll(ctx context.Context) ([]*entity.DeviceToken, error)
}
