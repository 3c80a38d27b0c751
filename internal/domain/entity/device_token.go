package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeviceToken is a registered mobile push token for one user. Tokens are
// collected at login and consumed by the best-effort push fan-out.
type DeviceToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Token     string
	CreatedAt time.Time
}

// NewDeviceToken registers a push token for a user.
func NewDeviceToken(userID uuid.UUID, token string) *DeviceToken {
	return &DeviceToken{
		ID:        uuid.New(),
		UserID:    userID,
		Token:     token,
		CreatedAt: time.Now().UTC(),
	}
}
