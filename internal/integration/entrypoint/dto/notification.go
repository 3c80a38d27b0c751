package dto

import (
	"time"

	"github.com/iuran-warga/backend/internal/domain/entity"
)

// NotificationResponse represents one inbox notification.
type NotificationResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	Type           string    `json:"type"`
	IsGlobal       bool      `json:"isGlobal"`
	BillingCycleID *string   `json:"billingCycleId,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ToNotificationResponse converts a notification to its API representation.
func ToNotificationResponse(notification *entity.Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:        notification.ID.String(),
		Title:     notification.Title,
		Message:   notification.Message,
		Type:      notification.Type,
		IsGlobal:  notification.IsGlobal,
		CreatedAt: notification.CreatedAt,
	}
	if notification.BillingCycleID != nil {
		id := notification.BillingCycleID.String()
		resp.BillingCycleID = &id
	}
	return resp
}

// ToNotificationResponses converts a slice of notifications.
func ToNotificationResponses(notifications []*entity.Notification) []NotificationResponse {
	out := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		out[i] = ToNotificationResponse(n)
	}
	return out
}
