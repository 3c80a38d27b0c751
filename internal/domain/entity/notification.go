package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification type tags used by the inbox UI.
const (
	NotificationTypeCreated   = "created"
	NotificationTypeReviewed  = "reviewed"
	NotificationTypePublished = "published"
)

// Notification is one fan-out record, either global (visible to every
// resident) or targeted at a single user.
type Notification struct {
	ID             uuid.UUID
	Title          string
	Message        string
	Type           string
	IsGlobal       bool
	ForRole        Role
	BillingCycleID *uuid.UUID
	UserID         *uuid.UUID
	CreatedAt      time.Time
}

// NewGlobalNotification creates a record visible to all residents,
// optionally referencing a billing cycle.
func NewGlobalNotification(title, message, notifType string, billingCycleID *uuid.UUID) *Notification {
	return &Notification{
		ID:             uuid.New(),
		Title:          title,
		Message:        message,
		Type:           notifType,
		IsGlobal:       true,
		ForRole:        RoleWarga,
		BillingCycleID: billingCycleID,
		CreatedAt:      time.Now().UTC(),
	}
}

// NewTargetedNotification creates a record visible to exactly one user.
func NewTargetedNotification(userID uuid.UUID, title, message, notifType string) *Notification {
	return &Notification{
		ID:        uuid.New(),
		Title:     title,
		Message:   message,
		Type:      notifType,
		IsGlobal:  false,
		ForRole:   RoleWarga,
		UserID:    &userID,
		CreatedAt: time.Now().UTC(),
	}
}

// NotificationDismissal is the per-user soft-delete overlay. The
// (UserID, NotificationID) pair is unique; re-dismissing is a no-op.
type NotificationDismissal struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	NotificationID uuid.UUID
	CreatedAt      time.Time
}
