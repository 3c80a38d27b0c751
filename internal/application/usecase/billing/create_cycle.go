// Package billing contains billing-cycle use cases.
package billing

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iuran-warga/backend/internal/application/adapter"
	"github.com/iuran-warga/backend/internal/domain/entity"
	domainerror "github.com/iuran-warga/backend/internal/domain/error"
)

// CreateCycleInput represents the input for billing cycle creation.
type CreateCycleInput struct {
	Name        string
	Description string
	Date        time.Time
	Items       []CycleItemInput
}

// CycleItemInput is one line item in the creation request.
type CycleItemInput struct {
	Name  string
	Price decimal.Decimal
}

// CreateCycleOutput represents the output of billing cycle creation.
type CreateCycleOutput struct {
	Cycle *entity.BillingCycle
}

// CreateCycleUseCase handles billing cycle creation: it persists the cycle,
// stores a global notification for residents and fans the announcement out
// to every registered device, best effort.
type CreateCycleUseCase struct {
	cycleRepo        adapter.BillingCycleRepository
	notificationRepo adapter.NotificationRepository
	deviceTokenRepo  adapter.DeviceTokenRepository
	pushSender       adapter.PushSender
}

// NewCreateCycleUseCase creates a new CreateCycleUseCase instance.
func NewCreateCycleUseCase(
	cycleRepo adapter.BillingCycleRepository,
	notificationRepo adapter.NotificationRepository,
	deviceTokenRepo adapter.DeviceTokenRepository,
	pushSender adapter.PushSender,
) *CreateCycleUseCase {
	return &CreateCycleUseCase{
		cycleRepo:        cycleRepo,
		notificationRepo: notificationRepo,
		deviceTokenRepo:  deviceTokenRepo,
		pushSender:       pushSender,
	}
}

// Execute performs the billing cycle creation.
func (uc *CreateCycleUseCase) Execute(ctx context.Context, input CreateCycleInput) (*CreateCycleOutput, error) {
	if len(input.Items) == 0 {
		return nil, domainerror.NewBillingError(
			domainerror.ErrCodeEmptyBillingItems,
			"billing cycle requires at least one item",
			domainerror.ErrEmptyBillingItems,
		)
	}

	items := make([]entity.BillingItem, len(input.Items))
	for i, item := range input.Items {
		items[i] = entity.BillingItem{Name: item.Name, Price: item.Price}
	}

	cycle := entity.NewBillingCycle(input.Name, input.Description, input.Date, items)

	if err := uc.cycleRepo.Create(ctx, cycle); err != nil {
		return nil, fmt.Errorf("failed to create billing cycle: %w", err)
	}

	// Announce the new cycle in the resident inbox.
	notification := entity.NewGlobalNotification(
		"Tagihan Baru",
		fmt.Sprintf("Tagihan Baru untuk bulan %s sudah terbit", entity.MonthNameOf(cycle.Date)),
		entity.NotificationTypeCreated,
		&cycle.ID,
	)
	if err := uc.notificationRepo.Create(ctx, notification); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	uc.fanOutPush(ctx, notification.Title, notification.Message)

	return &CreateCycleOutput{Cycle: cycle}, nil
}

// fanOutPush delivers the announcement to every registered device token.
// Each delivery is an independent attempt; failures are collected in the log
// and never propagate to the caller.
func (uc *CreateCycleUseCase) fanOutPush(ctx context.Context, title, body string) {
	tokens, err := uc.deviceTokenRepo.FindAll(ctx)
	if err != nil {
		slog.Warn("Failed to load device tokens for push fan-out", "error", err)
		return
	}

	failed := 0
	for _, token := range tokens {
		if err := uc.pushSender.Send(ctx, token.Token, title, body); err != nil {
			failed++
			slog.Warn("Push delivery failed",
				"userID", token.UserID,
				"error", err,
			)
		}
	}

	slog.Info("Push fan-out completed",
		"total", len(tokens),
		"failed", failed,
	)
}
