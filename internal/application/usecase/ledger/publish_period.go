package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/iuran-warga/backend/internal/application/adapter"
	"github.com/iuran-warga/backend/internal/domain/entity"
	domainerror "github.com/iuran-warga/backend/internal/domain/error"
)

// PublishPeriodInput represents the input for publishing a period.
type PublishPeriodInput struct {
	Periode     string
	PublishedBy uuid.UUID
}

// PublishPeriodOutput represents the output of a publication.
type PublishPeriodOutput struct {
	Record *entity.PublishedPeriod
}

// PublishPeriodUseCase makes one reporting period visible to residents.
// The publication record and the per-resident notification fan-out are
// stored in one transaction; push delivery runs after commit and is
// best-effort.
type PublishPeriodUseCase struct {
	publicationRepo adapter.PublicationRepository
	userRepo        adapter.UserRepository
	deviceTokenRepo adapter.DeviceTokenRepository
	pushSender      adapter.PushSender
}

// NewPublishPeriodUseCase creates a new PublishPeriodUseCase instance.
func NewPublishPeriodUseCase(
	publicationRepo adapter.PublicationRepository,
	userRepo adapter.UserRepository,
	deviceTokenRepo adapter.DeviceTokenRepository,
	pushSender adapter.PushSender,
) *PublishPeriodUseCase {
	return &PublishPeriodUseCase{
		publicationRepo: publicationRepo,
		userRepo:        userRepo,
		deviceTokenRepo: deviceTokenRepo,
		pushSender:      pushSender,
	}
}

// Execute publishes the period.
func (uc *PublishPeriodUseCase) Execute(ctx context.Context, input PublishPeriodInput) (*PublishPeriodOutput, error) {
	if !entity.IsValidPeriode(input.Periode) {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidPeriode,
			"periode must match YYYY-MM",
			domainerror.ErrInvalidPeriode,
		)
	}

	exists, err := uc.publicationRepo.Exists(ctx, input.Periode)
	if err != nil {
		return nil, fmt.Errorf("failed to check publication: %w", err)
	}
	if exists {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodePeriodeAlreadyPublished,
			fmt.Sprintf("periode %s already published", input.Periode),
			domainerror.ErrPeriodeAlreadyPublished,
		)
	}

	residents, err := uc.userRepo.FindByRole(ctx, entity.RoleWarga)
	if err != nil {
		return nil, fmt.Errorf("failed to list residents: %w", err)
	}

	title := "Laporan Keuangan Terbit"
	message := fmt.Sprintf("Laporan keuangan periode %s sudah dapat dilihat", input.Periode)
	fanout := make([]*entity.Notification, 0, len(residents))
	for _, resident := range residents {
		fanout = append(fanout, entity.NewTargetedNotification(resident.ID, title, message, entity.NotificationTypePublished))
	}

	record := entity.NewPublishedPeriod(input.Periode, input.PublishedBy)
	if err := uc.publicationRepo.Publish(ctx, record, fanout); err != nil {
		return nil, fmt.Errorf("failed to publish periode: %w", err)
	}

	uc.pushAll(ctx, title, message)

	return &PublishPeriodOutput{Record: record}, nil
}

// pushAll delivers the publication push to every registered device. Failed
// sends are logged and never surfaced.
func (uc *PublishPeriodUseCase) pushAll(ctx context.Context, title, message string) {
	tokens, err := uc.deviceTokenRepo.FindAll(ctx)
	if err != nil {
		slog.Warn("failed to list device tokens for push", "error", err)
		return
	}

	failed := 0
	for _, token := range tokens {
		if err := uc.pushSender.Send(ctx, token.Token, title, message); err != nil {
			failed++
			slog.Warn("push delivery failed", "error", err)
		}
	}
	slog.Info("publication push fan-out finished", "devices", len(tokens), "failed", failed)
}
