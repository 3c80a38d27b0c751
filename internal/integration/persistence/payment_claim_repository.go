package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/iuran-warga/backend/internal/application/adapter"
	"github.com/iuran-warga/backend/internal/domain/entity"
	domainerror "github.com/iuran-warga/backend/internal/domain/error"
	"github.com/iuran-warga/backend/internal/integration/persistence/model"
)

// paymentClaimRepository implements the adapter.PaymentClaimRepository interface.
type paymentClaimRepository struct {
	db *gorm.DB
}

// NewPaymentClaimRepository creates a new payment claim repository instance.
func NewPaymentClaimRepository(db *gorm.DB) adapter.PaymentClaimRepository {
	return &paymentClaimRepository{db: db}
}

// Create creates a new payment claim in the database.
func (r *paymentClaimRepository) Create(ctx context.Context, claim *entity.PaymentClaim) error {
	claimModel := model.PaymentClaimFromEntity(claim)
	if err := r.db.WithContext(ctx).Create(claimModel).Error; err != nil {
		return err
	}
	return nil
}

// FindByID retrieves a payment claim by its ID.
func (r *paymentClaimRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentClaim, error) {
	var claimModel model.PaymentClaimModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&claimModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrClaimNotFound
		}
		return nil, result.Error
	}
	return claimModel.ToEntity(), nil
}

// FindByFilter retrieves claims matching the filter, newest first.
func (r *paymentClaimRepository) FindByFilter(ctx context.Context, filter adapter.ClaimFilter) ([]*entity.PaymentClaim, error) {
	query := r.db.WithContext(ctx).Model(&model.PaymentClaimModel{})

	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		query = query.Where("status IN ?", statuses)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}

	var claimModels []model.PaymentClaimModel
	if err := query.Order("created_at DESC").Find(&claimModels).Error; err != nil {
		return nil, err
	}

	claims := make([]*entity.PaymentClaim, len(claimModels))
	for i, cm := range claimModels {
		claims[i] = cm.ToEntity()
	}
	return claims, nil
}

// FindByUser retrieves all claims belonging to one resident.
func (r *paymentClaimRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PaymentClaim, error) {
	var claimModels []model.PaymentClaimModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&claimModels)
	if result.Error != nil {
		return nil, result.Error
	}

	claims := make([]*entity.PaymentClaim, len(claimModels))
	for i, cm := range claimModels {
		claims[i] = cm.ToEntity()
	}
	return claims, nil
}

// Update persists the claim's status and its attempt/response lists.
func (r *paymentClaimRepository) Update(ctx context.Context, claim *entity.PaymentClaim) error {
	claimModel := model.PaymentClaimFromEntity(claim)
	result := r.db.WithContext(ctx).
		Model(&model.PaymentClaimModel{}).
		Where("id = ?", claim.ID).
		Updates(map[string]interface{}{
			"status":          claimModel.Status,
			"attempts":        claimModel.Attempts,
			"admin_responses": claimModel.AdminResponses,
			"updated_at":      claimModel.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrClaimNotFound
	}
	return nil
}

// ApplyReview persists a reviewed claim and its side effects in a single
// transaction: the claim row, the directory paid-month mark for verified
// outcomes (when the resident has a directory entry), and the targeted
// notification.
func (r *paymentClaimRepository) ApplyReview(ctx context.Context, claim *entity.PaymentClaim, paidMonth string, notif *entity.Notification) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		claimModel := model.PaymentClaimFromEntity(claim)
		result := tx.Model(&model.PaymentClaimModel{}).
			Where("id = ?", claim.ID).
			Updates(map[string]interface{}{
				"status":          claimModel.Status,
				"attempts":        claimModel.Attempts,
				"admin_responses": claimModel.AdminResponses,
				"updated_at":      claimModel.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrClaimNotFound
		}

		if paidMonth != "" {
			var entryModel model.DirectoryEntryModel
			err := tx.Where("user_id = ?", claim.UserID).First(&entryModel).Error
			switch {
			case err == nil:
				entry := entryModel.ToEntity()
				entry.PaymentStatus.MarkPaid(paidMonth)
				updated := model.DirectoryEntryFromEntity(entry)
				if err := tx.Model(&model.DirectoryEntryModel{}).
					Where("id = ?", entry.ID).
					Update("payment_status", updated.PaymentStatus).Error; err != nil {
					return err
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				// Resident not synced into the directory yet; derivation
				// covers them at read time.
			default:
				return err
			}
		}

		if notif != nil {
			if err := tx.Create(model.NotificationFromEntity(notif)).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
