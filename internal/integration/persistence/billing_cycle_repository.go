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

// billingCycleRepository implements the adapter.BillingCycleRepository interface.
type billingCycleRepository struct {
	db *gorm.DB
}

// NewBillingCycleRepository creates a new billing cycle repository instance.
func NewBillingCycleRepository(db *gorm.DB) adapter.BillingCycleRepository {
	return &billingCycleRepository{db: db}
}

// Create creates a new billing cycle in the database.
func (r *billingCycleRepository) Create(ctx context.Context, cycle *entity.BillingCycle) error {
	cycleModel := model.BillingCycleFromEntity(cycle)
	if err := r.db.WithContext(ctx).Create(cycleModel).Error; err != nil {
		return err
	}
	return nil
}

// FindByID retrieves a billing cycle by its ID.
func (r *billingCycleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BillingCycle, error) {
	var cycleModel model.BillingCycleModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&cycleModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBillingCycleNotFound
		}
		return nil, result.Error
	}
	return cycleModel.ToEntity(), nil
}

// FindAll retrieves all billing cycles, billing date descending.
func (r *billingCycleRepository) FindAll(ctx context.Context) ([]*entity.BillingCycle, error) {
	var cycleModels []model.BillingCycleModel
	result := r.db.WithContext(ctx).
		Order("date DESC, created_at DESC").
		Find(&cycleModels)
	if result.Error != nil {
		return nil, result.Error
	}

	cycles := make([]*entity.BillingCycle, len(cycleModels))
	for i, cm := range cycleModels {
		cycles[i] = cm.ToEntity()
	}
	return cycles, nil
}
