package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/iuran-warga/backend/internal/application/adapter"
	"github.com/iuran-warga/backend/internal/domain/entity"
	domainerror "github.com/iuran-warga/backend/internal/domain/error"
)

// GetCycleUseCase retrieves one billing cycle.
type GetCycleUseCase struct {
	cycleRepo adapter.BillingCycleRepository
}

// NewGetCycleUseCase creates a new GetCycleUseCase instance.
func NewGetCycleUseCase(cycleRepo adapter.BillingCycleRepository) *GetCycleUseCase {
	return &GetCycleUseCase{cycleRepo: cycleRepo}
}

// Execute retrieves the cycle by id.
func (uc *GetCycleUseCase) Execute(ctx context.Context, id uuid.UUID) (*entity.BillingCycle, error) {
	cycle, err := uc.cycleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrBillingCycleNotFound) {
			return nil, domainerror.NewBillingError(
				domainerror.ErrCodeBillingCycleNotFound,
				"data not found",
				domainerror.ErrBillingCycleNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find billing cycle: %w", err)
	}
	return cycle, nil
}
