package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/iuran-warga/backend/internal/application/adapter"
	"github.com/iuran-warga/backend/internal/domain/entity"
	domainerror "github.com/iuran-warga/backend/internal/domain/error"
)

type fakeClaimRepo struct {
	claims map[uuid.UUID]*entity.PaymentClaim
	// reviews records ApplyReview invocations for assertions.
	reviews []appliedReview
}

type appliedReview struct {
	claimID   uuid.UUID
	paidMonth string
	notif     *entity.Notification
}

func newFakeClaimRepo() *fakeClaimRepo {
	return &fakeClaimRepo{claims: make(map[uuid.UUID]*entity.PaymentClaim)}
}

func (r *fakeClaimRepo) Create(_ context.Context, claim *entity.PaymentClaim) error {
	r.claims[claim.ID] = claim
	return nil
}

func (r *fakeClaimRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.PaymentClaim, error) {
	claim, ok := r.claims[id]
	if !ok {
		return nil, domainerror.ErrClaimNotFound
	}
	return claim, nil
}

func (r *fakeClaimRepo) FindByFilter(_ context.Context, filter adapter.ClaimFilter) ([]*entity.PaymentClaim, error) {
	var out []*entity.PaymentClaim
	for _, claim := range r.claims {
		if filter.UserID != nil && claim.UserID != *filter.UserID {
			continue
		}
		if len(filter.Statuses) > 0 {
			match := false
			for _, s := range filter.Statuses {
				if claim.Status == s {
					match = true
					break
				}
			}
			if !match {
				continue
			}
		}
		out = append(out, claim)
	}
	return out, nil
}

func (r *fakeClaimRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.PaymentClaim, error) {
	var out []*entity.PaymentClaim
	for _, claim := range r.claims {
		if claim.UserID == userID {
			out = append(out, claim)
		}
	}
	return out, nil
}

func (r *fakeClaimRepo) Update(_ context.Context, claim *entity.PaymentClaim) error {
	if _, ok := r.claims[claim.ID]; !ok {
		return domainerror.ErrClaimNotFound
	}
	r.claims[claim.ID] = claim
	return nil
}

func (r *fakeClaimRepo) ApplyReview(_ context.Context, claim *entity.PaymentClaim, paidMonth string, notif *entity.Notification) error {
	if _, ok := r.claims[claim.ID]; !ok {
		return domainerror.ErrClaimNotFound
	}
	r.claims[claim.ID] = claim
	r.reviews = append(r.reviews, appliedReview{claimID: claim.ID, paidMonth: paidMonth, notif: notif})
	return nil
}

type fakeCycleRepo struct {
	cycles map[uuid.UUID]*entity.BillingCycle
}

func newFakeCycleRepo() *fakeCycleRepo {
	return &fakeCycleRepo{cycles: make(map[uuid.UUID]*entity.BillingCycle)}
}

func (r *fakeCycleRepo) Create(_ context.Context, cycle *entity.BillingCycle) error {
	r.cycles[cycle.ID] = cycle
	return nil
}

func (r *fakeCycleRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.BillingCycle, error) {
	cycle, ok := r.cycles[id]
	if !ok {
		return nil, domainerror.ErrBillingCycleNotFound
	}
	return cycle, nil
}

func (r *fakeCycleRepo) FindAll(_ context.Context) ([]*entity.BillingCycle, error) {
	var out []*entity.BillingCycle
	for _, cycle := range r.cycles {
		out = append(out, cycle)
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByKK(_ context.Context, kk string) (*entity.User, error) {
	for _, user := range r.users {
		if user.KK == kk {
			return user, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) ExistsByKK(_ context.Context, kk string) (bool, error) {
	for _, user := range r.users {
		if user.KK == kk {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) FindByRole(_ context.Context, role entity.Role) ([]*entity.User, error) {
	var out []*entity.User
	for _, user := range r.users {
		if user.Role == role {
			out = append(out, user)
		}
	}
	return out, nil
}

// fakeImageStore returns deterministic paths without decoding anything.
type fakeImageStore struct {
	saved int
}

func (s *fakeImageStore) Save(_ context.Context, payload string) (string, error) {
	if payload == "" {
		return "", fmt.Errorf("empty payload")
	}
	s.saved++
	return fmt.Sprintf("/public/uploads/fake-%d.png", s.saved), nil
}
