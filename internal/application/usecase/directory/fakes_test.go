package directory

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/iuran-warga/backend/internal/application/adapter"
	"github.com/iuran-warga/backend/internal/domain/entity"
	domainerror "github.com/iuran-warga/backend/internal/domain/error"
)

type fakeDirectoryRepo struct {
	entries map[uuid.UUID]*entity.DirectoryEntry
}

func newFakeDirectoryRepo() *fakeDirectoryRepo {
	return &fakeDirectoryRepo{entries: make(map[uuid.UUID]*entity.DirectoryEntry)}
}

func (r *fakeDirectoryRepo) Create(_ context.Context, entry *entity.DirectoryEntry) error {
	r.entries[entry.ID] = entry
	return nil
}

func (r *fakeDirectoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.DirectoryEntry, error) {
	entry, ok := r.entries[id]
	if !ok {
		return nil, domainerror.ErrDirectoryEntryNotFound
	}
	return entry, nil
}

func (r *fakeDirectoryRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.DirectoryEntry, error) {
	for _, entry := range r.entries {
		if entry.UserID == userID {
			return entry, nil
		}
	}
	return nil, domainerror.ErrDirectoryEntryNotFound
}

func (r *fakeDirectoryRepo) FindAll(_ context.Context) ([]*entity.DirectoryEntry, error) {
	out := make([]*entity.DirectoryEntry, 0, len(r.entries))
	for _, entry := range r.entries {
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nama < out[j].Nama })
	return out, nil
}

func (r *fakeDirectoryRepo) FindByFilter(ctx context.Context, filter adapter.DirectoryFilter) (*adapter.DirectoryListResult, error) {
	all, _ := r.FindAll(ctx)
	var matched []*entity.DirectoryEntry
	for _, entry := range all {
		if filter.Search != "" && !strings.Contains(strings.ToLower(entry.Nama), strings.ToLower(filter.Search)) {
			continue
		}
		matched = append(matched, entry)
	}

	total := len(matched)
	start := (filter.Page - 1) * filter.Limit
	if start > total {
		start = total
	}
	end := start + filter.Limit
	if end > total {
		end = total
	}

	totalPages := (total + filter.Limit - 1) / filter.Limit
	return &adapter.DirectoryListResult{
		Entries:    matched[start:end],
		Total:      int64(total),
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

func (r *fakeDirectoryRepo) Update(_ context.Context, entry *entity.DirectoryEntry) error {
	if _, ok := r.entries[entry.ID]; !ok {
		return domainerror.ErrDirectoryEntryNotFound
	}
	r.entries[entry.ID] = entry
	return nil
}

type fakeClaimRepo struct {
	claims map[uuid.UUID]*entity.PaymentClaim
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
	r.claims[claim.ID] = claim
	return nil
}

func (r *fakeClaimRepo) ApplyReview(_ context.Context, claim *entity.PaymentClaim, _ string, _ *entity.Notification) error {
	r.claims[claim.ID] = claim
	return nil
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
