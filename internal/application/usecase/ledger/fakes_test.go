package ledger

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/iuran-warga/backend/internal/application/adapter"
	"github.com/iuran-warga/backend/internal/domain/entity"
	domainerror "github.com/iuran-warga/backend/internal/domain/error"
)

type fakeLedgerRepo struct {
	entries map[uuid.UUID]*entity.LedgerEntry
}

func newFakeLedgerRepo() *fakeLedgerRepo {
	return &fakeLedgerRepo{entries: make(map[uuid.UUID]*entity.LedgerEntry)}
}

func (r *fakeLedgerRepo) Create(_ context.Context, entry *entity.LedgerEntry) error {
	r.entries[entry.ID] = entry
	return nil
}

func (r *fakeLedgerRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.LedgerEntry, error) {
	entry, ok := r.entries[id]
	if !ok {
		return nil, domainerror.ErrLedgerEntryNotFound
	}
	return entry, nil
}

func (r *fakeLedgerRepo) FindByFilter(_ context.Context, filter adapter.LedgerFilter) ([]*entity.LedgerEntry, error) {
	var out []*entity.LedgerEntry
	for _, entry := range r.entries {
		if filter.Periode != "" && entry.Periode != filter.Periode {
			continue
		}
		if filter.Jenis != nil && entry.JenisTransaksi != *filter.Jenis {
			continue
		}
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Tanggal.After(out[j].Tanggal) })
	return out, nil
}

func (r *fakeLedgerRepo) Update(_ context.Context, entry *entity.LedgerEntry) error {
	if _, ok := r.entries[entry.ID]; !ok {
		return domainerror.ErrLedgerEntryNotFound
	}
	r.entries[entry.ID] = entry
	return nil
}

func (r *fakeLedgerRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.entries, id)
	return nil
}

func (r *fakeLedgerRepo) SumByPeriode(_ context.Context, periode string) ([]adapter.PeriodTotal, error) {
	type key struct {
		periode string
		jenis   string
	}
	sums := make(map[key]decimal.Decimal)
	for _, entry := range r.entries {
		if periode != "" && entry.Periode != periode {
			continue
		}
		k := key{entry.Periode, string(entry.JenisTransaksi)}
		sums[k] = sums[k].Add(entry.Jumlah)
	}
	var out []adapter.PeriodTotal
	for k, total := range sums {
		out = append(out, adapter.PeriodTotal{Periode: k.periode, JenisTransaksi: k.jenis, Total: total})
	}
	return out, nil
}

func (r *fakeLedgerRepo) DistinctPeriods(_ context.Context) ([]string, error) {
	seen := make(map[string]bool)
	for _, entry := range r.entries {
		seen[entry.Periode] = true
	}
	var out []string
	for periode := range seen {
		out = append(out, periode)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(out)))
	return out, nil
}

func (r *fakeLedgerRepo) ExistsSimilar(_ context.Context, kategori, pihakKetiga string, jumlah decimal.Decimal, periode string) (bool, error) {
	for _, entry := range r.entries {
		if entry.Kategori == kategori && entry.PihakKetiga == pihakKetiga &&
			entry.Jumlah.Equal(jumlah) && entry.Periode == periode {
			return true, nil
		}
	}
	return false, nil
}

type fakePublicationRepo struct {
	records map[string]*entity.PublishedPeriod
	// fanouts records the notification batch stored with each publish.
	fanouts map[string][]*entity.Notification
}

func newFakePublicationRepo() *fakePublicationRepo {
	return &fakePublicationRepo{
		records: make(map[string]*entity.PublishedPeriod),
		fanouts: make(map[string][]*entity.Notification),
	}
}

func (r *fakePublicationRepo) Exists(_ context.Context, periode string) (bool, error) {
	_, ok := r.records[periode]
	return ok, nil
}

func (r *fakePublicationRepo) Publish(_ context.Context, record *entity.PublishedPeriod, fanout []*entity.Notification) error {
	if _, ok := r.records[record.Periode]; ok {
		return domainerror.ErrPeriodeAlreadyPublished
	}
	r.records[record.Periode] = record
	r.fanouts[record.Periode] = fanout
	return nil
}

func (r *fakePublicationRepo) FindAll(_ context.Context) ([]*entity.PublishedPeriod, error) {
	var out []*entity.PublishedPeriod
	for _, record := range r.records {
		out = append(out, record)
	}
	return out, nil
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

type fakeDeviceTokenRepo struct {
	tokens []*entity.DeviceToken
}

func (r *fakeDeviceTokenRepo) Save(_ context.Context, token *entity.DeviceToken) error {
	r.tokens = append(r.tokens, token)
	return nil
}

func (r *fakeDeviceTokenRepo) FindAll(_ context.Context) ([]*entity.DeviceToken, error) {
	return r.tokens, nil
}

type fakePushSender struct {
	sent []string
}

func (s *fakePushSender) Send(_ context.Context, token, _, _ string) error {
	s.sent = append(s.sent, token)
	return nil
}

type fakeImageStore struct {
	saved int
}

func (s *fakeImageStore) Save(_ context.Context, _ string) (string, error) {
	s.saved++
	return "/public/uploads/fake.png", nil
}
