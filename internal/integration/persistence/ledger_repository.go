package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/iuran-warga/backend/internal/application/adapter"
	"github.com/iuran-warga/backend/internal/domain/entity"
	domainerror "github.com/iuran-warga/backend/internal/domain/error"
	"github.com/iuran-warga/backend/internal/integration/persistence/model"
)

// ledgerRepository implements the adapter.LedgerRepository interface.
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger repository instance.
func NewLedgerRepository(db *gorm.DB) adapter.LedgerRepository {
	return &ledgerRepository{db: db}
}

// Create creates a new ledger entry in the database.
func (r *ledgerRepository) Create(ctx context.Context, entry *entity.LedgerEntry) error {
	entryModel := model.LedgerEntryFromEntity(entry)
	if err := r.db.WithContext(ctx).Create(entryModel).Error; err != nil {
		return err
	}
	return nil
}

// FindByID retrieves a ledger entry by its ID.
func (r *ledgerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.LedgerEntry, error) {
	var entryModel model.LedgerEntryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrLedgerEntryNotFound
		}
		return nil, result.Error
	}
	return entryModel.ToEntity(), nil
}

// FindByFilter retrieves entries matching the filter, date descending.
func (r *ledgerRepository) FindByFilter(ctx context.Context, filter adapter.LedgerFilter) ([]*entity.LedgerEntry, error) {
	query := r.db.WithContext(ctx).Model(&model.LedgerEntryModel{})

	if filter.Periode != "" {
		query = query.Where("periode = ?", filter.Periode)
	}
	if filter.Jenis != nil {
		query = query.Where("jenis_transaksi = ?", string(*filter.Jenis))
	}

	var entryModels []model.LedgerEntryModel
	if err := query.Order("tanggal DESC, created_at DESC").Find(&entryModels).Error; err != nil {
		return nil, err
	}

	entries := make([]*entity.LedgerEntry, len(entryModels))
	for i, em := range entryModels {
		entries[i] = em.ToEntity()
	}
	return entries, nil
}

// Update persists changes to an entry.
func (r *ledgerRepository) Update(ctx context.Context, entry *entity.LedgerEntry) error {
	entryModel := model.LedgerEntryFromEntity(entry)
	result := r.db.WithContext(ctx).
		Model(&model.LedgerEntryModel{}).
		Where("id = ?", entry.ID).
		Updates(map[string]interface{}{
			"tanggal":         entryModel.Tanggal,
			"jenis_transaksi": entryModel.JenisTransaksi,
			"kategori":        entryModel.Kategori,
			"pihak_ketiga":    entryModel.PihakKetiga,
			"jumlah":          entryModel.Jumlah,
			"keterangan":      entryModel.Keterangan,
			"periode":         entryModel.Periode,
			"bukti_transaksi": entryModel.BuktiTransaksi,
			"updated_at":      entryModel.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrLedgerEntryNotFound
	}
	return nil
}

// Delete removes an entry.
func (r *ledgerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.LedgerEntryModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrLedgerEntryNotFound
	}
	return nil
}

// periodTotalRow is the scan target for the aggregation query.
type periodTotalRow struct {
	Periode        string
	JenisTransaksi string
	Total          decimal.Decimal
}

// SumByPeriode returns amount sums grouped by (periode, jenis_transaksi).
func (r *ledgerRepository) SumByPeriode(ctx context.Context, periode string) ([]adapter.PeriodTotal, error) {
	query := r.db.WithContext(ctx).
		Model(&model.LedgerEntryModel{}).
		Select("periode, jenis_transaksi, SUM(jumlah) as total").
		Group("periode, jenis_transaksi")

	if periode != "" {
		query = query.Where("periode = ?", periode)
	}

	var rows []periodTotalRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	totals := make([]adapter.PeriodTotal, len(rows))
	for i, row := range rows {
		totals[i] = adapter.PeriodTotal{
			Periode:        row.Periode,
			JenisTransaksi: row.JenisTransaksi,
			Total:          row.Total,
		}
	}
	return totals, nil
}

// DistinctPeriods returns the distinct periods, descending.
func (r *ledgerRepository) DistinctPeriods(ctx context.Context) ([]string, error) {
	var periods []string
	result := r.db.WithContext(ctx).
		Model(&model.LedgerEntryModel{}).
		Distinct("periode").
		Order("periode DESC").
		Pluck("periode", &periods)
	if result.Error != nil {
		return nil, result.Error
	}
	return periods, nil
}

// ExistsSimilar checks for an entry with the same kategori, pihak ketiga,
// jumlah and periode.
func (r *ledgerRepository) ExistsSimilar(ctx context.Context, kategori, pihakKetiga string, jumlah decimal.Decimal, periode string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.LedgerEntryModel{}).
		Where("kategori = ? AND pihak_ketiga = ? AND jumlah = ? AND periode = ?",
			kategori, pihakKetiga, jumlah, periode).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
