package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/iuran-warga/backend/internal/domain/entity"
)

// LedgerEntryModel represents the ledger_entries table in the database.
type LedgerEntryModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Tanggal        time.Time       `gorm:"type:date;not null;index"`
	JenisTransaksi string          `gorm:"type:varchar(15);not null;index"`
	Kategori       string          `gorm:"type:varchar(255);not null"`
	PihakKetiga    string          `gorm:"type:varchar(255)"`
	Jumlah         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Keterangan     string          `gorm:"type:text"`
	Periode        string          `gorm:"type:varchar(7);not null;index"`
	BuktiTransaksi datatypes.JSON  `gorm:"type:jsonb"`
	CreatedBy      uuid.UUID       `gorm:"type:uuid;not null"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for the LedgerEntryModel.
func (LedgerEntryModel) TableName() string {
	return "ledger_entries"
}

// ToEntity converts a LedgerEntryModel to a domain LedgerEntry entity.
func (m *LedgerEntryModel) ToEntity() *entity.LedgerEntry {
	var bukti []string
	fromJSON(m.BuktiTransaksi, &bukti)
	if bukti == nil {
		bukti = []string{}
	}

	return &entity.LedgerEntry{
		ID:             m.ID,
		Tanggal:        m.Tanggal,
		JenisTransaksi: entity.TransactionKind(m.JenisTransaksi),
		Kategori:       m.Kategori,
		PihakKetiga:    m.PihakKetiga,
		Jumlah:         m.Jumlah,
		Keterangan:     m.Keterangan,
		Periode:        m.Periode,
		BuktiTransaksi: bukti,
		CreatedBy:      m.CreatedBy,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// LedgerEntryFromEntity converts a domain LedgerEntry entity to a model.
func LedgerEntryFromEntity(e *entity.LedgerEntry) *LedgerEntryModel {
	return &LedgerEntryModel{
		ID:             e.ID,
		Tanggal:        e.Tanggal,
		JenisTransaksi: string(e.JenisTransaksi),
		Kategori:       e.Kategori,
		PihakKetiga:    e.PihakKetiga,
		Jumlah:         e.Jumlah,
		Keterangan:     e.Keterangan,
		Periode:        e.Periode,
		BuktiTransaksi: toJSON(e.BuktiTransaksi),
		CreatedBy:      e.CreatedBy,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
