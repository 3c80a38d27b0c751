package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BillingItem is one line item on a billing cycle.
type BillingItem struct {
	Name  string
	Price decimal.Decimal
}

// BillingCycle represents an admin-issued monthly dues invoice ("tagihan").
// It is read-only once created; payment claims carry their own snapshot of it.
type BillingCycle struct {
	ID          uuid.UUID
	Name        string
	Description string
	Date        time.Time
	Items       []BillingItem
	TotalPrice  decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewBillingCycle creates a BillingCycle with its total derived from the items.
// The total is computed once here and never recomputed.
func NewBillingCycle(name, description string, date time.Time, items []BillingItem) *BillingCycle {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price)
	}

	now := time.Now().UTC()
	return &BillingCycle{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Date:        date,
		Items:       items,
		TotalPrice:  total,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// DisplayName returns the cycle name, defaulting to "Tagihan <Month>" when
// the admin left it empty.
func (b *BillingCycle) DisplayName() string {
	if b.Name != "" {
		return b.Name
	}
	return "Tagihan " + MonthNameOf(b.Date)
}

// DisplayDescription returns the description with the original's fallback text.
func (b *BillingCycle) DisplayDescription() string {
	if b.Description != "" {
		return b.Description
	}
	return "Tidak ada deskripsi"
}

// Clone returns a deep copy, used when snapshotting a cycle into a claim.
func (b *BillingCycle) Clone() *BillingCycle {
	if b == nil {
		return nil
	}
	clone := *b
	clone.Items = make([]BillingItem, len(b.Items))
	copy(clone.Items, b.Items)
	return &clone
}
