package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iuran-warga/backend/internal/domain/entity"
)

// CreateCycleRequest represents the request body for billing cycle creation.
type CreateCycleRequest struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Date        string               `json:"date" binding:"required"`
	Items       []BillingItemRequest `json:"items" binding:"required"`
}

// BillingItemRequest is one line item in a cycle creation request.
type BillingItemRequest struct {
	Name  string          `json:"name" binding:"required"`
	Price decimal.Decimal `json:"price" binding:"required"`
}

// BillingItemResponse is one line item in a cycle response.
type BillingItemResponse struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// BillingCycleResponse represents a billing cycle in API responses. Name and
// description carry the display fallbacks already applied.
type BillingCycleResponse struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Date        time.Time             `json:"date"`
	Month       string                `json:"month"`
	Items       []BillingItemResponse `json:"items"`
	TotalPrice  decimal.Decimal       `json:"totalPrice"`
	// IsPaid is only meaningful on resident listings.
	IsPaid    bool      `json:"isPaid"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToBillingCycleResponse converts a billing cycle entity to its API
// representation.
func ToBillingCycleResponse(cycle *entity.BillingCycle, isPaid bool) BillingCycleResponse {
	items := make([]BillingItemResponse, len(cycle.Items))
	for i, item := range cycle.Items {
		items[i] = BillingItemResponse{Name: item.Name, Price: item.Price}
	}
	return BillingCycleResponse{
		ID:          cycle.ID.String(),
		Name:        cycle.DisplayName(),
		Description: cycle.DisplayDescription(),
		Date:        cycle.Date,
		Month:       entity.MonthNameOf(cycle.Date),
		Items:       items,
		TotalPrice:  cycle.TotalPrice,
		IsPaid:      isPaid,
		CreatedAt:   cycle.CreatedAt,
	}
}

// CycleListResponse represents the billing cycle listing.
type CycleListResponse struct {
	Cycles []BillingCycleResponse `json:"cycles"`
}
