// Package directory contains resident directory ("data warga") use cases:
// sync, listing with the derived paid-month matrix, manual edits and the
// monthly payment stats.
package directory

import (
	"github.com/google/uuid"

	"github.com/iuran-warga/backend/internal/domain/entity"
)

// DerivePaymentMatrix overlays verified claims onto an entry's stored
// matrix. Derivation only ever marks months paid; it never unsets a month,
// so manual admin overrides that set a month paid survive, and months paid
// through a claim stay paid even if the claim list changes shape later.
func DerivePaymentMatrix(entry *entity.DirectoryEntry, claims []*entity.PaymentClaim) entity.MonthMatrix {
	matrix := entry.PaymentStatus.Normalized()
	for _, claim := range claims {
		if claim.UserID != entry.UserID || claim.Status != entity.ClaimStatusVerified {
			continue
		}
		if month := claim.BillingMonth(nil); month != "" {
			matrix.MarkPaid(month)
		}
	}
	return matrix
}

// groupClaimsByUser indexes verified claims by resident for batch derivation.
func groupClaimsByUser(claims []*entity.PaymentClaim) map[uuid.UUID][]*entity.PaymentClaim {
	grouped := make(map[uuid.UUID][]*entity.PaymentClaim)
	for _, claim := range claims {
		grouped[claim.UserID] = append(grouped[claim.UserID], claim)
	}
	return grouped
}
