package entity

import "time"

// monthNames is the fixed, ordered list of month names used everywhere a
// billing date is mapped to a month. Indexing by calendar month keeps the
// mapping deterministic across deployment locales.
var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthNames returns the twelve month names in calendar order.
func MonthNames() []string {
	return monthNames[:]
}

// MonthNameOf returns the fixed month name for the given date.
func MonthNameOf(t time.Time) string {
	return monthNames[int(t.Month())-1]
}

// IsValidMonthName reports whether name is one of the twelve month names.
func IsValidMonthName(name string) bool {
	for _, m := range monthNames {
		if m == name {
			return true
		}
	}
	return false
}

// MonthMatrix maps month names to a paid/unpaid flag for one resident.
type MonthMatrix map[string]bool

// NewMonthMatrix returns a matrix with all twelve months unpaid.
func NewMonthMatrix() MonthMatrix {
	m := make(MonthMatrix, len(monthNames))
	for _, name := range monthNames {
		m[name] = false
	}
	return m
}

// Normalized returns a copy that contains exactly the twelve known months,
// dropping unknown keys from corrupted rows.
func (m MonthMatrix) Normalized() MonthMatrix {
	out := NewMonthMatrix()
	for _, name := range monthNames {
		if m[name] {
			out[name] = true
		}
	}
	return out
}

// MarkPaid sets a month to paid. Derivation only ever marks months paid;
// unsetting is reserved for explicit manual edits.
func (m MonthMatrix) MarkPaid(month string) {
	if IsValidMonthName(month) {
		m[month] = true
	}
}

// Set applies a manual override for a month, in either direction.
func (m MonthMatrix) Set(month string, paid bool) {
	if IsValidMonthName(month) {
		m[month] = paid
	}
}

// Clone returns a copy of the matrix.
func (m MonthMatrix) Clone() MonthMatrix {
	out := make(MonthMatrix, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
