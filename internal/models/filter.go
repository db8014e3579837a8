package models

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// DateRange is the half-open interval [From, Until). Either bound may be nil.
type DateRange struct {
	From  *time.Time
	Until *time.Time
}

func (r DateRange) IsZero() bool {
	return r.From == nil && r.Until == nil
}

// Contains reports whether t falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	if r.From != nil && t.Before(*r.From) {
		return false
	}
	if r.Until != nil && !t.Before(*r.Until) {
		return false
	}
	return true
}

// TransactionFilter is the normalized predicate built from listing and
// export parameters. Nil fields are unconstrained; all set fields are ANDed.
type TransactionFilter struct {
	Search    string
	Category  *TransactionCategory
	Status    *TransactionStatus
	UserID    *string
	DateRange DateRange
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
}

// StatsFilter is the narrower predicate accepted by the aggregation queries.
type StatsFilter struct {
	UserID    *string
	DateRange DateRange
}

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// TransactionSort names a whitelisted sort column. Ties are always broken
// by the internal id so pagination is stable.
type TransactionSort struct {
	Field string
	Order SortOrder
}

type Page struct {
	Number int
	Limit  int
}

// Offset is the number of rows before the page. It saturates at
// math.MaxInt instead of overflowing.
func (p Page) Offset() int {
	if p.Number <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.Number-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Number - 1) * p.Limit
}

// MonthlyTotal is one (year, month, category) bucket of paid amounts.
type MonthlyTotal struct {
	Year     int
	Month    int
	Category TransactionCategory
	Total    decimal.Decimal
}
