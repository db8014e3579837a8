package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionCategory string

const (
	CategoryRevenue TransactionCategory = "Revenue"
	CategoryExpense TransactionCategory = "Expense"
)

// Categories lists every valid category in presentation order.
var Categories = []TransactionCategory{CategoryRevenue, CategoryExpense}

func (c TransactionCategory) Valid() bool {
	switch c {
	case CategoryRevenue, CategoryExpense:
		return true
	}
	return false
}

type TransactionStatus string

const (
	StatusPaid    TransactionStatus = "Paid"
	StatusPending TransactionStatus = "Pending"
)

func (s TransactionStatus) Valid() bool {
	switch s {
	case StatusPaid, StatusPending:
		return true
	}
	return false
}

// Transaction is a single ledger entry. Amount is always a non-negative
// magnitude; the sign is implied by Category.
type Transaction struct {
	ID          uuid.UUID           `db:"id"`
	ExternalID  int64               `db:"external_id"`
	Date        *time.Time          `db:"date"` // nil for ingested rows without a usable date
	Amount      decimal.Decimal     `db:"amount"`
	Category    TransactionCategory `db:"category"`
	Status      TransactionStatus   `db:"status"`
	UserID      string              `db:"user_id"`
	UserProfile string              `db:"user_profile"`
	CreatedAt   time.Time           `db:"created_at"`
	UpdatedAt   time.Time           `db:"updated_at"`
}
