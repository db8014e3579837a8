// Package ingest reads transaction records from JSON and validates them
// before they are written to a store.
package ingest

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/o-Erebus/Financial-Analytics-Dashboard/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Record is one transaction as it appears in a data file.
type Record struct {
	ID          int64           `json:"id"`
	Date        *string         `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Status      string          `json:"status"`
	UserID      string          `json:"user_id"`
	UserProfile string          `json:"user_profile"`
}

// LoadFile decodes and validates every record in the JSON array at path.
func LoadFile(path string, now time.Time) ([]*models.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	transactions, err := Decode(f, now)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return transactions, nil
}

// Decode reads a JSON array of records. The first invalid record aborts the
// whole batch.
func Decode(r io.Reader, now time.Time) ([]*models.Transaction, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}

	transactions := make([]*models.Transaction, 0, len(records))
	seen := make(map[int64]int, len(records))
	for i, rec := range records {
		tx, err := rec.toTransaction(now)
		if err != nil {
			return nil, fmt.Errorf("record %d (id %d): %w", i, rec.ID, err)
		}
		if prev, ok := seen[rec.ID]; ok {
			return nil, fmt.Errorf("record %d: duplicate id %d (first seen at record %d)", i, rec.ID, prev)
		}
		seen[rec.ID] = i
		transactions = append(transactions, tx)
	}
	return transactions, nil
}

func (r Record) toTransaction(now time.Time) (*models.Transaction, error) {
	category := models.TransactionCategory(r.Category)
	if !category.Valid() {
		return nil, fmt.Errorf("unknown category %q", r.Category)
	}
	status := models.TransactionStatus(r.Status)
	if !status.Valid() {
		return nil, fmt.Errorf("unknown status %q", r.Status)
	}
	if r.Amount.IsNegative() {
		return nil, fmt.Errorf("amount %s is negative", r.Amount)
	}
	if strings.TrimSpace(r.UserID) == "" {
		return nil, fmt.Errorf("user_id is required")
	}

	var date *time.Time
	if r.Date != nil && *r.Date != "" {
		d, err := time.Parse(time.RFC3339, *r.Date)
		if err != nil {
			return nil, fmt.Errorf("date %q is not RFC 3339", *r.Date)
		}
		d = d.UTC()
		date = &d
	}

	return &models.Transaction{
		ID:          uuid.New(),
		ExternalID:  r.ID,
		Date:        date,
		Amount:      r.Amount.Round(2),
		Category:    category,
		Status:      status,
		UserID:      r.UserID,
		UserProfile: r.UserProfile,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
