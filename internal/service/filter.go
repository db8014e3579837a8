package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/o-Erebus/Financial-Analytics-Dashboard/internal/dto"
	"github.com/o-Erebus/Financial-Analytics-Dashboard/internal/models"

	"github.com/shopspring/decimal"
)

const (
	dateLayout = "2006-01-02"

	defaultPage  = 1
	defaultLimit = 10
	// maxLimit and maxPage keep Page.Offset well inside int range.
	maxLimit    = 1000
	maxPage     = 1_000_000
	defaultSort = "date"
)

// sortColumns maps public sort keys to storage columns.
var sortColumns = map[string]string{
	"id":           "external_id",
	"_id":          "id",
	"date":         "date",
	"amount":       "amount",
	"category":     "category",
	"status":       "status",
	"user_id":      "user_id",
	"user_profile": "user_profile",
	"createdAt":    "created_at",
	"created_at":   "created_at",
	"updatedAt":    "updated_at",
	"updated_at":   "updated_at",
}

// BuildTransactionFilter turns raw listing/export parameters into a predicate.
func BuildTransactionFilter(q dto.TransactionQuery) (models.TransactionFilter, error) {
	var f models.TransactionFilter

	f.Search = strings.TrimSpace(sanitizeUTF8(q.Search))

	if q.Category != "" {
		c := models.TransactionCategory(q.Category)
		if !c.Valid() {
			return models.TransactionFilter{}, fmt.Errorf("%w: unknown category %q", ErrInvalidFilter, q.Category)
		}
		f.Category = &c
	}
	if q.Status != "" {
		s := models.TransactionStatus(q.Status)
		if !s.Valid() {
			return models.TransactionFilter{}, fmt.Errorf("%w: unknown status %q", ErrInvalidFilter, q.Status)
		}
		f.Status = &s
	}
	if q.UserID != "" {
		userID := sanitizeUTF8(q.UserID)
		f.UserID = &userID
	}

	dateRange, err := buildDateRange(q.StartDate, q.EndDate)
	if err != nil {
		return models.TransactionFilter{}, err
	}
	f.DateRange = dateRange

	if f.MinAmount, err = parseAmount("minAmount", q.MinAmount); err != nil {
		return models.TransactionFilter{}, err
	}
	if f.MaxAmount, err = parseAmount("maxAmount", q.MaxAmount); err != nil {
		return models.TransactionFilter{}, err
	}

	return f, nil
}

// BuildStatsFilter accepts only the user and date bounds; the aggregation
// queries slice by category and status themselves.
func BuildStatsFilter(q dto.StatsQuery) (models.StatsFilter, error) {
	var f models.StatsFilter
	if q.UserID != "" {
		userID := sanitizeUTF8(q.UserID)
		f.UserID = &userID
	}

	dateRange, err := buildDateRange(q.StartDate, q.EndDate)
	if err != nil {
		return models.StatsFilter{}, err
	}
	f.DateRange = dateRange

	return f, nil
}

// buildDateRange makes the end date inclusive by bounding strictly below
// the start of the following day.
func buildDateRange(startDate, endDate string) (models.DateRange, error) {
	var r models.DateRange
	if startDate != "" {
		from, err := time.ParseInLocation(dateLayout, startDate, time.UTC)
		if err != nil {
			return models.DateRange{}, fmt.Errorf("%w: startDate must be YYYY-MM-DD, got %q", ErrInvalidFilter, startDate)
		}
		r.From = &from
	}
	if endDate != "" {
		end, err := time.ParseInLocation(dateLayout, endDate, time.UTC)
		if err != nil {
			return models.DateRange{}, fmt.Errorf("%w: endDate must be YYYY-MM-DD, got %q", ErrInvalidFilter, endDate)
		}
		until := end.AddDate(0, 0, 1)
		r.Until = &until
	}
	return r, nil
}

func parseAmount(name, raw string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a number, got %q", ErrInvalidFilter, name, raw)
	}
	return &d, nil
}

// BuildSort resolves the sort key against the column whitelist. Any order
// other than "asc" sorts descending.
func BuildSort(sortBy, sortOrder string) (models.TransactionSort, error) {
	if sortBy == "" {
		sortBy = defaultSort
	}
	column, ok := sortColumns[sortBy]
	if !ok {
		return models.TransactionSort{}, fmt.Errorf("%w: cannot sort by %q", ErrInvalidFilter, sortBy)
	}

	order := models.SortDesc
	if strings.EqualFold(sortOrder, string(models.SortAsc)) {
		order = models.SortAsc
	}
	return models.TransactionSort{Field: column, Order: order}, nil
}

// BuildPage falls back to the defaults for missing, malformed or
// non-positive values. Oversized values are clamped to maxPage and maxLimit.
func BuildPage(page, limit string) models.Page {
	return models.Page{
		Number: min(positiveOr(page, defaultPage), maxPage),
		Limit:  min(positiveOr(limit, defaultLimit), maxLimit),
	}
}

func positiveOr(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
