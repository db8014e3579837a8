// Package memory is an in-process transaction and user store with the same
// filter, sort and aggregation semantics as the Postgres repositories. Text
// search approximates the Postgres 'simple' configuration.
package memory

import (
	"bytes"
	"cmp"
	"context"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/o-Erebus/Financial-Analytics-Dashboard/internal/models"
	"github.com/o-Erebus/Financial-Analytics-Dashboard/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Store struct {
	mu           sync.RWMutex
	transactions []models.Transaction
	users        map[uuid.UUID]models.User
}

func New(transactions ...*models.Transaction) *Store {
	s := &Store{users: make(map[uuid.UUID]models.User)}
	_ = s.UpsertBatch(context.Background(), transactions)
	return s
}

// UpsertBatch stores copies of the given transactions keyed by external id.
func (s *Store) UpsertBatch(_ context.Context, transactions []*models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, tx := range transactions {
		replaced := false
		for i := range s.transactions {
			if s.transactions[i].ExternalID == tx.ExternalID {
				id, createdAt := s.transactions[i].ID, s.transactions[i].CreatedAt
				s.transactions[i] = *tx
				s.transactions[i].ID, s.transactions[i].CreatedAt = id, createdAt
				replaced = true
				break
			}
		}
		if !replaced {
			stored := *tx
			if stored.ID == uuid.Nil {
				stored.ID = uuid.New()
			}
			s.transactions = append(s.transactions, stored)
		}
	}
	return nil
}

func (s *Store) List(_ context.Context, f models.TransactionFilter, order models.TransactionSort, p models.Page) ([]*models.Transaction, error) {
	matched := s.sorted(f, order)
	start := p.Offset()
	if start >= len(matched) {
		return []*models.Transaction{}, nil
	}
	end := start + min(max(p.Limit, 0), len(matched)-start)
	return matched[start:end], nil
}

func (s *Store) ListAll(_ context.Context, f models.TransactionFilter, order models.TransactionSort) ([]*models.Transaction, error) {
	return s.sorted(f, order), nil
}

func (s *Store) Count(_ context.Context, f models.TransactionFilter) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for i := range s.transactions {
		if matches(&s.transactions[i], f) {
			n++
		}
	}
	return n, nil
}

func (s *Store) MonthlyTotals(_ context.Context, f models.StatsFilter) ([]models.MonthlyTotal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type bucket struct {
		year, month int
		category    models.TransactionCategory
	}
	sums := make(map[bucket]decimal.Decimal)
	for i := range s.transactions {
		tx := &s.transactions[i]
		if tx.Status != models.StatusPaid || !hasUsableDate(tx) {
			continue
		}
		if f.UserID != nil && tx.UserID != *f.UserID {
			continue
		}
		if !f.DateRange.Contains(*tx.Date) {
			continue
		}
		d := tx.Date.UTC()
		key := bucket{d.Year(), int(d.Month()), tx.Category}
		sums[key] = sums[key].Add(tx.Amount)
	}

	totals := make([]models.MonthlyTotal, 0, len(sums))
	for k, v := range sums {
		totals = append(totals, models.MonthlyTotal{Year: k.year, Month: k.month, Category: k.category, Total: v})
	}
	sort.Slice(totals, func(i, j int) bool {
		a, b := totals[i], totals[j]
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		if a.Month != b.Month {
			return a.Month < b.Month
		}
		return a.Category < b.Category
	})
	return totals, nil
}

func (s *Store) Ping(context.Context) error {
	return nil
}

func (s *Store) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username {
			return repository.ErrConflict
		}
	}
	s.users[user.ID] = *user
	return nil
}

func (s *Store) GetByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *Store) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (s *Store) sorted(f models.TransactionFilter, order models.TransactionSort) []*models.Transaction {
	s.mu.RLock()
	matched := make([]*models.Transaction, 0)
	for i := range s.transactions {
		if matches(&s.transactions[i], f) {
			tx := s.transactions[i]
			matched = append(matched, &tx)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		c := compareField(matched[i], matched[j], order.Field)
		if order.Order == models.SortDesc {
			c = -c
		}
		if c != 0 {
			return c < 0
		}
		return bytes.Compare(matched[i].ID[:], matched[j].ID[:]) < 0
	})
	return matched
}

func matches(tx *models.Transaction, f models.TransactionFilter) bool {
	if f.Search != "" && !matchesText(tx, f.Search) {
		return false
	}
	if f.Category != nil && tx.Category != *f.Category {
		return false
	}
	if f.Status != nil && tx.Status != *f.Status {
		return false
	}
	if f.UserID != nil && tx.UserID != *f.UserID {
		return false
	}
	if !f.DateRange.IsZero() && (tx.Date == nil || !f.DateRange.Contains(*tx.Date)) {
		return false
	}
	if f.MinAmount != nil && tx.Amount.LessThan(*f.MinAmount) {
		return false
	}
	if f.MaxAmount != nil && tx.Amount.GreaterThan(*f.MaxAmount) {
		return false
	}
	return true
}

// matchesText reports whether any whitespace-separated search term matches.
// A term matches when all of its tokens appear among the row's text tokens.
func matchesText(tx *models.Transaction, search string) bool {
	words := make(map[string]struct{})
	for _, field := range []string{string(tx.Category), string(tx.Status), tx.UserID, tx.UserProfile} {
		for _, w := range tokenize(field) {
			words[w] = struct{}{}
		}
	}
	for _, term := range strings.Fields(search) {
		tokens := tokenize(term)
		if len(tokens) == 0 {
			continue
		}
		found := true
		for _, token := range tokens {
			if _, ok := words[token]; !ok {
				found = false
				break
			}
		}
		if found {
			return true
		}
	}
	return false
}

// tokenize lowercases s and splits it roughly the way the Postgres default
// parser does: host names like "example.com" stay whole, and a hyphenated
// word yields itself plus each of its parts.
func tokenize(s string) []string {
	chunks := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '.' && r != '-'
	})
	var tokens []string
	for _, chunk := range chunks {
		chunk = strings.Trim(chunk, ".-")
		if chunk == "" {
			continue
		}
		tokens = append(tokens, chunk)
		if strings.Contains(chunk, "-") {
			for _, part := range strings.Split(chunk, "-") {
				if part = strings.Trim(part, "."); part != "" {
					tokens = append(tokens, part)
				}
			}
		}
	}
	return tokens
}

func hasUsableDate(tx *models.Transaction) bool {
	return tx.Date != nil && !tx.Date.IsZero()
}

// compareField orders by a storage column name; a missing date sorts below
// every present one.
func compareField(a, b *models.Transaction, field string) int {
	switch field {
	case "external_id":
		return cmp.Compare(a.ExternalID, b.ExternalID)
	case "id":
		return bytes.Compare(a.ID[:], b.ID[:])
	case "date":
		return compareDates(a.Date, b.Date)
	case "amount":
		return a.Amount.Cmp(b.Amount)
	case "category":
		return strings.Compare(string(a.Category), string(b.Category))
	case "status":
		return strings.Compare(string(a.Status), string(b.Status))
	case "user_id":
		return strings.Compare(a.UserID, b.UserID)
	case "user_profile":
		return strings.Compare(a.UserProfile, b.UserProfile)
	case "created_at":
		return a.CreatedAt.Compare(b.CreatedAt)
	case "updated_at":
		return a.UpdatedAt.Compare(b.UpdatedAt)
	}
	return 0
}

func compareDates(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return a.Compare(*b)
}
