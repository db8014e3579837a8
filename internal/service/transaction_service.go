package service

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"time"

	"github.com/o-Erebus/Financial-Analytics-Dashboard/internal/dto"
	"github.com/o-Erebus/Financial-Analytics-Dashboard/internal/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// TransactionStore is the read side of the transaction collection.
type TransactionStore interface {
	List(ctx context.Context, f models.TransactionFilter, s models.TransactionSort, p models.Page) ([]*models.Transaction, error)
	ListAll(ctx context.Context, f models.TransactionFilter, s models.TransactionSort) ([]*models.Transaction, error)
	Count(ctx context.Context, f models.TransactionFilter) (int64, error)
	MonthlyTotals(ctx context.Context, f models.StatsFilter) ([]models.MonthlyTotal, error)
}

// StatsCache stores rendered stats responses. A nil cache disables caching.
type StatsCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}

const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

type TransactionService struct {
	store  TransactionStore
	cache  StatsCache
	logger *zap.Logger
}

func NewTransactionService(store TransactionStore, cache StatsCache, logger *zap.Logger) *TransactionService {
	return &TransactionService{
		store:  store,
		cache:  cache,
		logger: logger,
	}
}

// ListTransactions returns one page of matching transactions together with
// the total match count. The page and the count are fetched concurrently.
func (s *TransactionService) ListTransactions(ctx context.Context, q dto.TransactionQuery) (*dto.TransactionListResponse, error) {
	filter, err := BuildTransactionFilter(q)
	if err != nil {
		return nil, err
	}
	order, err := BuildSort(q.SortBy, q.SortOrder)
	if err != nil {
		return nil, err
	}
	page := BuildPage(q.Page, q.Limit)

	var (
		transactions []*models.Transaction
		total        int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		transactions, err = s.store.List(gctx, filter, order, page)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.store.Count(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &dto.TransactionListResponse{
		Transactions:      toTransactionResponses(transactions),
		CurrentPage:       page.Number,
		TotalPages:        totalPages(total, page.Limit),
		TotalTransactions: total,
	}, nil
}

// GetStats computes revenue, expense, net profit, the category breakdown and
// the monthly trend from one grouped pass over paid transactions.
func (s *TransactionService) GetStats(ctx context.Context, q dto.StatsQuery) (*dto.StatsResponse, error) {
	filter, err := BuildStatsFilter(q)
	if err != nil {
		return nil, err
	}

	key := statsCacheKey(filter)
	if s.cache != nil {
		var cached dto.StatsResponse
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			s.logger.Warn("Stats cache read failed", zap.String("key", key), zap.Error(err))
		} else if found {
			return &cached, nil
		}
	}

	rows, err := s.store.MonthlyTotals(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate transactions: %w", err)
	}
	stats := summarize(rows)

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, stats); err != nil {
			s.logger.Warn("Stats cache write failed", zap.String("key", key), zap.Error(err))
		}
	}

	return stats, nil
}

// ExportTransactions renders every matching transaction, unpaginated, into a
// single in-memory CSV or XLSX file.
func (s *TransactionService) ExportTransactions(ctx context.Context, q dto.ExportQuery) (*dto.ExportFile, error) {
	filter, err := BuildTransactionFilter(q.TransactionQuery)
	if err != nil {
		return nil, err
	}
	order, err := BuildSort(q.SortBy, q.SortOrder)
	if err != nil {
		return nil, err
	}

	transactions, err := s.store.ListAll(ctx, filter, order)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions for export: %w", err)
	}
	if len(transactions) == 0 {
		return nil, ErrNoTransactionsToExport
	}

	columns := ParseExportFields(q.Fields)
	var file *dto.ExportFile
	switch q.Format {
	case "xlsx":
		file, err = renderXLSX(transactions, columns)
	default:
		file, err = renderCSV(transactions, columns)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to render export: %w", err)
	}

	s.logger.Info("Transactions exported",
		zap.Int("rows", file.Rows),
		zap.Strings("fields", columns),
		zap.String("content_type", file.ContentType),
	)

	return file, nil
}

func summarize(rows []models.MonthlyTotal) *dto.StatsResponse {
	totals := make(map[models.TransactionCategory]decimal.Decimal)
	for _, row := range rows {
		totals[row.Category] = totals[row.Category].Add(row.Total)
	}

	revenue := totals[models.CategoryRevenue]
	expenses := totals[models.CategoryExpense]

	breakdown := make([]dto.CategoryTotal, 0, len(totals))
	for _, category := range models.Categories {
		if total, ok := totals[category]; ok {
			breakdown = append(breakdown, dto.CategoryTotal{Category: string(category), Total: total.InexactFloat64()})
		}
	}

	trend := make([]dto.TrendPoint, 0, len(rows))
	for _, row := range rows {
		trend = append(trend, dto.TrendPoint{
			Year:        row.Year,
			Month:       row.Month,
			Category:    string(row.Category),
			TotalAmount: row.Total.InexactFloat64(),
		})
	}
	sort.SliceStable(trend, func(i, j int) bool {
		a, b := trend[i], trend[j]
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		if a.Month != b.Month {
			return a.Month < b.Month
		}
		return categoryRank(a.Category) < categoryRank(b.Category)
	})

	return &dto.StatsResponse{
		TotalRevenue:           revenue.InexactFloat64(),
		TotalExpenses:          expenses.InexactFloat64(),
		NetProfit:              revenue.Sub(expenses).InexactFloat64(),
		CategoryBreakdown:      breakdown,
		RevenueVsExpensesTrend: trend,
	}
}

// categoryRank orders categories as declared: Revenue before Expense.
func categoryRank(category string) int {
	for i, c := range models.Categories {
		if string(c) == category {
			return i
		}
	}
	return len(models.Categories)
}

// statsCacheKey encodes the filter as a query string so that no user id can
// spell out another filter's key.
func statsCacheKey(f models.StatsFilter) string {
	params := url.Values{}
	if f.UserID != nil {
		params.Set("user", *f.UserID)
	}
	if f.DateRange.From != nil {
		params.Set("from", f.DateRange.From.Format(time.DateOnly))
	}
	if f.DateRange.Until != nil {
		params.Set("until", f.DateRange.Until.Format(time.DateOnly))
	}
	if len(params) == 0 {
		return "stats"
	}
	return "stats:" + params.Encode()
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return int(pages)
}

func toTransactionResponses(transactions []*models.Transaction) []dto.TransactionResponse {
	responses := make([]dto.TransactionResponse, len(transactions))
	for i, tx := range transactions {
		responses[i] = toTransactionResponse(tx)
	}
	return responses
}

func toTransactionResponse(tx *models.Transaction) dto.TransactionResponse {
	resp := dto.TransactionResponse{
		ID:          tx.ID.String(),
		ExternalID:  tx.ExternalID,
		Amount:      tx.Amount.InexactFloat64(),
		Category:    string(tx.Category),
		Status:      string(tx.Status),
		UserID:      tx.UserID,
		UserProfile: tx.UserProfile,
		CreatedAt:   formatTimestamp(tx.CreatedAt),
		UpdatedAt:   formatTimestamp(tx.UpdatedAt),
	}
	if tx.Date != nil {
		date := formatTimestamp(*tx.Date)
		resp.Date = &date
	}
	return resp
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
