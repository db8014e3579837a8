package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"testing"
	"time"

	"github.com/o-Erebus/Financial-Analytics-Dashboard/internal/dto"
	"github.com/o-Erebus/Financial-Analytics-Dashboard/internal/models"
	"github.com/o-Erebus/Financial-Analytics-Dashboard/internal/repository/memory"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

var createdAt = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTx(id int64, category models.TransactionCategory, status models.TransactionStatus, amount string, date string, user string) *models.Transaction {
	tx := &models.Transaction{
		ExternalID: id,
		Amount:     decimal.RequireFromString(amount),
		Category:   category,
		Status:     status,
		UserID:     user,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}
	if date != "" {
		d, err := time.Parse(time.RFC3339, date)
		if err != nil {
			panic(err)
		}
		tx.Date = &d
	}
	return tx
}

// threeRecords is the canonical fixture: two paid records in January and a
// pending one in February.
func threeRecords() []*models.Transaction {
	return []*models.Transaction{
		newTx(1, models.CategoryRevenue, models.StatusPaid, "100", "2024-01-15T00:00:00Z", "user_001"),
		newTx(2, models.CategoryExpense, models.StatusPaid, "40", "2024-01-20T00:00:00Z", "user_002"),
		newTx(3, models.CategoryRevenue, models.StatusPending, "50", "2024-02-01T00:00:00Z", "user_001"),
	}
}

func newTestService(cache StatsCache, txs ...*models.Transaction) *TransactionService {
	return NewTransactionService(memory.New(txs...), cache, zap.NewNop())
}

func TestGetStats_ThreeRecords(t *testing.T) {
	svc := newTestService(nil, threeRecords()...)

	stats, err := svc.GetStats(context.Background(), dto.StatsQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := &dto.StatsResponse{
		TotalRevenue:  100,
		TotalExpenses: 40,
		NetProfit:     60,
		CategoryBreakdown: []dto.CategoryTotal{
			{Category: "Revenue", Total: 100},
			{Category: "Expense", Total: 40},
		},
		RevenueVsExpensesTrend: []dto.TrendPoint{
			{Year: 2024, Month: 1, Category: "Revenue", TotalAmount: 100},
			{Year: 2024, Month: 1, Category: "Expense", TotalAmount: 40},
		},
	}
	if !reflect.DeepEqual(stats, want) {
		t.Errorf("GetStats() =\n%+v\nwant\n%+v", stats, want)
	}
}

func TestGetStats_TotalsAgreeWithBreakdown(t *testing.T) {
	txs := []*models.Transaction{
		newTx(1, models.CategoryRevenue, models.StatusPaid, "1200.50", "2023-11-03T09:00:00Z", "user_001"),
		newTx(2, models.CategoryRevenue, models.StatusPaid, "300.25", "2023-12-24T18:30:00Z", "user_002"),
		newTx(3, models.CategoryExpense, models.StatusPaid, "80.10", "2023-12-31T23:59:59Z", "user_001"),
		newTx(4, models.CategoryExpense, models.StatusPaid, "19.90", "2024-01-01T00:00:00Z", "user_003"),
		newTx(5, models.CategoryRevenue, models.StatusPending, "999", "2024-01-05T00:00:00Z", "user_001"),
		newTx(6, models.CategoryRevenue, models.StatusPaid, "500", "", "user_002"),
		newTx(7, models.CategoryRevenue, models.StatusPaid, "75.75", "2024-01-31T12:00:00Z", "user_003"),
	}
	svc := newTestService(nil, txs...)

	queries := []dto.StatsQuery{
		{},
		{UserID: "user_001"},
		{StartDate: "2023-12-01", EndDate: "2023-12-31"},
		{StartDate: "2024-01-01"},
	}
	for _, q := range queries {
		t.Run(fmt.Sprintf("%+v", q), func(t *testing.T) {
			stats, err := svc.GetStats(context.Background(), q)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !floatEq(stats.NetProfit, stats.TotalRevenue-stats.TotalExpenses) {
				t.Errorf("netProfit %v != revenue %v - expenses %v", stats.NetProfit, stats.TotalRevenue, stats.TotalExpenses)
			}

			var breakdown float64
			for _, c := range stats.CategoryBreakdown {
				breakdown += c.Total
			}
			if !floatEq(breakdown, stats.TotalRevenue+stats.TotalExpenses) {
				t.Errorf("breakdown sum %v != revenue + expenses %v", breakdown, stats.TotalRevenue+stats.TotalExpenses)
			}

			var trendRevenue, trendExpenses float64
			for _, p := range stats.RevenueVsExpensesTrend {
				switch p.Category {
				case "Revenue":
					trendRevenue += p.TotalAmount
				case "Expense":
					trendExpenses += p.TotalAmount
				}
			}
			if !floatEq(trendRevenue, stats.TotalRevenue) {
				t.Errorf("trend revenue %v != totalRevenue %v", trendRevenue, stats.TotalRevenue)
			}
			if !floatEq(trendExpenses, stats.TotalExpenses) {
				t.Errorf("trend expenses %v != totalExpenses %v", trendExpenses, stats.TotalExpenses)
			}
		})
	}
}

func TestGetStats_ExcludesUndatedAndPending(t *testing.T) {
	svc := newTestService(nil,
		newTx(1, models.CategoryRevenue, models.StatusPaid, "10", "", "u"),
		newTx(2, models.CategoryRevenue, models.StatusPending, "20", "2024-05-01T00:00:00Z", "u"),
	)

	stats, err := svc.GetStats(context.Background(), dto.StatsQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalRevenue != 0 || stats.TotalExpenses != 0 || stats.NetProfit != 0 {
		t.Errorf("expected zero totals, got %+v", stats)
	}
	if len(stats.CategoryBreakdown) != 0 || len(stats.RevenueVsExpensesTrend) != 0 {
		t.Errorf("expected empty breakdown and trend, got %+v", stats)
	}
}

func TestGetStats_TrendOrder(t *testing.T) {
	svc := newTestService(nil,
		newTx(1, models.CategoryExpense, models.StatusPaid, "5", "2024-03-10T00:00:00Z", "u"),
		newTx(2, models.CategoryRevenue, models.StatusPaid, "7", "2024-03-11T00:00:00Z", "u"),
		newTx(3, models.CategoryExpense, models.StatusPaid, "3", "2023-12-01T00:00:00Z", "u"),
		newTx(4, models.CategoryRevenue, models.StatusPaid, "2", "2024-01-15T00:00:00Z", "u"),
	)

	stats, err := svc.GetStats(context.Background(), dto.StatsQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []string
	for _, p := range stats.RevenueVsExpensesTrend {
		got = append(got, fmt.Sprintf("%d-%02d %s", p.Year, p.Month, p.Category))
	}
	want := []string{"2023-12 Expense", "2024-01 Revenue", "2024-03 Revenue", "2024-03 Expense"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("trend order = %v, want %v", got, want)
	}
}

func TestGetStats_InvalidDate(t *testing.T) {
	svc := newTestService(nil, threeRecords()...)
	if _, err := svc.GetStats(context.Background(), dto.StatsQuery{EndDate: "31-01-2024"}); !errors.Is(err, ErrInvalidFilter) {
		t.Fatalf("expected ErrInvalidFilter, got %v", err)
	}
}

type mapCache struct {
	values map[string][]byte
	gets   int
	sets   int
}

func (c *mapCache) Get(_ context.Context, key string, dest any) (bool, error) {
	c.gets++
	data, ok := c.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dest)
}

func (c *mapCache) Set(_ context.Context, key string, value any) error {
	c.sets++
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.values[key] = data
	return nil
}

func TestGetStats_UsesCache(t *testing.T) {
	cache := &mapCache{values: make(map[string][]byte)}
	store := memory.New(threeRecords()...)
	svc := NewTransactionService(store, cache, zap.NewNop())
	ctx := context.Background()

	first, err := svc.GetStats(ctx, dto.StatsQuery{UserID: "user_001"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache write, got %d", cache.sets)
	}

	// A write the cache has not seen yet stays invisible until expiry.
	_ = store.UpsertBatch(ctx, []*models.Transaction{
		newTx(9, models.CategoryRevenue, models.StatusPaid, "1000", "2024-01-02T00:00:00Z", "user_001"),
	})

	second, err := svc.GetStats(ctx, dto.StatsQuery{UserID: "user_001"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.sets != 1 {
		t.Errorf("expected cached read, got %d writes", cache.sets)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("cached stats differ: %+v vs %+v", first, second)
	}

	other, err := svc.GetStats(ctx, dto.StatsQuery{UserID: "user_002"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if other.TotalExpenses != 40 || other.TotalRevenue != 0 {
		t.Errorf("user_002 stats = %+v", other)
	}
}

func TestStatsCacheKey(t *testing.T) {
	a, _ := BuildStatsFilter(dto.StatsQuery{UserID: "u1", StartDate: "2024-01-01", EndDate: "2024-01-31"})
	b, _ := BuildStatsFilter(dto.StatsQuery{UserID: "u1", StartDate: "2024-01-01", EndDate: "2024-02-29"})
	c, _ := BuildStatsFilter(dto.StatsQuery{})

	if statsCacheKey(a) == statsCacheKey(b) {
		t.Errorf("different ranges share key %q", statsCacheKey(a))
	}
	if got := statsCacheKey(c); got != "stats" {
		t.Errorf("unfiltered key = %q, want %q", got, "stats")
	}
	if got := statsCacheKey(a); got != "stats:from=2024-01-01&until=2024-02-01&user=u1" {
		t.Errorf("key = %q", got)
	}

	plain, _ := BuildStatsFilter(dto.StatsQuery{UserID: "user_001", StartDate: "2024-01-01"})
	crafted, _ := BuildStatsFilter(dto.StatsQuery{UserID: "user_001:from=2024-01-01"})
	if statsCacheKey(plain) == statsCacheKey(crafted) {
		t.Errorf("user id %q collides with a date-bounded key %q", *crafted.UserID, statsCacheKey(plain))
	}
	amp, _ := BuildStatsFilter(dto.StatsQuery{UserID: "u1&from=2024-01-01"})
	if statsCacheKey(amp) == statsCacheKey(plain) || statsCacheKey(amp) == statsCacheKey(a) {
		t.Errorf("user id %q collides with another key", *amp.UserID)
	}
}

func TestGetStats_CacheKeyedByWholeFilter(t *testing.T) {
	cache := &mapCache{values: make(map[string][]byte)}
	svc := NewTransactionService(memory.New(threeRecords()...), cache, zap.NewNop())
	ctx := context.Background()

	first, err := svc.GetStats(ctx, dto.StatsQuery{UserID: "user_001", StartDate: "2024-01-01"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.TotalRevenue != 100 {
		t.Fatalf("revenue = %v, want 100", first.TotalRevenue)
	}

	other, err := svc.GetStats(ctx, dto.StatsQuery{UserID: "user_001:from=2024-01-01"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if other.TotalRevenue != 0 || other.TotalExpenses != 0 {
		t.Errorf("unknown user got stats %+v, want zeros", other)
	}
	if cache.sets != 2 {
		t.Errorf("cache sets = %d, want 2", cache.sets)
	}
}

func TestListTransactions_DateRangeScenario(t *testing.T) {
	svc := newTestService(nil, threeRecords()...)

	resp, err := svc.ListTransactions(context.Background(), dto.TransactionQuery{
		StartDate: "2024-01-16",
		EndDate:   "2024-01-20",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.TotalTransactions != 1 || len(resp.Transactions) != 1 {
		t.Fatalf("expected exactly one match, got %+v", resp)
	}
	got := resp.Transactions[0]
	if got.ExternalID != 2 || got.Category != "Expense" {
		t.Errorf("matched %+v, want the Expense record", got)
	}
	if got.Date == nil || *got.Date != "2024-01-20T00:00:00.000Z" {
		t.Errorf("date = %v", got.Date)
	}
}

func TestListTransactions_TotalIndependentOfPage(t *testing.T) {
	var txs []*models.Transaction
	for i := 1; i <= 23; i++ {
		category := models.CategoryRevenue
		if i%3 == 0 {
			category = models.CategoryExpense
		}
		date := time.Date(2024, 1, i, 0, 0, 0, 0, time.UTC).Format(time.RFC3339)
		txs = append(txs, newTx(int64(i), category, models.StatusPaid, strconv.Itoa(i*10), date, "user_001"))
	}
	svc := newTestService(nil, txs...)

	tests := []struct {
		page, limit string
		wantPages   int
		wantLen     int
		wantPage    int
	}{
		{"1", "10", 3, 10, 1},
		{"3", "10", 3, 3, 3},
		{"4", "10", 3, 0, 4},
		{"1", "23", 1, 23, 1},
		{"2", "5", 5, 5, 2},
		{"1", "0", 3, 10, 1},
		{"x", "-1", 3, 10, 1},
		{"9223372036854775807", "10", 3, 0, 1_000_000},
		{"1", "9223372036854775807", 1, 23, 1},
	}
	for _, tt := range tests {
		t.Run(tt.page+"/"+tt.limit, func(t *testing.T) {
			resp, err := svc.ListTransactions(context.Background(), dto.TransactionQuery{Page: tt.page, Limit: tt.limit})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.TotalTransactions != 23 {
				t.Errorf("total = %d, want 23", resp.TotalTransactions)
			}
			if resp.TotalPages != tt.wantPages {
				t.Errorf("totalPages = %d, want %d", resp.TotalPages, tt.wantPages)
			}
			if len(resp.Transactions) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(resp.Transactions), tt.wantLen)
			}
			if resp.CurrentPage != tt.wantPage {
				t.Errorf("currentPage = %d, want %d", resp.CurrentPage, tt.wantPage)
			}
		})
	}

	filtered, err := svc.ListTransactions(context.Background(), dto.TransactionQuery{Category: "Expense", Limit: "2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filtered.TotalTransactions != 7 || filtered.TotalPages != 4 {
		t.Errorf("filtered total/pages = %d/%d, want 7/4", filtered.TotalTransactions, filtered.TotalPages)
	}
}

func TestListTransactions_SortAndFilters(t *testing.T) {
	txs := []*models.Transaction{
		newTx(1, models.CategoryRevenue, models.StatusPaid, "100", "2024-01-15T00:00:00Z", "user_001"),
		newTx(2, models.CategoryExpense, models.StatusPaid, "40", "2024-01-20T00:00:00Z", "user_002"),
		newTx(3, models.CategoryRevenue, models.StatusPending, "50", "2024-02-01T00:00:00Z", "user_001"),
		newTx(4, models.CategoryExpense, models.StatusPending, "75", "", "user_003"),
	}
	svc := newTestService(nil, txs...)

	tests := []struct {
		name string
		q    dto.TransactionQuery
		want []int64
	}{
		{"default newest first, undated last", dto.TransactionQuery{}, []int64{3, 2, 1, 4}},
		{"date ascending, undated first", dto.TransactionQuery{SortBy: "date", SortOrder: "asc"}, []int64{4, 1, 2, 3}},
		{"amount descending", dto.TransactionQuery{SortBy: "amount"}, []int64{1, 4, 3, 2}},
		{"amount bounds inclusive", dto.TransactionQuery{SortBy: "amount", SortOrder: "asc", MinAmount: "50", MaxAmount: "100"}, []int64{3, 4, 1}},
		{"status", dto.TransactionQuery{Status: "Pending", SortBy: "id", SortOrder: "asc"}, []int64{3, 4}},
		{"user", dto.TransactionQuery{UserID: "user_001", SortBy: "id", SortOrder: "asc"}, []int64{1, 3}},
		{"date range excludes undated", dto.TransactionQuery{StartDate: "2020-01-01", SortBy: "id", SortOrder: "asc"}, []int64{1, 2, 3}},
		{"search matches any term", dto.TransactionQuery{Search: "pending user_002", SortBy: "id", SortOrder: "asc"}, []int64{2, 3, 4}},
		{"search is case-insensitive", dto.TransactionQuery{Search: "EXPENSE", SortBy: "id", SortOrder: "asc"}, []int64{2, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.ListTransactions(context.Background(), tt.q)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			var got []int64
			for _, tx := range resp.Transactions {
				got = append(got, tx.ExternalID)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ids = %v, want %v", got, tt.want)
			}
			if resp.TotalTransactions != int64(len(tt.want)) {
				t.Errorf("total = %d, want %d", resp.TotalTransactions, len(tt.want))
			}
		})
	}
}

func TestListTransactions_RejectsBadInput(t *testing.T) {
	svc := newTestService(nil, threeRecords()...)
	for _, q := range []dto.TransactionQuery{
		{SortBy: "secret"},
		{StartDate: "2024/01/01"},
		{MinAmount: "lots"},
	} {
		if _, err := svc.ListTransactions(context.Background(), q); !errors.Is(err, ErrInvalidFilter) {
			t.Errorf("%+v: expected ErrInvalidFilter, got %v", q, err)
		}
	}
}

type failingStore struct {
	memory.Store
}

var errStoreDown = errors.New("connection refused")

func (*failingStore) Count(context.Context, models.TransactionFilter) (int64, error) {
	return 0, errStoreDown
}

func (*failingStore) MonthlyTotals(context.Context, models.StatsFilter) ([]models.MonthlyTotal, error) {
	return nil, errStoreDown
}

func TestStoreErrorsAreWrapped(t *testing.T) {
	svc := NewTransactionService(&failingStore{}, nil, zap.NewNop())

	_, err := svc.ListTransactions(context.Background(), dto.TransactionQuery{})
	if !errors.Is(err, errStoreDown) {
		t.Errorf("ListTransactions error = %v, want wrapped store error", err)
	}
	if errors.Is(err, ErrInvalidFilter) {
		t.Errorf("store error must not look like a client error")
	}

	if _, err := svc.GetStats(context.Background(), dto.StatsQuery{}); !errors.Is(err, errStoreDown) {
		t.Errorf("GetStats error = %v, want wrapped store error", err)
	}
}

func TestExportTransactions_CSV(t *testing.T) {
	svc := newTestService(nil, threeRecords()...)

	file, err := svc.ExportTransactions(context.Background(), dto.ExportQuery{
		TransactionQuery: dto.TransactionQuery{SortBy: "id", SortOrder: "asc"},
		Fields:           "amount, id,category,nonexistent",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if file.ContentType != "text/csv" || file.FileName != "transactions.csv" {
		t.Errorf("file = %s %s", file.ContentType, file.FileName)
	}
	if file.Rows != 3 {
		t.Errorf("rows = %d, want 3", file.Rows)
	}

	records, err := csv.NewReader(bytes.NewReader(file.Body)).ReadAll()
	if err != nil {
		t.Fatalf("invalid csv: %v", err)
	}
	want := [][]string{
		{"amount", "id", "category", "nonexistent"},
		{"100", "1", "Revenue", ""},
		{"40", "2", "Expense", ""},
		{"50", "3", "Revenue", ""},
	}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("csv =\n%v\nwant\n%v", records, want)
	}
}

func TestExportTransactions_DefaultColumnsAndFilter(t *testing.T) {
	tx := newTx(7, models.CategoryExpense, models.StatusPaid, "12.34", "2024-01-20T08:30:00Z", "user_002")
	tx.UserProfile = "https://example.com/p.png"
	svc := newTestService(nil, append(threeRecords(), tx)...)

	file, err := svc.ExportTransactions(context.Background(), dto.ExportQuery{
		TransactionQuery: dto.TransactionQuery{UserID: "user_002", SortBy: "id", SortOrder: "asc"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(file.Body)).ReadAll()
	if err != nil {
		t.Fatalf("invalid csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want header + 2", len(records))
	}
	if !reflect.DeepEqual(records[0], DefaultExportFields) {
		t.Errorf("header = %v, want %v", records[0], DefaultExportFields)
	}
	wantLast := []string{"7", "2024-01-20T08:30:00.000Z", "12.34", "Expense", "Paid", "user_002", "https://example.com/p.png"}
	if !reflect.DeepEqual(records[2], wantLast) {
		t.Errorf("row = %v, want %v", records[2], wantLast)
	}
}

func TestExportTransactions_Empty(t *testing.T) {
	svc := newTestService(nil, threeRecords()...)

	file, err := svc.ExportTransactions(context.Background(), dto.ExportQuery{
		TransactionQuery: dto.TransactionQuery{UserID: "nobody"},
	})
	if !errors.Is(err, ErrNoTransactionsToExport) {
		t.Fatalf("expected ErrNoTransactionsToExport, got %v", err)
	}
	if file != nil {
		t.Errorf("expected no file, got %+v", file)
	}
}

func TestExportTransactions_XLSX(t *testing.T) {
	svc := newTestService(nil, threeRecords()...)

	file, err := svc.ExportTransactions(context.Background(), dto.ExportQuery{
		TransactionQuery: dto.TransactionQuery{SortBy: "id", SortOrder: "asc"},
		Fields:           "id,status",
		Format:           "xlsx",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if file.FileName != "transactions.xlsx" || file.ContentType != xlsxContentType {
		t.Errorf("file = %s %s", file.ContentType, file.FileName)
	}

	wb, err := excelize.OpenReader(bytes.NewReader(file.Body))
	if err != nil {
		t.Fatalf("invalid workbook: %v", err)
	}
	defer wb.Close()

	rows, err := wb.GetRows(exportSheet)
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	want := [][]string{{"id", "status"}, {"1", "Paid"}, {"2", "Paid"}, {"3", "Pending"}}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("rows = %v, want %v", rows, want)
	}
}

func TestParseExportFields(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"", DefaultExportFields},
		{" , ,", DefaultExportFields},
		{"status,id", []string{"status", "id"}},
		{" date , amount ,", []string{"date", "amount"}},
	}
	for _, tt := range tests {
		if got := ParseExportFields(tt.raw); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseExportFields(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{5, 0, 0},
		{3, math.MaxInt, 1},
		{math.MaxInt64, 1, math.MaxInt},
	}
	for _, tt := range tests {
		if got := totalPages(tt.total, tt.limit); got != tt.want {
			t.Errorf("totalPages(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.want)
		}
	}
}

func floatEq(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
