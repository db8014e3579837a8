package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/o-Erebus/Financial-Analytics-Dashboard/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var transactionColumns = []string{
	"id", "external_id", "date", "amount", "category", "status", "user_id",
	"COALESCE(user_profile, '')", "created_at", "updated_at",
}

// dateQualityGuard keeps rows with a missing or non-finite date out of every
// aggregate. It is always ANDed under any explicit date bounds.
var dateQualityGuard = squirrel.Expr("date IS NOT NULL AND isfinite(date)")

type TransactionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTransactionRepository(db *pgxpool.Pool, logger *zap.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

// List returns one page of matching transactions in sort order.
func (r *TransactionRepository) List(ctx context.Context, f models.TransactionFilter, s models.TransactionSort, p models.Page) ([]*models.Transaction, error) {
	query := selectTransactions(f, s).
		Limit(uint64(p.Limit)).
		Offset(uint64(p.Offset()))

	return r.query(ctx, query)
}

// ListAll returns every matching transaction in sort order, unpaginated.
func (r *TransactionRepository) ListAll(ctx context.Context, f models.TransactionFilter, s models.TransactionSort) ([]*models.Transaction, error) {
	return r.query(ctx, selectTransactions(f, s))
}

func (r *TransactionRepository) Count(ctx context.Context, f models.TransactionFilter) (int64, error) {
	query := psql.Select("COUNT(*)").From("transactions")
	if conds := transactionConditions(f); len(conds) > 0 {
		query = query.Where(conds)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return total, nil
}

// MonthlyTotals sums paid amounts per (year, month, category) in a single
// grouped pass. Months are taken in UTC.
func (r *TransactionRepository) MonthlyTotals(ctx context.Context, f models.StatsFilter) ([]models.MonthlyTotal, error) {
	sql, args, err := monthlyTotalsQuery(f).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("aggregate transactions: %w", err)
	}
	defer rows.Close()

	var totals []models.MonthlyTotal
	for rows.Next() {
		var t models.MonthlyTotal
		if err := rows.Scan(&t.Year, &t.Month, &t.Category, &t.Total); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("aggregate transactions: %w", err)
	}

	return totals, nil
}

// UpsertBatch inserts transactions keyed by external id, replacing the
// mutable fields of rows that already exist. Used by the seed command.
func (r *TransactionRepository) UpsertBatch(ctx context.Context, transactions []*models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	builder := psql.Insert("transactions").
		Columns("id", "external_id", "date", "amount", "category", "status", "user_id", "user_profile", "created_at", "updated_at").
		Suffix(`ON CONFLICT (external_id) DO UPDATE SET
			date = EXCLUDED.date,
			amount = EXCLUDED.amount,
			category = EXCLUDED.category,
			status = EXCLUDED.status,
			user_id = EXCLUDED.user_id,
			user_profile = EXCLUDED.user_profile,
			updated_at = EXCLUDED.updated_at`)

	for _, tx := range transactions {
		builder = builder.Values(tx.ID, tx.ExternalID, tx.Date, tx.Amount, tx.Category, tx.Status, tx.UserID, nullable(tx.UserProfile), tx.CreatedAt, tx.UpdatedAt)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *TransactionRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func (r *TransactionRepository) query(ctx context.Context, query squirrel.SelectBuilder) ([]*models.Transaction, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	transactions := make([]*models.Transaction, 0)
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}

	return transactions, nil
}

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var tx models.Transaction
	if err := row.Scan(
		&tx.ID, &tx.ExternalID, &tx.Date, &tx.Amount, &tx.Category, &tx.Status, &tx.UserID, &tx.UserProfile, &tx.CreatedAt, &tx.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &tx, nil
}

func selectTransactions(f models.TransactionFilter, s models.TransactionSort) squirrel.SelectBuilder {
	query := psql.Select(transactionColumns...).
		From("transactions").
		OrderBy(orderByClause(s), "id ASC")

	if conds := transactionConditions(f); len(conds) > 0 {
		query = query.Where(conds)
	}
	return query
}

func monthlyTotalsQuery(f models.StatsFilter) squirrel.SelectBuilder {
	return psql.Select(
		"EXTRACT(YEAR FROM date AT TIME ZONE 'UTC')::int AS year",
		"EXTRACT(MONTH FROM date AT TIME ZONE 'UTC')::int AS month",
		"category",
		"COALESCE(SUM(amount), 0) AS total",
	).
		From("transactions").
		Where(statsConditions(f, models.StatusPaid)).
		GroupBy("year", "month", "category").
		OrderBy("year", "month", "category")
}

// transactionConditions translates the predicate into ANDed SQL clauses.
func transactionConditions(f models.TransactionFilter) squirrel.And {
	conds := squirrel.And{}
	if f.Search != "" {
		conds = append(conds, squirrel.Expr("search_vector @@ websearch_to_tsquery('simple', ?)", textSearchQuery(f.Search)))
	}
	if f.Category != nil {
		conds = append(conds, squirrel.Eq{"category": string(*f.Category)})
	}
	if f.Status != nil {
		conds = append(conds, squirrel.Eq{"status": string(*f.Status)})
	}
	if f.UserID != nil {
		conds = append(conds, squirrel.Eq{"user_id": *f.UserID})
	}
	conds = append(conds, dateRangeConditions(f.DateRange)...)
	if f.MinAmount != nil {
		conds = append(conds, squirrel.GtOrEq{"amount": *f.MinAmount})
	}
	if f.MaxAmount != nil {
		conds = append(conds, squirrel.LtOrEq{"amount": *f.MaxAmount})
	}
	return conds
}

// statsConditions starts from the date-quality guard and layers the
// caller's bounds and the fixed status slice on top.
func statsConditions(f models.StatsFilter, status models.TransactionStatus) squirrel.And {
	conds := squirrel.And{dateQualityGuard, squirrel.Eq{"status": string(status)}}
	if f.UserID != nil {
		conds = append(conds, squirrel.Eq{"user_id": *f.UserID})
	}
	return append(conds, dateRangeConditions(f.DateRange)...)
}

func dateRangeConditions(r models.DateRange) []squirrel.Sqlizer {
	var conds []squirrel.Sqlizer
	if r.From != nil {
		conds = append(conds, squirrel.GtOrEq{"date": *r.From})
	}
	if r.Until != nil {
		conds = append(conds, squirrel.Lt{"date": *r.Until})
	}
	return conds
}

// orderByClause places NULLs below every value, so they lead ascending
// sorts and trail descending ones.
func orderByClause(s models.TransactionSort) string {
	if s.Order == models.SortAsc {
		return s.Field + " ASC NULLS FIRST"
	}
	return s.Field + " DESC NULLS LAST"
}

// textSearchQuery ORs the whitespace-separated terms so a row matches when
// any term appears, as the dashboard search box expects.
func textSearchQuery(search string) string {
	return strings.Join(strings.Fields(search), " or ")
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
