package dto

// TransactionQuery is the raw, loosely-typed parameter bag accepted by the
// listing and export endpoints.
type TransactionQuery struct {
	Page      string `query:"page"`
	Limit     string `query:"limit"`
	SortBy    string `query:"sortBy"`
	SortOrder string `query:"sortOrder"`
	Search    string `query:"search"`
	Category  string `query:"category"`
	Status    string `query:"status"`
	UserID    string `query:"user_id"`
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
	MinAmount string `query:"minAmount"`
	MaxAmount string `query:"maxAmount"`
}

// ExportQuery extends the listing filters with the column selection.
type ExportQuery struct {
	TransactionQuery
	Fields string `query:"fields"`
	Format string `query:"format" validate:"omitempty,oneof=csv xlsx"`
}

type StatsQuery struct {
	UserID    string `query:"user_id"`
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
}

type TransactionResponse struct {
	ID          string  `json:"_id"`
	ExternalID  int64   `json:"id"`
	Date        *string `json:"date"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Status      string  `json:"status"`
	UserID      string  `json:"user_id"`
	UserProfile string  `json:"user_profile,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type TransactionListResponse struct {
	Transactions      []TransactionResponse `json:"transactions"`
	CurrentPage       int                   `json:"currentPage"`
	TotalPages        int                   `json:"totalPages"`
	TotalTransactions int64                 `json:"totalTransactions"`
}

type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

type TrendPoint struct {
	Year        int     `json:"year"`
	Month       int     `json:"month"`
	Category    string  `json:"category"`
	TotalAmount float64 `json:"totalAmount"`
}

type StatsResponse struct {
	TotalRevenue           float64         `json:"totalRevenue"`
	TotalExpenses          float64         `json:"totalExpenses"`
	NetProfit              float64         `json:"netProfit"`
	CategoryBreakdown      []CategoryTotal `json:"categoryBreakdown"`
	RevenueVsExpensesTrend []TrendPoint    `json:"revenueVsExpensesTrend"`
}

// ExportFile is a fully rendered export ready to be sent as an attachment.
type ExportFile struct {
	FileName    string
	ContentType string
	Body        []byte
	Rows        int
}
