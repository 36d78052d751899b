package expense

import (
	"math"
	"strconv"
	"strings"
	"time"
)

type CreateExpenseRequest struct {
	UserID        string  `json:"-" validate:"required"`
	Title         string  `json:"title" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	Category      string  `json:"category" validate:"required"`
	Description   string  `json:"description"`
	Date          string  `json:"date"`
	PaymentMethod string  `json:"paymentMethod"`
}

type UpdateExpenseRequest struct {
	ID            string  `json:"-" validate:"required"`
	UserID        string  `json:"-" validate:"required"`
	Title         string  `json:"title" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	Category      string  `json:"category" validate:"required"`
	Description   string  `json:"description"`
	Date          string  `json:"date"`
	PaymentMethod string  `json:"paymentMethod"`
}

type ExpenseResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"userId"`
	Title         string  `json:"title"`
	Amount        float64 `json:"amount"`
	Category      string  `json:"category"`
	Description   string  `json:"description,omitempty"`
	Date          string  `json:"date"`
	PaymentMethod string  `json:"paymentMethod"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

type ListExpensesResponse struct {
	Expenses   []ExpenseResponse `json:"expenses"`
	Pagination Pagination        `json:"pagination"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

func NewPagination(page, limit int, total int64) Pagination {
	return Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: int(math.Ceil(float64(total) / float64(limit))),
	}
}

type StatsSummary struct {
	TotalAmount float64 `json:"totalAmount"`
	TotalCount  int64   `json:"totalCount"`
}

type CategoryStat struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int64   `json:"count"`
}

type MonthlyStat struct {
	Month int     `json:"month"`
	Total float64 `json:"total"`
	Count int64   `json:"count"`
}

type StatisticsResponse struct {
	Summary           StatsSummary   `json:"summary"`
	CategoryBreakdown []CategoryStat `json:"categoryBreakdown"`
	MonthlyBreakdown  []MonthlyStat  `json:"monthlyBreakdown"`
}

// DateWindow is an inclusive date range. A zero From or To leaves that
// end of the range unconstrained.
type DateWindow struct {
	From time.Time
	To   time.Time
}

func (w DateWindow) Bounded() bool {
	return !w.From.IsZero() || !w.To.IsZero()
}

const (
	DefaultPage  = 1
	DefaultLimit = 10

	SortOrderAsc  = "ASC"
	SortOrderDesc = "DESC"
)

// sortColumns whitelists the stored fields a caller may sort on and maps
// them to their column names.
var sortColumns = map[string]string{
	"date":          "date",
	"amount":        "amount",
	"title":         "title",
	"category":      "category",
	"paymentMethod": "payment_method",
	"createdAt":     "created_at",
}

type ListExpensesRequest struct {
	Page      string `query:"page"`
	Limit     string `query:"limit"`
	Category  string `query:"category"`
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
	SortBy    string `query:"sortBy"`
	SortOrder string `query:"sortOrder"`
}

// ListExpensesQuery is the resolved query plan: normalized filter, sort
// and pagination values ready for the repository. The owner constraint is
// not part of the plan, the repository injects it unconditionally.
type ListExpensesQuery struct {
	Category  string
	Window    DateWindow
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

func (q ListExpensesQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Plan normalizes the raw query parameters into a ListExpensesQuery,
// applying defaults and rejecting values that would make pagination
// unpredictable.
func (r ListExpensesRequest) Plan() (ListExpensesQuery, error) {
	q := ListExpensesQuery{
		Category:  r.Category,
		SortBy:    "date",
		SortOrder: SortOrderDesc,
		Page:      DefaultPage,
		Limit:     DefaultLimit,
	}

	if r.Page != "" {
		page, err := strconv.Atoi(r.Page)
		if err != nil || page < 1 {
			return ListExpensesQuery{}, ErrInvalidPage
		}
		q.Page = page
	}

	if r.Limit != "" {
		limit, err := strconv.Atoi(r.Limit)
		if err != nil || limit < 1 {
			return ListExpensesQuery{}, ErrInvalidLimit
		}
		q.Limit = limit
	}

	if r.StartDate != "" {
		from, err := ParseDateParam(r.StartDate)
		if err != nil {
			return ListExpensesQuery{}, ErrInvalidDate
		}
		q.Window.From = from
	}

	if r.EndDate != "" {
		to, err := ParseDateParam(r.EndDate)
		if err != nil {
			return ListExpensesQuery{}, ErrInvalidDate
		}
		q.Window.To = to
	}

	if r.SortBy != "" {
		if column, ok := sortColumns[r.SortBy]; ok {
			q.SortBy = column
		}
	}

	if strings.EqualFold(r.SortOrder, "asc") {
		q.SortOrder = SortOrderAsc
	}

	return q, nil
}

// ParseDateParam accepts a calendar date or a full RFC 3339 timestamp.
func ParseDateParam(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
