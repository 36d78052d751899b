package expense

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlan_Defaults(t *testing.T) {
	q, err := ListExpensesRequest{}.Plan()

	require.NoError(t, err)
	assert.Equal(t, DefaultPage, q.Page)
	assert.Equal(t, DefaultLimit, q.Limit)
	assert.Equal(t, "date", q.SortBy)
	assert.Equal(t, SortOrderDesc, q.SortOrder)
	assert.Empty(t, q.Category)
	assert.False(t, q.Window.Bounded())
}

func TestPlan_RejectsPageBelowOne(t *testing.T) {
	for _, page := range []string{"0", "-1", "abc"} {
		_, err := ListExpensesRequest{Page: page}.Plan()
		assert.ErrorIs(t, err, ErrInvalidPage, page)
	}
}

func TestPlan_RejectsLimitBelowOne(t *testing.T) {
	for _, limit := range []string{"0", "-3", "ten"} {
		_, err := ListExpensesRequest{Limit: limit}.Plan()
		assert.ErrorIs(t, err, ErrInvalidLimit, limit)
	}
}

func TestPlan_MapsSortColumns(t *testing.T) {
	cases := map[string]string{
		"date":          "date",
		"amount":        "amount",
		"title":         "title",
		"category":      "category",
		"paymentMethod": "payment_method",
		"createdAt":     "created_at",
	}

	for param, column := range cases {
		q, err := ListExpensesRequest{SortBy: param}.Plan()
		require.NoError(t, err)
		assert.Equal(t, column, q.SortBy)
	}
}

func TestPlan_UnknownSortByFallsBackToDate(t *testing.T) {
	q, err := ListExpensesRequest{SortBy: "amount; DROP TABLE expenses"}.Plan()

	require.NoError(t, err)
	assert.Equal(t, "date", q.SortBy)
}

func TestPlan_NormalizesSortOrder(t *testing.T) {
	q, err := ListExpensesRequest{SortOrder: "ASC"}.Plan()
	require.NoError(t, err)
	assert.Equal(t, SortOrderAsc, q.SortOrder)

	q, err = ListExpensesRequest{SortOrder: "asc"}.Plan()
	require.NoError(t, err)
	assert.Equal(t, SortOrderAsc, q.SortOrder)

	q, err = ListExpensesRequest{SortOrder: "descending"}.Plan()
	require.NoError(t, err)
	assert.Equal(t, SortOrderDesc, q.SortOrder)
}

func TestPlan_ParsesDateWindow(t *testing.T) {
	q, err := ListExpensesRequest{
		StartDate: "2024-03-01",
		EndDate:   "2024-03-31",
	}.Plan()

	require.NoError(t, err)
	assert.True(t, q.Window.Bounded())
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), q.Window.From)
	assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), q.Window.To)
}

func TestPlan_HalfOpenWindowIsBounded(t *testing.T) {
	q, err := ListExpensesRequest{StartDate: "2024-01-01"}.Plan()

	require.NoError(t, err)
	assert.True(t, q.Window.Bounded())
	assert.True(t, q.Window.To.IsZero())
}

func TestPlan_RejectsMalformedDates(t *testing.T) {
	_, err := ListExpensesRequest{StartDate: "03/01/2024"}.Plan()
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = ListExpensesRequest{EndDate: "not-a-date"}.Plan()
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestParseDateParam_AcceptsRFC3339(t *testing.T) {
	parsed, err := ParseDateParam("2024-03-15T10:30:00Z")

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC), parsed)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, ListExpensesQuery{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 20, ListExpensesQuery{Page: 3, Limit: 10}.Offset())
	assert.Equal(t, 35, ListExpensesQuery{Page: 8, Limit: 5}.Offset())
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 10, 23)

	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, int64(23), p.Total)
	assert.Equal(t, 3, p.Pages)
}

func TestNewPagination_EmptyResult(t *testing.T) {
	p := NewPagination(1, 10, 0)

	assert.Equal(t, 0, p.Pages)
}

func TestNewPagination_ExactMultiple(t *testing.T) {
	p := NewPagination(1, 10, 30)

	assert.Equal(t, 3, p.Pages)
}
