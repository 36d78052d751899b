package expenseService

import (
	"errors"
	"testing"
	"time"

	"ExpenseTracker/internal/api/expense"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

func TestResolveStatsWindow_NoYearMeansUnbounded(t *testing.T) {
	window := resolveStatsWindow(0, 0)

	assert.False(t, window.Bounded())
}

func TestResolveStatsWindow_YearOnly(t *testing.T) {
	window := resolveStatsWindow(2024, 0)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), window.From)
	assert.Equal(t, 2024, window.To.Year())
	assert.Equal(t, time.December, window.To.Month())
	assert.Equal(t, 31, window.To.Day())
}

func TestResolveStatsWindow_YearAndMonth(t *testing.T) {
	window := resolveStatsWindow(2024, 3)

	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), window.From)
	assert.Equal(t, time.March, window.To.Month())
	assert.Equal(t, 31, window.To.Day())
}

func TestResolveStatsWindow_LeapFebruary(t *testing.T) {
	window := resolveStatsWindow(2024, 2)

	assert.Equal(t, 29, window.To.Day())
}

func TestGetStatistics_AssemblesReport(t *testing.T) {
	store := newFakeExpenseStore()
	store.summary = expense.StatsSummary{TotalAmount: 150.75, TotalCount: 3}
	store.categories = []expense.CategoryStat{
		{Category: "Travel", Total: 100, Count: 1},
		{Category: "Food & Dining", Total: 50.75, Count: 2},
	}
	store.months = []expense.MonthlyStat{
		{Month: 3, Total: 150.75, Count: 3},
	}
	svc := newTestService(store, newFakeCache())

	report, err := svc.GetStatistics(context.Background(), "user-1", 2024, 3)

	require.NoError(t, err)
	assert.Equal(t, store.summary, report.Summary)
	assert.Equal(t, store.categories, report.CategoryBreakdown)
	assert.Equal(t, store.months, report.MonthlyBreakdown)
}

func TestGetStatistics_PassesWindowToRepository(t *testing.T) {
	store := newFakeExpenseStore()
	svc := newTestService(store, newFakeCache())

	_, err := svc.GetStatistics(context.Background(), "user-1", 2024, 3)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), store.lastWindow.From)
}

func TestGetStatistics_MonthWithoutYearIsIgnored(t *testing.T) {
	store := newFakeExpenseStore()
	cache := newFakeCache()
	svc := newTestService(store, cache)

	_, err := svc.GetStatistics(context.Background(), "user-1", 0, 7)

	require.NoError(t, err)
	assert.False(t, store.lastWindow.Bounded())
	assert.Contains(t, cache.entries, "expense_stats:user-1:0:0")
}

func TestGetStatistics_EmptyDataKeepsSlicesNonNil(t *testing.T) {
	svc := newTestService(newFakeExpenseStore(), newFakeCache())

	report, err := svc.GetStatistics(context.Background(), "user-1", 0, 0)

	require.NoError(t, err)
	assert.Zero(t, report.Summary.TotalAmount)
	assert.Zero(t, report.Summary.TotalCount)
	assert.NotNil(t, report.CategoryBreakdown)
	assert.NotNil(t, report.MonthlyBreakdown)
	assert.Empty(t, report.CategoryBreakdown)
	assert.Empty(t, report.MonthlyBreakdown)
}

func TestGetStatistics_ServesFromCache(t *testing.T) {
	store := newFakeExpenseStore()
	store.summary = expense.StatsSummary{TotalAmount: 10, TotalCount: 1}
	cache := newFakeCache()
	svc := newTestService(store, cache)

	first, err := svc.GetStatistics(context.Background(), "user-1", 2024, 0)
	require.NoError(t, err)

	store.failSummary = errors.New("db down")

	second, err := svc.GetStatistics(context.Background(), "user-1", 2024, 0)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGetStatistics_RecomputesOnCacheReadFailure(t *testing.T) {
	store := newFakeExpenseStore()
	store.summary = expense.StatsSummary{TotalAmount: 25, TotalCount: 2}
	cache := newFakeCache()
	cache.failGet = errors.New("redis gone")
	svc := newTestService(store, cache)

	report, err := svc.GetStatistics(context.Background(), "user-1", 0, 0)

	require.NoError(t, err)
	assert.Equal(t, store.summary, report.Summary)
}

func TestGetStatistics_AggregateFailure(t *testing.T) {
	store := newFakeExpenseStore()
	store.failSummary = errors.New("db down")
	svc := newTestService(store, newFakeCache())

	_, err := svc.GetStatistics(context.Background(), "user-1", 0, 0)

	assert.ErrorIs(t, err, expense.ErrComputeStatistics)
}
