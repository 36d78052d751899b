package expenseService

import (
	"ExpenseTracker/internal/api/expense"
	contextPkg "ExpenseTracker/pkg/context"
	"ExpenseTracker/pkg/redis"
	"errors"
	"fmt"
	"github.com/jinzhu/now"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"time"
)

const statsCacheTTL = 5 * time.Minute

func statsCacheKey(userID string, year int, month int) string {
	return fmt.Sprintf("expense_stats:%s:%d:%d", userID, year, month)
}

// resolveStatsWindow derives the inclusive date range from the optional
// year and month parameters. A month without a year cannot anchor a range
// and falls back to an unbounded window.
func resolveStatsWindow(year int, month int) expense.DateWindow {
	if year == 0 {
		return expense.DateWindow{}
	}

	if month >= 1 && month <= 12 {
		ref := now.With(time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC))
		return expense.DateWindow{
			From: ref.BeginningOfMonth(),
			To:   ref.EndOfMonth(),
		}
	}

	ref := now.With(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC))
	return expense.DateWindow{
		From: ref.BeginningOfYear(),
		To:   ref.EndOfYear(),
	}
}

func (s *expenseService) GetStatistics(ctx context.Context, userID string, year int, month int) (expense.StatisticsResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if month != 0 && year == 0 {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"month":      month,
		}).Warn("Month given without year, ignoring window")
		month = 0
	}

	cacheKey := statsCacheKey(userID, year, month)

	var cached expense.StatisticsResponse
	if err := s.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, redis.ErrCacheMiss) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Statistics cache read failed, recomputing")
	}

	repo, err := s.expenseRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return expense.StatisticsResponse{}, err
	}

	window := resolveStatsWindow(year, month)

	summary, err := repo.Expense.Summary(ctx, userID, window)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to compute expense summary")
		return expense.StatisticsResponse{}, expense.ErrComputeStatistics
	}

	categoryBreakdown, err := repo.Expense.CategoryBreakdown(ctx, userID, window)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to compute category breakdown")
		return expense.StatisticsResponse{}, expense.ErrComputeStatistics
	}

	monthlyBreakdown, err := repo.Expense.MonthlyBreakdown(ctx, userID, window)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to compute monthly breakdown")
		return expense.StatisticsResponse{}, expense.ErrComputeStatistics
	}

	report := expense.StatisticsResponse{
		Summary:           summary,
		CategoryBreakdown: categoryBreakdown,
		MonthlyBreakdown:  monthlyBreakdown,
	}

	if err := s.cache.SetJSON(ctx, cacheKey, report, statsCacheTTL); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Statistics cache write failed")
	}

	return report, nil
}

// invalidateStatistics drops every cached statistics window for the user.
// Cache failures are logged and swallowed, the write itself already
// succeeded.
func (s *expenseService) invalidateStatistics(ctx context.Context, userID string) {
	pattern := fmt.Sprintf("expense_stats:%s:*", userID)
	if err := s.cache.DeleteByPattern(ctx, pattern); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"user_id":    userID,
			"error":      err.Error(),
		}).Warn("Failed to invalidate statistics cache")
	}
}
