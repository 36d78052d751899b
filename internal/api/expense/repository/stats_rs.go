package expenseRepository

import (
	"ExpenseTracker/internal/api/expense"
	contextPkg "ExpenseTracker/pkg/context"
	"context"
	"github.com/sirupsen/logrus"
)

func (r *expenseRepository) Summary(c context.Context, userID string, window expense.DateWindow) (expense.StatsSummary, error) {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := applyExpenseFilters(
		psql.Select("COALESCE(SUM(amount), 0) AS total", "COUNT(*) AS count").From("expenses"),
		userID, "", window,
	).ToSql()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Summary query build err")
		return expense.StatsSummary{}, err
	}

	var summary expense.StatsSummary
	if err := r.q.QueryRowxContext(c, query, args...).Scan(&summary.TotalAmount, &summary.TotalCount); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Summary execution err")
		return expense.StatsSummary{}, err
	}

	return summary, nil
}

func (r *expenseRepository) CategoryBreakdown(c context.Context, userID string, window expense.DateWindow) ([]expense.CategoryStat, error) {
	requestID := contextPkg.GetRequestID(c)

	// Ties on total are broken by category name so the ordering is
	// deterministic across runs.
	query, args, err := applyExpenseFilters(
		psql.Select("category", "COALESCE(SUM(amount), 0) AS total", "COUNT(*) AS count").From("expenses"),
		userID, "", window,
	).GroupBy("category").OrderBy("total DESC", "category ASC").ToSql()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CategoryBreakdown query build err")
		return nil, err
	}

	rows, err := r.q.QueryxContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CategoryBreakdown execution err")
		return nil, err
	}
	defer rows.Close()

	breakdown := make([]expense.CategoryStat, 0)
	for rows.Next() {
		var stat expense.CategoryStat
		if err := rows.Scan(&stat.Category, &stat.Total, &stat.Count); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("CategoryBreakdown scan err")
			return nil, err
		}
		breakdown = append(breakdown, stat)
	}

	return breakdown, rows.Err()
}

func (r *expenseRepository) MonthlyBreakdown(c context.Context, userID string, window expense.DateWindow) ([]expense.MonthlyStat, error) {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := applyExpenseFilters(
		psql.Select("EXTRACT(MONTH FROM date)::int AS month", "COALESCE(SUM(amount), 0) AS total", "COUNT(*) AS count").From("expenses"),
		userID, "", window,
	).GroupBy("month").OrderBy("month ASC").ToSql()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("MonthlyBreakdown query build err")
		return nil, err
	}

	rows, err := r.q.QueryxContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("MonthlyBreakdown execution err")
		return nil, err
	}
	defer rows.Close()

	breakdown := make([]expense.MonthlyStat, 0)
	for rows.Next() {
		var stat expense.MonthlyStat
		if err := rows.Scan(&stat.Month, &stat.Total, &stat.Count); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("MonthlyBreakdown scan err")
			return nil, err
		}
		breakdown = append(breakdown, stat)
	}

	return breakdown, rows.Err()
}
