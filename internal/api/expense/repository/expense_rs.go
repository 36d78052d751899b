package expenseRepository

import (
	"ExpenseTracker/internal/api/expense"
	"ExpenseTracker/internal/entity"
	contextPkg "ExpenseTracker/pkg/context"
	"context"
	"database/sql"
	"errors"
	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"time"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var expenseColumns = []string{
	"id",
	"user_id",
	"title",
	"amount",
	"category",
	"description",
	"date",
	"payment_method",
	"created_at",
	"updated_at",
}

type ExpenseDB struct {
	ID            sql.NullString  `db:"id"`
	UserID        sql.NullString  `db:"user_id"`
	Title         sql.NullString  `db:"title"`
	Amount        sql.NullFloat64 `db:"amount"`
	Category      sql.NullString  `db:"category"`
	Description   sql.NullString  `db:"description"`
	Date          time.Time       `db:"date"`
	PaymentMethod sql.NullString  `db:"payment_method"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

func (r *expenseRepository) Create(c context.Context, record entity.Expense) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":             record.ID,
		"user_id":        record.UserID,
		"title":          record.Title,
		"amount":         record.Amount,
		"category":       record.Category,
		"description":    record.Description,
		"date":           record.Date,
		"payment_method": record.PaymentMethod,
		"created_at":     record.CreatedAt,
		"updated_at":     record.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateExpense, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for Create")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating expense")

		return err
	}

	return nil
}

func (r *expenseRepository) GetByID(c context.Context, id string, userID string) (entity.Expense, error) {
	requestID := contextPkg.GetRequestID(c)
	var record ExpenseDB

	argsKV := map[string]interface{}{
		"id":      id,
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetExpenseByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID named query preparation err")

		return entity.Expense{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&record); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn("GetByID no rows found")
			return entity.Expense{}, expense.ErrExpenseNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID execution err")
		return entity.Expense{}, err
	}

	return r.makeExpense(record), nil
}

func (r *expenseRepository) List(c context.Context, userID string, plan expense.ListExpensesQuery) ([]entity.Expense, int64, error) {
	requestID := contextPkg.GetRequestID(c)

	listQuery := applyExpenseFilters(psql.Select(expenseColumns...).From("expenses"), userID, plan.Category, plan.Window).
		OrderBy(plan.SortBy + " " + plan.SortOrder).
		Limit(uint64(plan.Limit)).
		Offset(uint64(plan.Offset()))

	query, args, err := listQuery.ToSql()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("List query build err")
		return nil, 0, err
	}

	var records []ExpenseDB
	if err := r.q.SelectContext(c, &records, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("List execution err")
		return nil, 0, err
	}

	countQuery, countArgs, err := applyExpenseFilters(psql.Select("COUNT(*)").From("expenses"), userID, plan.Category, plan.Window).ToSql()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("List count query build err")
		return nil, 0, err
	}

	var total int64
	if err := r.q.GetContext(c, &total, countQuery, countArgs...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("List count execution err")
		return nil, 0, err
	}

	result := make([]entity.Expense, 0, len(records))
	for _, record := range records {
		result = append(result, r.makeExpense(record))
	}

	return result, total, nil
}

func (r *expenseRepository) Update(c context.Context, record entity.Expense) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":             record.ID,
		"user_id":        record.UserID,
		"title":          record.Title,
		"amount":         record.Amount,
		"category":       record.Category,
		"description":    record.Description,
		"date":           record.Date,
		"payment_method": record.PaymentMethod,
		"updated_at":     record.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryUpdateExpense, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Update named query preparation err")

		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Update execution err")

		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Update rows affected err")

		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Update no rows affected")

		return expense.ErrExpenseNotFound
	}

	return nil
}

func (r *expenseRepository) Delete(c context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":      id,
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryDeleteExpense, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Delete named query preparation err")

		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Delete execution err")

		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Delete rows affected err")

		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Delete no rows affected")

		return expense.ErrExpenseNotFound
	}

	return nil
}

// applyExpenseFilters constrains a query to the owning user and the
// optional category and inclusive date range. The owner predicate is
// always applied first and is never optional.
func applyExpenseFilters(builder sq.SelectBuilder, userID string, category string, window expense.DateWindow) sq.SelectBuilder {
	builder = builder.Where(sq.Eq{"user_id": userID})

	if category != "" {
		builder = builder.Where(sq.Eq{"category": category})
	}
	if !window.From.IsZero() {
		builder = builder.Where(sq.GtOrEq{"date": window.From})
	}
	if !window.To.IsZero() {
		builder = builder.Where(sq.LtOrEq{"date": window.To})
	}

	return builder
}

func (r *expenseRepository) makeExpense(record ExpenseDB) entity.Expense {
	return entity.Expense{
		ID:            record.ID.String,
		UserID:        record.UserID.String,
		Title:         record.Title.String,
		Amount:        record.Amount.Float64,
		Category:      record.Category.String,
		Description:   record.Description.String,
		Date:          record.Date,
		PaymentMethod: record.PaymentMethod.String,
		CreatedAt:     record.CreatedAt,
		UpdatedAt:     record.UpdatedAt,
	}
}
