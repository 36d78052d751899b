package expenseRepository

import (
	"ExpenseTracker/internal/api/expense"
	"ExpenseTracker/internal/entity"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Expense:  &expenseRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Expense interface {
		Create(ctx context.Context, record entity.Expense) error
		GetByID(ctx context.Context, id string, userID string) (entity.Expense, error)
		List(ctx context.Context, userID string, plan expense.ListExpensesQuery) ([]entity.Expense, int64, error)
		Update(ctx context.Context, record entity.Expense) error
		Delete(ctx context.Context, id string, userID string) error
		Summary(ctx context.Context, userID string, window expense.DateWindow) (expense.StatsSummary, error)
		CategoryBreakdown(ctx context.Context, userID string, window expense.DateWindow) ([]expense.CategoryStat, error)
		MonthlyBreakdown(ctx context.Context, userID string, window expense.DateWindow) ([]expense.MonthlyStat, error)
	}

	Commit   func() error
	Rollback func() error
}

type expenseRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
