package expenseService

import (
	"ExpenseTracker/internal/api/expense"
	expenseRepository "ExpenseTracker/internal/api/expense/repository"
	"ExpenseTracker/internal/entity"
	"ExpenseTracker/pkg/redis"
	"ExpenseTracker/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IExpenseService interface {
	CreateExpense(ctx context.Context, req expense.CreateExpenseRequest) (entity.Expense, error)
	GetExpenseByID(ctx context.Context, id string, userID string) (entity.Expense, error)
	ListExpenses(ctx context.Context, userID string, plan expense.ListExpensesQuery) ([]entity.Expense, int64, error)
	UpdateExpense(ctx context.Context, req expense.UpdateExpenseRequest) (entity.Expense, error)
	DeleteExpense(ctx context.Context, id string, userID string) error
	GetStatistics(ctx context.Context, userID string, year int, month int) (expense.StatisticsResponse, error)
}

type expenseService struct {
	log               *logrus.Logger
	expenseRepository expenseRepository.Repository
	cache             redis.ICache
	utils             utils.IUtils
}

func NewExpenseService(log *logrus.Logger, er expenseRepository.Repository, cache redis.ICache, utils utils.IUtils) IExpenseService {
	return &expenseService{
		log:               log,
		expenseRepository: er,
		cache:             cache,
		utils:             utils,
	}
}
