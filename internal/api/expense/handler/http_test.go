package expenseHandler_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ExpenseTracker/internal/api/expense"
	expenseHandler "ExpenseTracker/internal/api/expense/handler"
	"ExpenseTracker/internal/config"
	"ExpenseTracker/internal/entity"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

type stubMiddleware struct{}

func (s *stubMiddleware) NewRateLimiter(ctx *fiber.Ctx) error {
	return ctx.Next()
}

func (s *stubMiddleware) NewTokenMiddleware(ctx *fiber.Ctx) error {
	ctx.Locals("user", entity.UserLoginData{
		ID:    "user-1",
		Name:  "Tester",
		Email: "tester@example.com",
	})
	return ctx.Next()
}

func (s *stubMiddleware) NewRequestIDMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		return ctx.Next()
	}
}

func (s *stubMiddleware) GetRequestID(*fiber.Ctx) string {
	return "test"
}

type stubExpenseService struct{}

func (s *stubExpenseService) CreateExpense(_ context.Context, req expense.CreateExpenseRequest) (entity.Expense, error) {
	return entity.Expense{ID: "exp-1", UserID: req.UserID, Title: req.Title}, nil
}

func (s *stubExpenseService) GetExpenseByID(_ context.Context, id string, userID string) (entity.Expense, error) {
	return entity.Expense{ID: id, UserID: userID}, nil
}

func (s *stubExpenseService) ListExpenses(context.Context, string, expense.ListExpensesQuery) ([]entity.Expense, int64, error) {
	return []entity.Expense{}, 0, nil
}

func (s *stubExpenseService) UpdateExpense(_ context.Context, req expense.UpdateExpenseRequest) (entity.Expense, error) {
	return entity.Expense{ID: req.ID, UserID: req.UserID}, nil
}

func (s *stubExpenseService) DeleteExpense(context.Context, string, string) error {
	return nil
}

func (s *stubExpenseService) GetStatistics(context.Context, string, int, int) (expense.StatisticsResponse, error) {
	return expense.StatisticsResponse{
		CategoryBreakdown: []expense.CategoryStat{},
		MonthlyBreakdown:  []expense.MonthlyStat{},
	}, nil
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	app := config.NewFiber(logger)
	router := app.Group("/api/v1")

	h := expenseHandler.New(logger, config.NewValidator(), &stubMiddleware{}, &stubExpenseService{})
	h.Start(router)

	return app
}

func TestRoutes_CollectionPathsResolveWithoutTrailingSlash(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/expenses", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := strings.NewReader(`{"title":"Lunch","amount":12.30,"category":"Food & Dining"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/expenses", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestRoutes_ItemAndStatsPathsResolve(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/expenses/stats", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/expenses/exp-1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/api/v1/expenses/exp-1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
