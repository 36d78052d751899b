package entity

import (
	"strings"
	"testing"
	"time"

	"ExpenseTracker/internal/api/expense"
	"github.com/stretchr/testify/assert"
)

func validExpense() Expense {
	return Expense{
		ID:       "01J8ZQ4T9V3XK2B5N6M7P8R9S0",
		UserID:   "01J8ZQ4T9V3XK2B5N6M7P8R9S1",
		Title:    "Groceries",
		Amount:   42.50,
		Category: string(ExpenseCategoryFoodAndDining),
		Date:     time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestExpenseValidate_DefaultsPaymentMethodToCash(t *testing.T) {
	e := validExpense()

	err := e.Validate()

	assert.NoError(t, err)
	assert.Equal(t, string(PaymentMethodCash), e.PaymentMethod)
}

func TestExpenseValidate_TrimsTitleAndDescription(t *testing.T) {
	e := validExpense()
	e.Title = "  Groceries  "
	e.Description = "  weekly run  "

	err := e.Validate()

	assert.NoError(t, err)
	assert.Equal(t, "Groceries", e.Title)
	assert.Equal(t, "weekly run", e.Description)
}

func TestExpenseValidate_RejectsEmptyTitle(t *testing.T) {
	e := validExpense()
	e.Title = "   "

	err := e.Validate()

	assert.ErrorIs(t, err, expense.ErrInvalidTitle)
}

func TestExpenseValidate_RejectsTitleOverLimit(t *testing.T) {
	e := validExpense()
	e.Title = strings.Repeat("a", 101)

	err := e.Validate()

	assert.ErrorIs(t, err, expense.ErrInvalidTitle)
}

func TestExpenseValidate_TitleLimitCountsRunes(t *testing.T) {
	e := validExpense()
	e.Title = strings.Repeat("晚", 60)

	assert.NoError(t, e.Validate())

	e = validExpense()
	e.Title = strings.Repeat("晚", 100)
	assert.NoError(t, e.Validate())

	e = validExpense()
	e.Title = strings.Repeat("晚", 101)
	assert.ErrorIs(t, e.Validate(), expense.ErrInvalidTitle)
}

func TestExpenseValidate_RejectsAmountBelowMinimum(t *testing.T) {
	for _, amount := range []float64{0, -5, 0.009} {
		e := validExpense()
		e.Amount = amount

		err := e.Validate()

		assert.ErrorIs(t, err, expense.ErrInvalidAmount)
	}
}

func TestExpenseValidate_AcceptsMinimumAmount(t *testing.T) {
	e := validExpense()
	e.Amount = 0.01

	assert.NoError(t, e.Validate())
}

func TestExpenseValidate_RejectsUnknownCategory(t *testing.T) {
	e := validExpense()
	e.Category = "Groceries"

	err := e.Validate()

	assert.ErrorIs(t, err, expense.ErrInvalidCategory)
}

func TestExpenseValidate_RejectsDescriptionOverLimit(t *testing.T) {
	e := validExpense()
	e.Description = strings.Repeat("d", 501)

	err := e.Validate()

	assert.ErrorIs(t, err, expense.ErrInvalidDescription)
}

func TestExpenseValidate_DescriptionLimitCountsRunes(t *testing.T) {
	e := validExpense()
	e.Description = strings.Repeat("é", 400)

	assert.NoError(t, e.Validate())

	e = validExpense()
	e.Description = strings.Repeat("é", 501)
	assert.ErrorIs(t, e.Validate(), expense.ErrInvalidDescription)
}

func TestExpenseValidate_RejectsUnknownPaymentMethod(t *testing.T) {
	e := validExpense()
	e.PaymentMethod = "Cheque"

	err := e.Validate()

	assert.ErrorIs(t, err, expense.ErrInvalidPaymentMethod)
}

func TestIsValidExpenseCategory_CoversClosedSet(t *testing.T) {
	valid := []string{
		"Food & Dining", "Transportation", "Shopping", "Entertainment",
		"Bills & Utilities", "Healthcare", "Travel", "Education",
		"Business", "Other",
	}
	for _, c := range valid {
		assert.True(t, IsValidExpenseCategory(c), c)
	}

	assert.False(t, IsValidExpenseCategory("food & dining"))
	assert.False(t, IsValidExpenseCategory(""))
}
