package expense

import (
	"ExpenseTracker/pkg/response"
	"net/http"
)

var (
	ErrExpenseNotFound      = response.NewError(http.StatusNotFound, "expense not found")
	ErrInvalidTitle         = response.NewError(http.StatusBadRequest, "title must be between 1 and 100 characters")
	ErrInvalidAmount        = response.NewError(http.StatusBadRequest, "amount must be greater than 0")
	ErrInvalidCategory      = response.NewError(http.StatusBadRequest, "invalid expense category")
	ErrInvalidPaymentMethod = response.NewError(http.StatusBadRequest, "invalid payment method")
	ErrInvalidDescription   = response.NewError(http.StatusBadRequest, "description cannot be more than 500 characters")
	ErrInvalidDate          = response.NewError(http.StatusBadRequest, "invalid date format")
	ErrInvalidPage          = response.NewError(http.StatusBadRequest, "page must be a positive number")
	ErrInvalidLimit         = response.NewError(http.StatusBadRequest, "limit must be a positive number")
	ErrCreateExpense        = response.NewError(http.StatusInternalServerError, "failed to create expense")
	ErrUpdateExpense        = response.NewError(http.StatusInternalServerError, "failed to update expense")
	ErrDeleteExpense        = response.NewError(http.StatusInternalServerError, "failed to delete expense")
	ErrComputeStatistics    = response.NewError(http.StatusInternalServerError, "failed to compute expense statistics")
)
