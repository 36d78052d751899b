package entity

import (
	"ExpenseTracker/internal/api/expense"
	"strings"
	"time"
	"unicode/utf8"
)

type ExpenseCategory string

const (
	ExpenseCategoryFoodAndDining  ExpenseCategory = "Food & Dining"
	ExpenseCategoryTransportation ExpenseCategory = "Transportation"
	ExpenseCategoryShopping       ExpenseCategory = "Shopping"
	ExpenseCategoryEntertainment  ExpenseCategory = "Entertainment"
	ExpenseCategoryBills          ExpenseCategory = "Bills & Utilities"
	ExpenseCategoryHealthcare     ExpenseCategory = "Healthcare"
	ExpenseCategoryTravel         ExpenseCategory = "Travel"
	ExpenseCategoryEducation      ExpenseCategory = "Education"
	ExpenseCategoryBusiness       ExpenseCategory = "Business"
	ExpenseCategoryOther          ExpenseCategory = "Other"
)

type PaymentMethod string

const (
	PaymentMethodCash          PaymentMethod = "Cash"
	PaymentMethodCreditCard    PaymentMethod = "Credit Card"
	PaymentMethodDebitCard     PaymentMethod = "Debit Card"
	PaymentMethodBankTransfer  PaymentMethod = "Bank Transfer"
	PaymentMethodDigitalWallet PaymentMethod = "Digital Wallet"
)

func IsValidExpenseCategory(category string) bool {
	switch ExpenseCategory(category) {
	case ExpenseCategoryFoodAndDining, ExpenseCategoryTransportation, ExpenseCategoryShopping,
		ExpenseCategoryEntertainment, ExpenseCategoryBills, ExpenseCategoryHealthcare,
		ExpenseCategoryTravel, ExpenseCategoryEducation, ExpenseCategoryBusiness,
		ExpenseCategoryOther:
		return true
	default:
		return false
	}
}

func IsValidPaymentMethod(method string) bool {
	switch PaymentMethod(method) {
	case PaymentMethodCash, PaymentMethodCreditCard, PaymentMethodDebitCard,
		PaymentMethodBankTransfer, PaymentMethodDigitalWallet:
		return true
	default:
		return false
	}
}

const minExpenseAmount = 0.01

type Expense struct {
	ID            string    `db:"id"`
	UserID        string    `db:"user_id"`
	Title         string    `db:"title"`
	Amount        float64   `db:"amount"`
	Category      string    `db:"category"`
	Description   string    `db:"description"`
	Date          time.Time `db:"date"`
	PaymentMethod string    `db:"payment_method"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// Validate normalizes free-text fields and enforces the record invariants.
// Title and description are trimmed in place before the length checks.
func (e *Expense) Validate() error {
	e.Title = strings.TrimSpace(e.Title)
	if titleLen := utf8.RuneCountInString(e.Title); titleLen < 1 || titleLen > 100 {
		return expense.ErrInvalidTitle
	}

	if e.Amount < minExpenseAmount {
		return expense.ErrInvalidAmount
	}

	if !IsValidExpenseCategory(e.Category) {
		return expense.ErrInvalidCategory
	}

	e.Description = strings.TrimSpace(e.Description)
	if utf8.RuneCountInString(e.Description) > 500 {
		return expense.ErrInvalidDescription
	}

	if e.PaymentMethod == "" {
		e.PaymentMethod = string(PaymentMethodCash)
	}
	if !IsValidPaymentMethod(e.PaymentMethod) {
		return expense.ErrInvalidPaymentMethod
	}

	return nil
}
