package entity

import "time"

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyINR Currency = "INR"
	CurrencyCAD Currency = "CAD"
	CurrencyAUD Currency = "AUD"
)

func IsValidCurrency(currency string) bool {
	switch Currency(currency) {
	case CurrencyUSD, CurrencyEUR, CurrencyGBP, CurrencyINR, CurrencyCAD, CurrencyAUD:
		return true
	default:
		return false
	}
}

type User struct {
	ID            string    `db:"id"`
	Name          string    `db:"name"`
	Email         string    `db:"email"`
	Password      string    `db:"password"`
	Currency      string    `db:"currency"`
	MonthlyBudget float64   `db:"monthly_budget"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type UserLoginData struct {
	ID    string
	Name  string
	Email string
}
