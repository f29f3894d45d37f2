package domain

import "github.com/shopspring/decimal"

// User is a seeded account holder. Users live for the whole process and are
// only mutated by ledger transfers.
type User struct {
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Password       string          `json:"-"`
	AccountNumber  string          `json:"account_number"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	Balance        decimal.Decimal `json:"balance"`

	// Transactions are kept most-recent-first.
	Transactions []Transaction `json:"transactions"`
}

// NewUser creates a user whose current balance equals its opening balance.
func NewUser(name, email, password, accountNumber string, balance decimal.Decimal) *User {
	return &User{
		Name:           name,
		Email:          email,
		Password:       password,
		AccountNumber:  accountNumber,
		OpeningBalance: balance,
		Balance:        balance,
	}
}

// Dashboard is the view model rendered on the dashboard page.
type Dashboard struct {
	Name          string          `json:"name"`
	AccountNumber string          `json:"account_number"`
	Balance       decimal.Decimal `json:"balance"`
	Recent        []Transaction   `json:"recent_transactions"`
}
