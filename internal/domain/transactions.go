package domain

import "github.com/shopspring/decimal"

// TransactionType defines the nature of the transaction (Debit or Credit).
type TransactionType string

const (
	TransactionTypeDebit  TransactionType = "Debit"
	TransactionTypeCredit TransactionType = "Credit"
)

// TransactionStatus is the settlement state shown in the history table.
type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "Completed"
)

// Transaction is a single entry in a user's ledger. It is never modified
// after it has been recorded.
type Transaction struct {
	ID          string            `json:"id"`
	Date        string            `json:"date"` // YYYY-MM-DD, UTC
	Description string            `json:"desc"`
	Amount      decimal.Decimal   `json:"amount"` // negative for debits
	Type        TransactionType   `json:"type"`
	Status      TransactionStatus `json:"status"`
}

// IsDebit reports whether the transaction moved money out of the account.
func (t Transaction) IsDebit() bool {
	return t.Amount.IsNegative()
}
