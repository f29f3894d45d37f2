package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"nexus-bank/internal/domain"
)

// TransferRequest carries the raw transfer form fields.
type TransferRequest struct {
	Recipient string
	Amount    string
	Note      string
}

// Ledger reads and mutates a user's balance and transaction history.
// Only the sender's side of a transfer is recorded.
type Ledger struct {
	ids IDGenerator
	now func() time.Time
}

// NewLedger creates a ledger. A nil ids uses UUIDGenerator.
func NewLedger(ids IDGenerator) *Ledger {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	return &Ledger{ids: ids, now: time.Now}
}

// WithClock overrides the clock used to date new transactions.
func (l *Ledger) WithClock(now func() time.Time) *Ledger {
	l.now = now
	return l
}

// ParseAmount parses a transfer amount. Only positive numbers are accepted.
func ParseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: could not parse amount '%s'", domain.ErrInvalidInput, raw)
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidInput)
	}
	return amount, nil
}

// Transfer debits the user and records the transfer at the head of their history.
func (l *Ledger) Transfer(user *domain.User, req TransferRequest) (domain.Transaction, error) {
	if user == nil {
		return domain.Transaction{}, domain.ErrUnauthenticatedAccess
	}

	recipient := strings.TrimSpace(req.Recipient)
	if recipient == "" {
		return domain.Transaction{}, fmt.Errorf("%w: recipient is required", domain.ErrInvalidInput)
	}
	amount, err := ParseAmount(req.Amount)
	if err != nil {
		return domain.Transaction{}, err
	}
	if amount.GreaterThan(user.Balance) {
		return domain.Transaction{}, domain.ErrInsufficientFunds
	}

	user.Balance = user.Balance.Sub(amount)

	tx := domain.Transaction{
		ID:          l.ids.NextID(),
		Date:        l.now().UTC().Format(time.DateOnly),
		Description: describeTransfer(recipient, req.Note),
		Amount:      amount.Neg(),
		Type:        domain.TransactionTypeDebit,
		Status:      domain.TransactionStatusCompleted,
	}
	user.Transactions = append([]domain.Transaction{tx}, user.Transactions...)
	return tx, nil
}

func describeTransfer(recipient, note string) string {
	desc := "Transfer to " + recipient
	if note = strings.TrimSpace(note); note != "" {
		desc += " (" + note + ")"
	}
	return desc
}

// ListRecent returns up to n of the most recent transactions.
func (l *Ledger) ListRecent(user *domain.User, n int) []domain.Transaction {
	if user == nil || n <= 0 {
		return []domain.Transaction{}
	}
	if n > len(user.Transactions) {
		n = len(user.Transactions)
	}
	out := make([]domain.Transaction, n)
	copy(out, user.Transactions[:n])
	return out
}

// ListAll returns the full history, most recent first.
func (l *Ledger) ListAll(user *domain.User) []domain.Transaction {
	if user == nil {
		return []domain.Transaction{}
	}
	return l.ListRecent(user, len(user.Transactions))
}

// Summary builds the dashboard view model.
func (l *Ledger) Summary(user *domain.User, recent int) domain.Dashboard {
	return domain.Dashboard{
		Name:          user.Name,
		AccountNumber: user.AccountNumber,
		Balance:       user.Balance,
		Recent:        l.ListRecent(user, recent),
	}
}

// Verify checks that the balance equals the opening balance plus the sum of
// every recorded transaction.
func (l *Ledger) Verify(user *domain.User) error {
	expected := user.OpeningBalance
	for _, tx := range user.Transactions {
		expected = expected.Add(tx.Amount)
	}
	if !expected.Equal(user.Balance) {
		return fmt.Errorf("%w: account %s has %s, history gives %s",
			domain.ErrLedgerMismatch, user.AccountNumber, user.Balance, expected)
	}
	return nil
}
