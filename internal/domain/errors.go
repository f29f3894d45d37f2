package domain

import "errors"

var (
	// ErrInvalidCredentials is returned when no seed user matches both email and password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidInput is returned for a missing recipient or a non-positive/unparseable amount.
	ErrInvalidInput = errors.New("invalid transfer input")

	// ErrInsufficientFunds is returned when the amount exceeds the balance.
	ErrInsufficientFunds = errors.New("insufficient balance")

	// ErrUnauthenticatedAccess is returned when a protected page or operation is used without a session.
	ErrUnauthenticatedAccess = errors.New("login required")

	ErrUnknownPage     = errors.New("unknown page")
	ErrLoginInProgress = errors.New("login already in progress")

	// ErrLedgerMismatch means a balance no longer equals opening balance plus the sum of transactions.
	ErrLedgerMismatch = errors.New("balance does not match transaction history")
)
