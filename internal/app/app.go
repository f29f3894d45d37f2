// Package app turns user events (form submits, link clicks) into calls on
// the session, navigator and ledger, and reports every outcome to the user.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"nexus-bank/internal/domain"
	"nexus-bank/internal/usecase"
)

// Form field names.
const (
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldRecipient = "recipient"
	FieldAmount    = "amount"
	FieldNote      = "note"
)

// Form is a submitted input form.
type Form interface {
	Value(field string) string
	// SetSubmitting disables the submit control while true.
	SetSubmitting(submitting bool)
	Reset()
}

// CurrencyFormatter renders amounts for notifications.
type CurrencyFormatter interface {
	Format(amount decimal.Decimal) string
}

// App wires the usecases to a view.
type App struct {
	session  *usecase.Session
	ledger   *usecase.Ledger
	nav      *usecase.Navigator
	view     usecase.View
	currency CurrencyFormatter
	logger   *slog.Logger
}

func New(session *usecase.Session, ledger *usecase.Ledger, nav *usecase.Navigator, view usecase.View, currency CurrencyFormatter, logger *slog.Logger) *App {
	return &App{
		session:  session,
		ledger:   ledger,
		nav:      nav,
		view:     view,
		currency: currency,
		logger:   logger,
	}
}

// Start activates the page named by the deep-link locator.
func (a *App) Start(locator string) domain.PageID {
	page := a.nav.Start(locator)
	a.logger.Debug("started", "locator", locator, "page", page)
	return page
}

// Navigate handles a navigation link.
func (a *App) Navigate(page domain.PageID) (domain.PageID, error) {
	active, err := a.nav.Goto(page)
	if errors.Is(err, domain.ErrUnknownPage) {
		a.view.Notify(fmt.Sprintf("Unknown page %q", page))
		return active, err
	}
	a.logger.Debug("navigated", "requested", page, "active", active)
	return active, err
}

// Current returns the active page.
func (a *App) Current() domain.PageID {
	return a.nav.Current()
}

// CurrentUser returns the logged-in user, or nil.
func (a *App) CurrentUser() *domain.User {
	return a.session.CurrentUser()
}

// SubmitLogin handles the login form. The submit control stays disabled
// for the whole simulated delay.
func (a *App) SubmitLogin(ctx context.Context, form Form) (*domain.User, error) {
	pending, err := a.session.BeginLogin(ctx, form.Value(FieldEmail), form.Value(FieldPassword))
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		a.view.Notify("Invalid email or password")
		return nil, err
	case errors.Is(err, domain.ErrLoginInProgress):
		return nil, err
	case err != nil:
		a.view.Notify("Login is unavailable right now")
		return nil, err
	}

	form.SetSubmitting(true)
	user, err := pending.Wait(ctx)
	form.SetSubmitting(false)
	if err != nil {
		return nil, fmt.Errorf("login abandoned: %w", err)
	}

	a.logger.Info("logged in", "account", user.AccountNumber)
	a.view.ShowAuthButtons(true)
	if _, err := a.nav.Goto(domain.PageDashboard); err != nil {
		return nil, err
	}
	form.Reset()
	return user, nil
}

// Logout ends the session and returns to the home page.
func (a *App) Logout() {
	if user := a.session.CurrentUser(); user != nil {
		a.logger.Info("logged out", "account", user.AccountNumber)
	}
	a.session.Logout()
	a.view.ShowAuthButtons(false)
	a.nav.Goto(domain.PageHome)
	a.view.Notify("Logged out successfully")
}

// SubmitTransfer handles the transfer form.
func (a *App) SubmitTransfer(form Form) (domain.Transaction, error) {
	user := a.session.CurrentUser()
	tx, err := a.ledger.Transfer(user, usecase.TransferRequest{
		Recipient: form.Value(FieldRecipient),
		Amount:    form.Value(FieldAmount),
		Note:      form.Value(FieldNote),
	})
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		a.view.Notify("Please fill all fields")
		return tx, err
	case errors.Is(err, domain.ErrInsufficientFunds):
		a.view.Notify("Insufficient balance")
		return tx, err
	case errors.Is(err, domain.ErrUnauthenticatedAccess):
		a.nav.Goto(domain.PageTransfer)
		return tx, err
	case err != nil:
		return tx, err
	}

	a.logger.Info("transfer completed",
		"account", user.AccountNumber,
		"id", tx.ID,
		"amount", tx.Amount.String(),
		"balance", user.Balance.String(),
	)
	a.view.Notify(fmt.Sprintf("%s transferred successfully!\nNew Balance: %s",
		a.currency.Format(tx.Amount.Neg()), a.currency.Format(user.Balance)))
	form.Reset()
	a.nav.Goto(domain.PageDashboard)
	return tx, nil
}
