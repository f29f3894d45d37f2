package usecase

import (
	"context"

	"nexus-bank/internal/domain"
)

// UserRepository defines the interface for fetching the seed users.
// The usecase layer depends on this interface, not on a concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go
type UserRepository interface {
	GetUsers(ctx context.Context) ([]*domain.User, error)
}

// View is the presentation layer driven by the Navigator. A browser would
// toggle DOM nodes here; the console package prints instead.
type View interface {
	// SetPageVisible shows or hides the container of a single page.
	SetPageVisible(page domain.PageID, visible bool)
	// SetActiveLink highlights the navigation link of page and clears the others.
	SetActiveLink(page domain.PageID)
	CloseMenu()
	ShowAuthButtons(loggedIn bool)
	RenderDashboard(dashboard domain.Dashboard)
	RenderTransactions(transactions []domain.Transaction)
	// Notify shows a blocking user-facing message.
	Notify(message string)
}
