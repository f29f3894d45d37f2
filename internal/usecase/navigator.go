package usecase

import (
	"fmt"

	"nexus-bank/internal/domain"
)

const unauthenticatedMessage = "Please login to access this page."

// Navigator is the page state machine. Exactly one page is active at a time;
// protected pages are only reachable with an active session.
type Navigator struct {
	session *Session
	ledger  *Ledger
	view    View

	recent  int
	current domain.PageID
}

// NewNavigator creates a navigator that renders recentCount transactions on
// the dashboard.
func NewNavigator(session *Session, ledger *Ledger, view View, recentCount int) *Navigator {
	return &Navigator{
		session: session,
		ledger:  ledger,
		view:    view,
		recent:  recentCount,
	}
}

// Start activates the initial page selected by a deep-link locator.
// Empty or unrecognised locators select the home page.
func (n *Navigator) Start(locator string) domain.PageID {
	page, ok := domain.ParseLocator(locator)
	if !ok {
		page = domain.PageHome
	}
	active, _ := n.Goto(page)
	return active
}

// Goto makes page the active page and returns the page that actually became
// active. Protected pages redirect to the login page when nobody is logged in.
func (n *Navigator) Goto(page domain.PageID) (domain.PageID, error) {
	if !page.IsKnown() {
		return n.current, fmt.Errorf("%w: %q", domain.ErrUnknownPage, page)
	}

	if page.IsProtected() && !n.session.IsAuthenticated() {
		n.view.Notify(unauthenticatedMessage)
		n.activate(domain.PageLogin)
		return domain.PageLogin, fmt.Errorf("cannot open %s: %w", page, domain.ErrUnauthenticatedAccess)
	}

	n.activate(page)
	return page, nil
}

// Current returns the active page. It is empty before Start.
func (n *Navigator) Current() domain.PageID {
	return n.current
}

// Locator returns the deep link of the active page.
func (n *Navigator) Locator() string {
	if n.current == "" {
		return ""
	}
	return n.current.Locator()
}

// Refresh re-renders the active page.
func (n *Navigator) Refresh() {
	if n.current != "" {
		n.enter(n.current)
	}
}

func (n *Navigator) activate(page domain.PageID) {
	for _, p := range domain.Pages {
		if p != page {
			n.view.SetPageVisible(p, false)
		}
	}
	n.view.SetPageVisible(page, true)
	n.view.SetActiveLink(page)
	n.view.CloseMenu()

	n.current = page
	n.enter(page)
}

func (n *Navigator) enter(page domain.PageID) {
	switch page {
	case domain.PageDashboard:
		if user := n.session.CurrentUser(); user != nil {
			n.view.RenderDashboard(n.ledger.Summary(user, n.recent))
		}
	case domain.PageTransactions:
		if user := n.session.CurrentUser(); user != nil {
			n.view.RenderTransactions(n.ledger.ListAll(user))
		}
	case domain.PageHome:
		n.view.ShowAuthButtons(n.session.IsAuthenticated())
	}
}
