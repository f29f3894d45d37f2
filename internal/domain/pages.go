package domain

import "strings"

// PageID identifies one of the pages of the front-end.
type PageID string

const (
	PageHome         PageID = "home"
	PageLogin        PageID = "login"
	PageDashboard    PageID = "dashboard"
	PageTransfer     PageID = "transfer"
	PageTransactions PageID = "transactions"
)

// Pages lists every page in navigation-bar order.
var Pages = []PageID{PageHome, PageLogin, PageDashboard, PageTransfer, PageTransactions}

// IsProtected reports whether the page requires an active session.
func (p PageID) IsProtected() bool {
	switch p {
	case PageDashboard, PageTransfer, PageTransactions:
		return true
	}
	return false
}

// IsKnown reports whether p is one of Pages.
func (p PageID) IsKnown() bool {
	for _, known := range Pages {
		if p == known {
			return true
		}
	}
	return false
}

// ParseLocator turns a deep-link locator such as "#dashboard" into a PageID.
// The second result is false when the locator is empty or names no page.
func ParseLocator(locator string) (PageID, bool) {
	id := PageID(strings.TrimPrefix(strings.TrimSpace(locator), "#"))
	if id == "" || !id.IsKnown() {
		return "", false
	}
	return id, true
}

// Locator is the inverse of ParseLocator.
func (p PageID) Locator() string {
	return "#" + string(p)
}
