package console

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"nexus-bank/internal/domain"
)

// Formatter renders amounts.
type Formatter interface {
	Format(amount decimal.Decimal) string
}

// View renders pages as plain text. It keeps the same visibility state a
// browser would keep in the DOM so the active page can be inspected.
type View struct {
	out      io.Writer
	currency Formatter

	visible  map[domain.PageID]bool
	active   domain.PageID
	menuOpen bool
	loggedIn bool
}

func NewView(out io.Writer, currency Formatter) *View {
	return &View{
		out:      out,
		currency: currency,
		visible:  make(map[domain.PageID]bool),
	}
}

func (v *View) SetPageVisible(page domain.PageID, visible bool) {
	v.visible[page] = visible
	if visible {
		fmt.Fprintf(v.out, "== %s ==\n", strings.ToUpper(string(page)))
	}
}

func (v *View) SetActiveLink(page domain.PageID) {
	v.active = page
}

func (v *View) CloseMenu() {
	v.menuOpen = false
}

// ToggleMenu opens or closes the navigation menu.
func (v *View) ToggleMenu() {
	v.menuOpen = !v.menuOpen
	if v.menuOpen {
		v.printMenu()
	}
}

func (v *View) ShowAuthButtons(loggedIn bool) {
	v.loggedIn = loggedIn
	if loggedIn {
		fmt.Fprintln(v.out, "[logout]")
	} else {
		fmt.Fprintln(v.out, "[login]")
	}
}

func (v *View) RenderDashboard(d domain.Dashboard) {
	fmt.Fprintf(v.out, "Welcome, %s\n", d.Name)
	fmt.Fprintf(v.out, "Account: %s\n", d.AccountNumber)
	fmt.Fprintf(v.out, "Balance: %s\n", v.currency.Format(d.Balance))
	fmt.Fprintln(v.out, "Recent transactions:")

	tw := tabwriter.NewWriter(v.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tDESCRIPTION\tAMOUNT\tTYPE")
	for _, tx := range d.Recent {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", tx.Date, tx.Description, v.currency.Format(tx.Amount), tx.Type)
	}
	tw.Flush()
}

func (v *View) RenderTransactions(transactions []domain.Transaction) {
	tw := tabwriter.NewWriter(v.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tDESCRIPTION\tAMOUNT\tSTATUS")
	for _, tx := range transactions {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", tx.ID, tx.Date, tx.Description, v.currency.Format(tx.Amount), tx.Status)
	}
	tw.Flush()
}

func (v *View) Notify(message string) {
	fmt.Fprintf(v.out, "! %s\n", message)
}

// Visible reports whether page is currently shown.
func (v *View) Visible(page domain.PageID) bool {
	return v.visible[page]
}

// ActiveLink returns the highlighted navigation link.
func (v *View) ActiveLink() domain.PageID {
	return v.active
}

// MenuOpen reports whether the navigation menu is open.
func (v *View) MenuOpen() bool {
	return v.menuOpen
}

func (v *View) printMenu() {
	for _, p := range domain.Pages {
		marker := " "
		if p == v.active {
			marker = "*"
		}
		fmt.Fprintf(v.out, " %s %s\n", marker, p)
	}
}
