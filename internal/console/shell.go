package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"nexus-bank/internal/app"
	"nexus-bank/internal/domain"
)

const helpText = `commands:
  goto <page>                         open home, login, dashboard, transfer or transactions
  login <email> <password>            sign in
  logout                              sign out
  transfer <recipient> <amount> [note]
  menu                                toggle the navigation menu
  help                                show this text
  quit                                exit`

// Shell reads commands line by line and feeds them to the App.
type Shell struct {
	app    *app.App
	view   *View
	out    io.Writer
	logger *slog.Logger
}

func NewShell(a *app.App, view *View, out io.Writer, logger *slog.Logger) *Shell {
	return &Shell{app: a, view: view, out: out, logger: logger}
}

// Run processes commands from in until quit, EOF or ctx is done.
// Command failures are reported to the user and never end the loop.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(s.out, "%s> ", s.app.Current())
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if quit := s.Exec(ctx, scanner.Text()); quit {
			return nil
		}
	}
}

// Exec runs a single command line. It returns true for quit.
func (s *Shell) Exec(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	cmd, args := strings.ToLower(fields[0]), fields[1:]
	switch cmd {
	case "quit", "exit":
		return true
	case "help":
		fmt.Fprintln(s.out, helpText)
	case "menu":
		s.view.ToggleMenu()
	case "goto", "go":
		if len(args) != 1 {
			s.usage("goto <page>")
			return false
		}
		s.app.Navigate(domain.PageID(strings.TrimPrefix(args[0], "#")))
	case "login":
		if len(args) != 2 {
			s.usage("login <email> <password>")
			return false
		}
		fmt.Fprintln(s.out, "Logging in...")
		s.app.SubmitLogin(ctx, NewForm(map[string]string{
			app.FieldEmail:    args[0],
			app.FieldPassword: args[1],
		}))
	case "logout":
		s.app.Logout()
	case "transfer":
		form := map[string]string{}
		if len(args) > 0 {
			form[app.FieldRecipient] = args[0]
		}
		if len(args) > 1 {
			form[app.FieldAmount] = args[1]
		}
		if len(args) > 2 {
			form[app.FieldNote] = strings.Join(args[2:], " ")
		}
		s.app.SubmitTransfer(NewForm(form))
	default:
		s.logger.Debug("unknown command", "command", cmd)
		fmt.Fprintf(s.out, "unknown command %q, try help\n", cmd)
	}
	return false
}

func (s *Shell) usage(syntax string) {
	fmt.Fprintf(s.out, "usage: %s\n", syntax)
}
