package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/willbank/internal/client/client"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context, args []string) error
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error
	Me(ctx context.Context, args []string) error
	ChangePassword(ctx context.Context, args []string) error
	Accounts(ctx context.Context, args []string) error
	Balance(ctx context.Context, args []string) error
	History(ctx context.Context, args []string) error
	Transfer(ctx context.Context, args []string) error
	Deposit(ctx context.Context, args []string) error
	Withdraw(ctx context.Context, args []string) error
	Notifications(ctx context.Context, args []string) error
	Dashboard(ctx context.Context, args []string) error
	Status(ctx context.Context, args []string) error
}

const (
	loggedOutHelp = `Available commands:
  register                               create a client and log in
  login [email]                          authenticate
  status                                 service health and session state
  exit | quit                            leave the program`

	loggedInHelp = `Available commands:
  me [refresh]                           show your profile
  passwd                                 change password
  accounts                               list your accounts
  balance <accountId>                    show an account balance
  history <accountId> [from to]          list transactions (dates YYYY-MM-DD)
  transfer <from> <to|IBAN> <amount> [description]
  deposit <accountId> <amount> [description]
  withdraw <accountId> <amount> [description]
  notifications [prefs|test]             list notifications
  dashboard [statement <id> <from> <to>] overview or account statement
  status                                 service health and session state
  logout                                 remove the stored session
  exit | quit                            leave the program`
)

// protected lists the commands that need a stored session.
var protected = map[string]bool{
	"logout": true, "me": true, "passwd": true, "accounts": true, "balance": true,
	"history": true, "transfer": true, "deposit": true, "withdraw": true,
	"notifications": true, "dashboard": true,
}

// runREPL starts a simple read–eval–print loop for the WillBank CLI.
//
// It reads a line from reader, parses the first token as the command and
// passes the remaining tokens to the matching method on a. The loop exits
// on EOF or when the user types "exit" or "quit". Errors returned by the
// handlers are reported and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("wb %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if protected[cmd] && !a.isLoggedIn() {
			printlnFn("Please log in first")
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(loggedInHelp)
			} else {
				printlnFn(loggedOutHelp)
			}
		case "register":
			err = a.Register(ctx, args)
		case "login":
			err = a.Login(ctx, args)
		case "logout":
			err = a.Logout(ctx, args)
		case "me":
			err = a.Me(ctx, args)
		case "passwd":
			err = a.ChangePassword(ctx, args)
		case "accounts":
			err = a.Accounts(ctx, args)
		case "balance":
			err = a.Balance(ctx, args)
		case "history":
			err = a.History(ctx, args)
		case "transfer":
			err = a.Transfer(ctx, args)
		case "deposit":
			err = a.Deposit(ctx, args)
		case "withdraw":
			err = a.Withdraw(ctx, args)
		case "notifications":
			err = a.Notifications(ctx, args)
		case "dashboard":
			err = a.Dashboard(ctx, args)
		case "status":
			err = a.Status(ctx, args)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if msg := describeError(err); msg != "" {
			printlnFn("Error:", msg)
		}
	}
}

// describeError turns a handler error into a console message. Session
// expiry is announced by the expiry hook, so it yields an empty string.
func describeError(err error) string {
	var se *client.ServerError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, client.ErrSessionExpired):
		return ""
	case errors.As(err, &se):
		return se.Error()
	case errors.Is(err, client.ErrTimeout):
		return "request timed out"
	case errors.Is(err, client.ErrNetwork):
		return "service unreachable"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return err.Error()
	}
}
