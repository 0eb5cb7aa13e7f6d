package cli

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/willbank/internal/client/models"
)

// History prints an account's transactions:
//
//	history <accountId> [from to]
//
// Dates are YYYY-MM-DD; the range covers both days in full.
func (a *App) History(ctx context.Context, args []string) error {
	s, err := a.arg(args, 0, "Enter account id")
	if err != nil {
		return err
	}
	id, err := parseID(s)
	if err != nil {
		return err
	}

	var txs []models.Transaction
	if len(args) >= 3 {
		from, err := parseDate(args[1])
		if err != nil {
			return err
		}
		to, err := parseDate(args[2])
		if err != nil {
			return err
		}
		txs, err = a.transactionService.ByDateRange(ctx, id, from, endOfDay(to))
		if err != nil {
			return err
		}
	} else {
		txs, err = a.transactionService.ByAccount(ctx, id)
		if err != nil {
			return err
		}
	}

	printTransactions(a.out, txs)
	return nil
}

func endOfDay(t time.Time) time.Time {
	return t.Add(24*time.Hour - time.Second)
}

// Transfer moves money between accounts. The destination is an account id
// or, when it is not numeric, an IBAN.
func (a *App) Transfer(ctx context.Context, args []string) error {
	fromS, err := a.arg(args, 0, "From account id")
	if err != nil {
		return err
	}
	from, err := parseID(fromS)
	if err != nil {
		return err
	}

	dest, err := a.arg(args, 1, "To account id or IBAN")
	if err != nil {
		return err
	}
	var (
		to   int64
		iban string
	)
	if id, err := parseID(dest); err == nil {
		to = id
	} else {
		iban = strings.ReplaceAll(dest, " ", "")
	}

	amount, description, err := a.amountAndDescription(args, 2)
	if err != nil {
		return err
	}

	tx, err := a.transactionService.Transfer(ctx, from, to, amount, description, iban)
	if err != nil {
		return err
	}
	printTransaction(a.out, tx)
	return nil
}

// Deposit credits an account: "deposit <accountId> <amount> [description]".
func (a *App) Deposit(ctx context.Context, args []string) error {
	id, amount, description, err := a.movementArgs(args)
	if err != nil {
		return err
	}

	tx, err := a.transactionService.Deposit(ctx, id, amount, description)
	if err != nil {
		return err
	}
	printTransaction(a.out, tx)
	return nil
}

// Withdraw debits an account: "withdraw <accountId> <amount> [description]".
func (a *App) Withdraw(ctx context.Context, args []string) error {
	id, amount, description, err := a.movementArgs(args)
	if err != nil {
		return err
	}

	tx, err := a.transactionService.Withdraw(ctx, id, amount, description)
	if err != nil {
		return err
	}
	printTransaction(a.out, tx)
	return nil
}

func (a *App) movementArgs(args []string) (int64, float64, string, error) {
	s, err := a.arg(args, 0, "Enter account id")
	if err != nil {
		return 0, 0, "", err
	}
	id, err := parseID(s)
	if err != nil {
		return 0, 0, "", err
	}

	amount, description, err := a.amountAndDescription(args, 1)
	if err != nil {
		return 0, 0, "", err
	}
	return id, amount, description, nil
}

// amountAndDescription reads args[i] as the amount and joins the rest into
// the description. A missing description is prompted for only when the
// amount was prompted too.
func (a *App) amountAndDescription(args []string, i int) (float64, string, error) {
	s, err := a.arg(args, i, "Enter amount")
	if err != nil {
		return 0, "", err
	}
	amount, err := parseAmount(s)
	if err != nil {
		return 0, "", err
	}

	if i < len(args) {
		return amount, strings.Join(args[i+1:], " "), nil
	}
	description, err := getSimpleText(a.reader, "Enter description (optional)", a.out)
	if err != nil {
		return 0, "", err
	}
	return amount, description, nil
}
