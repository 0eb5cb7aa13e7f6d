package cli

import (
	"context"
	"fmt"
)

// Accounts lists the logged-in client's accounts.
func (a *App) Accounts(ctx context.Context, _ []string) error {
	user, err := a.currentUser(ctx)
	if err != nil {
		return err
	}

	accounts, err := a.accountService.ByClient(ctx, user.ID)
	if err != nil {
		return err
	}

	printAccounts(a.out, accounts)
	return nil
}

// Balance prints the balance of one account: "balance <accountId>".
func (a *App) Balance(ctx context.Context, args []string) error {
	s, err := a.arg(args, 0, "Enter account id")
	if err != nil {
		return err
	}
	id, err := parseID(s)
	if err != nil {
		return err
	}

	balance, err := a.accountService.Balance(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Balance: %s\n", money(balance))
	return nil
}
