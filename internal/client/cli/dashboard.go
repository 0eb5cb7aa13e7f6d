package cli

import (
	"context"
	"errors"
)

var errStatementUsage = errors.New("usage: dashboard statement <accountId> <from> <to>")

// Dashboard prints the client's overview, or an account statement with
// "dashboard statement <accountId> <from> <to>".
func (a *App) Dashboard(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] == "statement" {
		return a.statement(ctx, args[1:])
	}

	user, err := a.currentUser(ctx)
	if err != nil {
		return err
	}

	d, err := a.dashboardService.Dashboard(ctx, user.ID)
	if err != nil {
		return err
	}

	printDashboard(a.out, d)
	return nil
}

func (a *App) statement(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return errStatementUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	from, err := parseDate(args[1])
	if err != nil {
		return err
	}
	to, err := parseDate(args[2])
	if err != nil {
		return err
	}

	s, err := a.dashboardService.Statement(ctx, id, from, to)
	if err != nil {
		return err
	}

	printStatement(a.out, s)
	return nil
}
