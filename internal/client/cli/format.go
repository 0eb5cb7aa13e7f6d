package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dmitrijs2005/willbank/internal/client/models"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func printClient(w io.Writer, c *models.Client) {
	tw := newTable(w)
	fmt.Fprintf(tw, "ID:\t%d\n", c.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", c.FullName())
	fmt.Fprintf(tw, "Email:\t%s\n", c.Email)
	fmt.Fprintf(tw, "Phone:\t%s\n", c.Phone)
	fmt.Fprintf(tw, "Address:\t%s\n", c.Address)
	fmt.Fprintf(tw, "CIN:\t%s\n", c.CIN)
	fmt.Fprintf(tw, "Role:\t%s\n", c.Role)
	fmt.Fprintf(tw, "Status:\t%s\n", c.Status)
	tw.Flush()
}

func printAccounts(w io.Writer, accounts []models.Account) {
	if len(accounts) == 0 {
		fmt.Fprintln(w, "No accounts")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNUMBER\tTYPE\tSTATUS\tBALANCE")
	for _, acc := range accounts {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", acc.ID, acc.AccountNumber, acc.AccountType, acc.Status, money(acc.Balance))
	}
	tw.Flush()
}

func printTransactions(w io.Writer, txs []models.Transaction) {
	if len(txs) == 0 {
		fmt.Fprintln(w, "No transactions")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "REFERENCE\tTYPE\tAMOUNT\tSTATUS\tDATE\tDESCRIPTION")
	for _, tx := range txs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			tx.TransactionReference, tx.Type, money(tx.Amount), tx.Status, tx.CreatedAt, tx.Description)
	}
	tw.Flush()
}

func printTransaction(w io.Writer, tx *models.Transaction) {
	fmt.Fprintf(w, "%s %s of %s: %s\n", tx.Type, tx.TransactionReference, money(tx.Amount), tx.Status)
}

func printNotifications(w io.Writer, ns []models.Notification) {
	if len(ns) == 0 {
		fmt.Fprintln(w, "No notifications")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "DATE\tTYPE\tSTATUS\tMESSAGE")
	for _, n := range ns {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", n.CreatedAt, n.Type, n.Status, n.Message)
	}
	tw.Flush()
}

func printPreferences(w io.Writer, p *models.NotificationPreferences) {
	tw := newTable(w)
	fmt.Fprintf(tw, "Email:\t%t\n", p.Email)
	fmt.Fprintf(tw, "SMS:\t%t\n", p.SMS)
	fmt.Fprintf(tw, "Push:\t%t\n", p.Push)
	fmt.Fprintf(tw, "In-app:\t%t\n", p.InApp)
	fmt.Fprintf(tw, "Transactions:\t%t\n", p.Transactions)
	fmt.Fprintf(tw, "Security:\t%t\n", p.Security)
	fmt.Fprintf(tw, "Marketing:\t%t\n", p.Marketing)
	fmt.Fprintf(tw, "Updates:\t%t\n", p.Updates)
	fmt.Fprintf(tw, "Threshold:\t%s\n", money(p.TransactionThreshold))
	if p.QuietHoursEnabled {
		fmt.Fprintf(tw, "Quiet hours:\t%s-%s\n", p.QuietHoursStart, p.QuietHoursEnd)
	}
	tw.Flush()
}

func printDashboard(w io.Writer, d *models.Dashboard) {
	fmt.Fprintf(w, "%s\n\n", d.Client.FullName())

	tw := newTable(w)
	fmt.Fprintf(tw, "Total balance:\t%s\n", money(d.TotalBalance))
	fmt.Fprintf(tw, "Monthly income:\t%s\n", money(d.MonthlyIncome))
	fmt.Fprintf(tw, "Monthly expenses:\t%s\n", money(d.MonthlyExpenses))
	tw.Flush()

	fmt.Fprintln(w)
	printAccounts(w, d.Accounts)
	fmt.Fprintln(w)
	printTransactions(w, d.RecentTransactions)
}

func printStatement(w io.Writer, s *models.Statement) {
	fmt.Fprintf(w, "Statement for %s (%s - %s)\n\n", s.Account.AccountNumber, s.StartDate, s.EndDate)
	printTransactions(w, s.Transactions)
	fmt.Fprintln(w)

	tw := newTable(w)
	fmt.Fprintf(tw, "Credits:\t%s\n", money(s.TotalCredits))
	fmt.Fprintf(tw, "Debits:\t%s\n", money(s.TotalDebits))
	fmt.Fprintf(tw, "Balance:\t%s\n", money(s.Balance))
	tw.Flush()
}
