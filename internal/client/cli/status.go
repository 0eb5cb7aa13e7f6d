package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/willbank/internal/client/client"
)

// Status checks every service and prints the session state.
func (a *App) Status(ctx context.Context, _ []string) error {
	results := a.healthService.CheckAll(ctx)

	tw := newTable(a.out)
	for _, svc := range client.Services {
		state := "UP"
		if err := results[svc]; err != nil {
			state = err.Error()
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", svc, a.config.ServiceURLs()[svc], state)
	}
	tw.Flush()

	session := a.http.Session()
	fmt.Fprintf(a.out, "\nMode: %s\n", a.Mode())
	if !session.IsAuthenticated(ctx) {
		fmt.Fprintln(a.out, "Session: logged out")
		return nil
	}

	expires := "unknown"
	if t := session.ExpiresAt(ctx); !t.IsZero() {
		expires = t.Local().Format(time.RFC1123)
	}
	fmt.Fprintf(a.out, "Session: active, token expires %s\n", expires)
	fmt.Fprintf(a.out, "Refresh: %s, %d performed\n", a.http.Coordinator().State(), a.http.Coordinator().Calls())
	return nil
}
