package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	s := ""
	if user, ok := a.http.Session().CurrentUser(context.Background()); ok && a.isLoggedIn() {
		s = user.Email + " "
	}
	s += string(a.Mode())
	return fmt.Sprintf("(%s)", s)
}

// Root checks connectivity once, resumes a stored session if there is one,
// starts the online status watcher and runs the REPL until the user exits.
func (a *App) Root(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fmt.Fprintln(a.out, "Welcome to WillBank CLI (type 'help' for commands)")

	a.checkHealth(ctx)
	if a.isLoggedIn() {
		if user, ok := a.http.Session().CurrentUser(ctx); ok {
			fmt.Fprintf(a.out, "Resuming session for %s\n", user.FullName())
		}
	}

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}
