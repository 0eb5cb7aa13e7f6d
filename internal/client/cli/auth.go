package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/willbank/internal/client/models"
	"github.com/dmitrijs2005/willbank/internal/cryptox"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var errPasswordMismatch = errors.New("passwords do not match")

// Register prompts for the profile fields and a password, creates the client
// and stores the returned session.
func (a *App) Register(ctx context.Context, _ []string) error {
	var req models.RegisterRequest

	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Enter first name", &req.FirstName},
		{"Enter last name", &req.LastName},
		{"Enter email", &req.Email},
		{"Enter phone", &req.Phone},
		{"Enter address", &req.Address},
		{"Enter CIN", &req.CIN},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer cryptox.Wipe(password)
	req.Password = string(password)

	user, err := a.authService.Register(ctx, req)
	if err != nil {
		return err
	}

	a.setMode(ModeOnline)
	fmt.Fprintf(a.out, "Welcome, %s!\n", user.FullName())
	return nil
}

// Login prompts for email and password. An email passed as the first
// argument skips its prompt.
func (a *App) Login(ctx context.Context, args []string) error {
	email, err := a.arg(args, 0, "Enter email")
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer cryptox.Wipe(password)

	user, err := a.authService.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	a.setMode(ModeOnline)
	fmt.Fprintf(a.out, "Logged in as %s\n", user.FullName())
	return nil
}

// Logout removes the stored session. It never contacts the server.
func (a *App) Logout(ctx context.Context, _ []string) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// Me prints the cached profile. "me refresh" fetches it from the server
// first.
func (a *App) Me(ctx context.Context, args []string) error {
	var (
		user *models.Client
		err  error
	)
	if len(args) > 0 && args[0] == "refresh" {
		user, err = a.authService.RefreshProfile(ctx)
	} else {
		user, err = a.authService.Me(ctx)
	}
	if err != nil {
		return err
	}

	printClient(a.out, user)
	return nil
}

// ChangePassword prompts for the current password and a confirmed new one.
func (a *App) ChangePassword(ctx context.Context, _ []string) error {
	current, err := getPassword(a.reader, "Current password", a.out)
	if err != nil {
		return err
	}
	defer cryptox.Wipe(current)

	next, err := getPassword(a.reader, "New password", a.out)
	if err != nil {
		return err
	}
	defer cryptox.Wipe(next)

	confirm, err := getPassword(a.reader, "Repeat new password", a.out)
	if err != nil {
		return err
	}
	defer cryptox.Wipe(confirm)

	if string(next) != string(confirm) {
		return errPasswordMismatch
	}

	if err := a.authService.ChangePassword(ctx, string(current), string(next)); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Password changed")
	return nil
}

// currentUser returns the cached profile, which carries the client id most
// commands need.
func (a *App) currentUser(ctx context.Context) (*models.Client, error) {
	return a.authService.Me(ctx)
}
