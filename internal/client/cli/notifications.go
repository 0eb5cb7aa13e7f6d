package cli

import (
	"context"
	"errors"
	"fmt"
)

var errNotificationsUsage = errors.New("usage: notifications [prefs|test]")

// Notifications handles:
//
//	notifications         list notifications sent to the client's email
//	notifications prefs   show notification preferences
//	notifications test    ask the service to send a test notification
func (a *App) Notifications(ctx context.Context, args []string) error {
	user, err := a.currentUser(ctx)
	if err != nil {
		return err
	}

	sub := ""
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "":
		ns, err := a.notificationService.ByRecipient(ctx, user.Email)
		if err != nil {
			return err
		}
		printNotifications(a.out, ns)

	case "prefs":
		p, err := a.notificationService.Preferences(ctx, user.ID)
		if err != nil {
			return err
		}
		printPreferences(a.out, p)

	case "test":
		msg, err := a.notificationService.SendTest(ctx, user.ID)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, msg)

	default:
		return errNotificationsUsage
	}
	return nil
}
