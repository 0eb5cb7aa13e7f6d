package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/dmitrijs2005/willbank/internal/client/client"
	"github.com/dmitrijs2005/willbank/internal/client/models"
)

const notificationsPath = "/api/notifications"

type NotificationService interface {
	ByRecipient(ctx context.Context, recipient string) ([]models.Notification, error)
	List(ctx context.Context) ([]models.Notification, error)
	Preferences(ctx context.Context, clientID int64) (*models.NotificationPreferences, error)
	UpdatePreferences(ctx context.Context, clientID int64, p models.NotificationPreferences) (*models.NotificationPreferences, error)
	SendTest(ctx context.Context, clientID int64) (string, error)
}

type notificationService struct {
	client *client.HTTPClient
}

func NewNotificationService(c *client.HTTPClient) NotificationService {
	return &notificationService{client: c}
}

func preferencesPath(clientID int64) string {
	return fmt.Sprintf("%s/preferences/%d", notificationsPath, clientID)
}

func (s *notificationService) ByRecipient(ctx context.Context, recipient string) ([]models.Notification, error) {
	return client.Get[[]models.Notification](ctx, s.client, client.ServiceNotification,
		notificationsPath+"/recipient/"+url.PathEscape(recipient), nil)
}

func (s *notificationService) List(ctx context.Context) ([]models.Notification, error) {
	return client.Get[[]models.Notification](ctx, s.client, client.ServiceNotification, notificationsPath, nil)
}

func (s *notificationService) Preferences(ctx context.Context, clientID int64) (*models.NotificationPreferences, error) {
	p, err := client.Get[models.NotificationPreferences](ctx, s.client, client.ServiceNotification, preferencesPath(clientID), nil)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *notificationService) UpdatePreferences(ctx context.Context, clientID int64, p models.NotificationPreferences) (*models.NotificationPreferences, error) {
	out, err := client.Put[models.NotificationPreferences](ctx, s.client, client.ServiceNotification, preferencesPath(clientID), p)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

type testNotificationRequest struct {
	ClientID int64 `json:"clientId"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// SendTest asks the service to emit a test notification and returns its
// confirmation message.
func (s *notificationService) SendTest(ctx context.Context, clientID int64) (string, error) {
	out, err := client.Post[messageResponse](ctx, s.client, client.ServiceNotification, notificationsPath+"/test",
		testNotificationRequest{ClientID: clientID})
	if err != nil {
		return "", err
	}
	return out.Message, nil
}
