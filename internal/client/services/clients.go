package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/willbank/internal/client/client"
	"github.com/dmitrijs2005/willbank/internal/client/models"
)

const clientsPath = "/api/clients"

// ClientService manages client profiles (agent and admin operations).
type ClientService interface {
	List(ctx context.Context) ([]models.Client, error)
	Get(ctx context.Context, id int64) (*models.Client, error)
	Create(ctx context.Context, c models.Client) (*models.Client, error)
	Update(ctx context.Context, id int64, c models.Client) (*models.Client, error)
	Delete(ctx context.Context, id int64) error
}

type clientService struct {
	client *client.HTTPClient
}

func NewClientService(c *client.HTTPClient) ClientService {
	return &clientService{client: c}
}

func clientPath(id int64) string { return fmt.Sprintf("%s/%d", clientsPath, id) }

func (s *clientService) List(ctx context.Context) ([]models.Client, error) {
	return client.Get[[]models.Client](ctx, s.client, client.ServiceClient, clientsPath, nil)
}

func (s *clientService) Get(ctx context.Context, id int64) (*models.Client, error) {
	c, err := client.Get[models.Client](ctx, s.client, client.ServiceClient, clientPath(id), nil)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *clientService) Create(ctx context.Context, c models.Client) (*models.Client, error) {
	out, err := client.Post[models.Client](ctx, s.client, client.ServiceClient, clientsPath, c)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *clientService) Update(ctx context.Context, id int64, c models.Client) (*models.Client, error) {
	out, err := client.Put[models.Client](ctx, s.client, client.ServiceClient, clientPath(id), c)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *clientService) Delete(ctx context.Context, id int64) error {
	return client.Delete(ctx, s.client, client.ServiceClient, clientPath(id))
}
