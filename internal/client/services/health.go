package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/willbank/internal/client/client"
	"github.com/dmitrijs2005/willbank/internal/client/models"
)

const healthPath = "/actuator/health"

// ErrServiceDown is returned when a service answers with a status other
// than UP.
var ErrServiceDown = errors.New("service down")

// HealthService queries the actuator endpoints. Health checks never carry a token
// and never trigger a refresh.
type HealthService interface {
	Check(ctx context.Context, svc client.Service) error
	Ping(ctx context.Context) error
	CheckAll(ctx context.Context) map[client.Service]error
}

type healthService struct {
	client *client.HTTPClient
}

func NewHealthService(c *client.HTTPClient) HealthService {
	return &healthService{client: c}
}

func (s *healthService) Check(ctx context.Context, svc client.Service) error {
	resp, err := s.client.SendPublic(ctx, &client.Request{Service: svc, Method: http.MethodGet, Path: healthPath})
	if err != nil {
		return err
	}

	var h models.Health
	if err := json.Unmarshal(resp.Body, &h); err != nil {
		return fmt.Errorf("decode health: %w", err)
	}
	if h.Status != "UP" {
		return fmt.Errorf("%w: %s is %q", ErrServiceDown, svc, h.Status)
	}
	return nil
}

// Ping checks the client service, which also serves authentication.
func (s *healthService) Ping(ctx context.Context) error {
	return s.Check(ctx, client.ServiceClient)
}

func (s *healthService) CheckAll(ctx context.Context) map[client.Service]error {
	out := make(map[client.Service]error, len(client.Services))
	for _, svc := range client.Services {
		out[svc] = s.Check(ctx, svc)
	}
	return out
}
