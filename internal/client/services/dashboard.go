package services

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/dmitrijs2005/willbank/internal/client/client"
	"github.com/dmitrijs2005/willbank/internal/client/models"
)

const statementLayout = "2006-01-02"

// DashboardService reads the composite views.
type DashboardService interface {
	Dashboard(ctx context.Context, clientID int64) (*models.Dashboard, error)
	Statement(ctx context.Context, accountID int64, from, to time.Time) (*models.Statement, error)
}

type dashboardService struct {
	client *client.HTTPClient
}

func NewDashboardService(c *client.HTTPClient) DashboardService {
	return &dashboardService{client: c}
}

func (s *dashboardService) Dashboard(ctx context.Context, clientID int64) (*models.Dashboard, error) {
	d, err := client.Get[models.Dashboard](ctx, s.client, client.ServiceDashboard, fmt.Sprintf("/api/dashboard/%d", clientID), nil)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *dashboardService) Statement(ctx context.Context, accountID int64, from, to time.Time) (*models.Statement, error) {
	q := url.Values{
		"from": {from.Format(statementLayout)},
		"to":   {to.Format(statementLayout)},
	}
	st, err := client.Get[models.Statement](ctx, s.client, client.ServiceDashboard, fmt.Sprintf("/api/statements/%d", accountID), q)
	if err != nil {
		return nil, err
	}
	return &st, nil
}
