package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/willbank/internal/client/client"
	"github.com/dmitrijs2005/willbank/internal/client/models"
)

const accountsPath = "/api/accounts"

// AccountService reads and manages bank accounts.
type AccountService interface {
	List(ctx context.Context) ([]models.Account, error)
	Get(ctx context.Context, id int64) (*models.Account, error)
	ByNumber(ctx context.Context, number string) (*models.Account, error)
	ByClient(ctx context.Context, clientID int64) ([]models.Account, error)
	Balance(ctx context.Context, id int64) (float64, error)
	Create(ctx context.Context, req models.CreateAccountRequest) (*models.Account, error)
	Update(ctx context.Context, id int64, a models.Account) (*models.Account, error)
	Credit(ctx context.Context, id int64, amount float64) error
	Debit(ctx context.Context, id int64, amount float64) error
	Delete(ctx context.Context, id int64) error
}

type accountService struct {
	client *client.HTTPClient
}

func NewAccountService(c *client.HTTPClient) AccountService {
	return &accountService{client: c}
}

func accountPath(id int64) string { return fmt.Sprintf("%s/%d", accountsPath, id) }

func (s *accountService) one(ctx context.Context, path string) (*models.Account, error) {
	a, err := client.Get[models.Account](ctx, s.client, client.ServiceAccount, path, nil)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *accountService) List(ctx context.Context) ([]models.Account, error) {
	return client.Get[[]models.Account](ctx, s.client, client.ServiceAccount, accountsPath, nil)
}

func (s *accountService) Get(ctx context.Context, id int64) (*models.Account, error) {
	return s.one(ctx, accountPath(id))
}

func (s *accountService) ByNumber(ctx context.Context, number string) (*models.Account, error) {
	return s.one(ctx, accountsPath+"/number/"+url.PathEscape(number))
}

func (s *accountService) ByClient(ctx context.Context, clientID int64) ([]models.Account, error) {
	return client.Get[[]models.Account](ctx, s.client, client.ServiceAccount, fmt.Sprintf("%s/client/%d", accountsPath, clientID), nil)
}

func (s *accountService) Balance(ctx context.Context, id int64) (float64, error) {
	return client.Get[float64](ctx, s.client, client.ServiceAccount, accountPath(id)+"/balance", nil)
}

func (s *accountService) Create(ctx context.Context, req models.CreateAccountRequest) (*models.Account, error) {
	a, err := client.Post[models.Account](ctx, s.client, client.ServiceAccount, accountsPath, req)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *accountService) Update(ctx context.Context, id int64, a models.Account) (*models.Account, error) {
	out, err := client.Put[models.Account](ctx, s.client, client.ServiceAccount, accountPath(id), a)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *accountService) move(ctx context.Context, id int64, op string, amount float64) error {
	_, err := s.client.Send(ctx, &client.Request{
		Service: client.ServiceAccount,
		Method:  http.MethodPost,
		Path:    accountPath(id) + "/" + op,
		Query:   url.Values{"amount": {strconv.FormatFloat(amount, 'f', -1, 64)}},
	})
	return err
}

func (s *accountService) Credit(ctx context.Context, id int64, amount float64) error {
	return s.move(ctx, id, "credit", amount)
}

func (s *accountService) Debit(ctx context.Context, id int64, amount float64) error {
	return s.move(ctx, id, "debit", amount)
}

func (s *accountService) Delete(ctx context.Context, id int64) error {
	return client.Delete(ctx, s.client, client.ServiceAccount, accountPath(id))
}
