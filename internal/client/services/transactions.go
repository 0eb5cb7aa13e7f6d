package services

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/dmitrijs2005/willbank/internal/client/client"
	"github.com/dmitrijs2005/willbank/internal/client/models"
)

const transactionsPath = "/api/transactions"

// rangeLayout is the date-time format the transaction service parses.
const rangeLayout = "2006-01-02T15:04:05"

// TransactionService records and queries money movements.
type TransactionService interface {
	Create(ctx context.Context, tx models.Transaction) (*models.Transaction, error)
	Get(ctx context.Context, id int64) (*models.Transaction, error)
	ByReference(ctx context.Context, ref string) (*models.Transaction, error)
	ByAccount(ctx context.Context, accountID int64) ([]models.Transaction, error)
	ByDateRange(ctx context.Context, accountID int64, start, end time.Time) ([]models.Transaction, error)
	List(ctx context.Context) ([]models.Transaction, error)

	Transfer(ctx context.Context, from, to int64, amount float64, description, iban string) (*models.Transaction, error)
	Deposit(ctx context.Context, accountID int64, amount float64, description string) (*models.Transaction, error)
	Withdraw(ctx context.Context, accountID int64, amount float64, description string) (*models.Transaction, error)
}

type transactionService struct {
	client *client.HTTPClient
}

func NewTransactionService(c *client.HTTPClient) TransactionService {
	return &transactionService{client: c}
}

func (s *transactionService) one(ctx context.Context, path string) (*models.Transaction, error) {
	tx, err := client.Get[models.Transaction](ctx, s.client, client.ServiceTransaction, path, nil)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (s *transactionService) Create(ctx context.Context, tx models.Transaction) (*models.Transaction, error) {
	out, err := client.Post[models.Transaction](ctx, s.client, client.ServiceTransaction, transactionsPath, tx)
	if err != nil {
		return nil, fmt.Errorf("create %s transaction: %w", tx.Type, err)
	}
	return &out, nil
}

func (s *transactionService) Get(ctx context.Context, id int64) (*models.Transaction, error) {
	return s.one(ctx, fmt.Sprintf("%s/%d", transactionsPath, id))
}

func (s *transactionService) ByReference(ctx context.Context, ref string) (*models.Transaction, error) {
	return s.one(ctx, transactionsPath+"/reference/"+url.PathEscape(ref))
}

func (s *transactionService) ByAccount(ctx context.Context, accountID int64) ([]models.Transaction, error) {
	return client.Get[[]models.Transaction](ctx, s.client, client.ServiceTransaction,
		fmt.Sprintf("%s/account/%d", transactionsPath, accountID), nil)
}

func (s *transactionService) ByDateRange(ctx context.Context, accountID int64, start, end time.Time) ([]models.Transaction, error) {
	q := url.Values{
		"startDate": {start.Format(rangeLayout)},
		"endDate":   {end.Format(rangeLayout)},
	}
	return client.Get[[]models.Transaction](ctx, s.client, client.ServiceTransaction,
		fmt.Sprintf("%s/account/%d/range", transactionsPath, accountID), q)
}

func (s *transactionService) List(ctx context.Context) ([]models.Transaction, error) {
	return client.Get[[]models.Transaction](ctx, s.client, client.ServiceTransaction, transactionsPath, nil)
}

func (s *transactionService) Transfer(ctx context.Context, from, to int64, amount float64, description, iban string) (*models.Transaction, error) {
	return s.Create(ctx, models.Transaction{
		Type:                 models.TransactionTransfer,
		SourceAccountID:      from,
		DestinationAccountID: to,
		DestinationIBAN:      iban,
		Amount:               amount,
		Description:          description,
	})
}

func (s *transactionService) Deposit(ctx context.Context, accountID int64, amount float64, description string) (*models.Transaction, error) {
	return s.Create(ctx, models.Transaction{
		Type:            models.TransactionDeposit,
		SourceAccountID: accountID,
		Amount:          amount,
		Description:     description,
	})
}

func (s *transactionService) Withdraw(ctx context.Context, accountID int64, amount float64, description string) (*models.Transaction, error) {
	return s.Create(ctx, models.Transaction{
		Type:            models.TransactionWithdrawal,
		SourceAccountID: accountID,
		Amount:          amount,
		Description:     description,
	})
}
