package models

type AccountType string

const (
	AccountSavings  AccountType = "SAVINGS"
	AccountChecking AccountType = "CHECKING"
	AccountBusiness AccountType = "BUSINESS"
)

type AccountStatus string

const (
	AccountActive    AccountStatus = "ACTIVE"
	AccountInactive  AccountStatus = "INACTIVE"
	AccountSuspended AccountStatus = "SUSPENDED"
	AccountBlocked   AccountStatus = "BLOCKED"
	AccountClosed    AccountStatus = "CLOSED"
)

// Account is a bank account owned by a client.
type Account struct {
	ID            int64         `json:"id,omitempty"`
	AccountNumber string        `json:"accountNumber,omitempty"`
	ClientID      int64         `json:"clientId"`
	AccountType   AccountType   `json:"accountType"`
	Balance       float64       `json:"balance,omitempty"`
	Status        AccountStatus `json:"status,omitempty"`
	CreatedAt     string        `json:"createdAt,omitempty"`
	UpdatedAt     string        `json:"updatedAt,omitempty"`
}

type CreateAccountRequest struct {
	ClientID    int64       `json:"clientId"`
	AccountType AccountType `json:"accountType"`
}
