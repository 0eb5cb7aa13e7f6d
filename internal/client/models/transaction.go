package models

type TransactionType string

const (
	TransactionDeposit    TransactionType = "DEPOSIT"
	TransactionWithdrawal TransactionType = "WITHDRAWAL"
	TransactionTransfer   TransactionType = "TRANSFER"
)

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "PENDING"
	TransactionCompleted TransactionStatus = "COMPLETED"
	TransactionFailed    TransactionStatus = "FAILED"
	TransactionCancelled TransactionStatus = "CANCELLED"
)

// Transaction is a money movement. Deposits and withdrawals only set
// SourceAccountID; transfers set a destination account or IBAN.
type Transaction struct {
	ID                   int64             `json:"id,omitempty"`
	TransactionReference string            `json:"transactionReference,omitempty"`
	Type                 TransactionType   `json:"type"`
	SourceAccountID      int64             `json:"sourceAccountId"`
	DestinationAccountID int64             `json:"destinationAccountId,omitempty"`
	DestinationIBAN      string            `json:"destinationIban,omitempty"`
	Amount               float64           `json:"amount"`
	Description          string            `json:"description,omitempty"`
	Status               TransactionStatus `json:"status,omitempty"`
	CreatedAt            string            `json:"createdAt,omitempty"`
}
