package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/go-finbook/finbook/pkg/moneypkg"
)

// Transaction is a free-standing record on exactly one account.
// The amount is a fixed-point integer scaled by 10^4.
type Transaction struct {
	ID          uuid.UUID
	Amount      int64
	Description *string
	AccountID   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction constructs a transaction with a fresh identity and timestamps.
func NewTransaction(amount int64, description *string, accountID uuid.UUID) Transaction {
	now := time.Now().UTC()

	return Transaction{
		ID:          uuid.New(),
		Amount:      amount,
		Description: description,
		AccountID:   accountID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// TransactionResponse is the output shape of a transaction, with the amount
// rendered as a decimal string with exactly four fraction digits.
type TransactionResponse struct {
	ID          uuid.UUID `json:"id"`
	Amount      string    `json:"amount"`
	Description *string   `json:"description"`
	AccountID   uuid.UUID `json:"accountId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewTransactionResponse maps a transaction to its output shape.
func NewTransactionResponse(t Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		Amount:      moneypkg.Format(t.Amount),
		Description: t.Description,
		AccountID:   t.AccountID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
