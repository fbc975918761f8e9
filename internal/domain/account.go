package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account groups transactions and is shared by zero or more users.
type Account struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Users     []User    `json:"users"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewAccount constructs an account with a fresh identity and timestamps.
func NewAccount(name string, users []User) Account {
	now := time.Now().UTC()

	if users == nil {
		users = []User{}
	}

	return Account{
		ID:        uuid.New(),
		Name:      name,
		Users:     users,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
