package domain

import (
	"time"

	"github.com/google/uuid"
)

// FilterDateLayout is the accepted format of createdAt/updatedAt list filters.
const FilterDateLayout = "2006-01-02"

// FilterTime converts a validated list date filter into the repository
// representation. Unset or malformed input yields nil, meaning no filter.
func FilterTime(s string) *time.Time {
	if s == "" {
		return nil
	}

	t, err := time.Parse(FilterDateLayout, s)
	if err != nil {
		return nil
	}

	return &t
}

// ListUsersParams narrows and pages a user listing.
type ListUsersParams struct {
	Limit     int
	Offset    int
	Name      string
	Email     string
	CreatedAt *time.Time
	UpdatedAt *time.Time
}

// ListAccountsParams narrows and pages an account listing.
type ListAccountsParams struct {
	Limit     int
	Offset    int
	Name      string
	CreatedAt *time.Time
	UpdatedAt *time.Time
}

// ListTransactionsParams narrows and pages a transaction listing within one account.
type ListTransactionsParams struct {
	AccountID   uuid.UUID
	Limit       int
	Offset      int
	Description string
	CreatedAt   *time.Time
	UpdatedAt   *time.Time
}
