// Package domain provides defenitions of all entities.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// User holds user data. The password is a bcrypt hash, never plaintext, and
// is excluded from every serialized output.
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CPF       string    `json:"cpf"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewUser constructs a user with a fresh identity and timestamps.
// The password must already be hashed.
func NewUser(name, email, hashedPassword, cpf string) User {
	now := time.Now().UTC()

	return User{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Password:  hashedPassword,
		CPF:       cpf,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
