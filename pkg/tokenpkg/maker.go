package tokenpkg

import "time"

// Maker is the interface for managing tokens.
type Maker interface {
	// CreateToken creates a token for the given user id and duration.
	// Refresh marks the token as a refresh token.
	CreateToken(userID string, duration time.Duration, refresh bool) (string, *Payload, error)

	// VerifyToken checks if the token is valid and returns its payload.
	VerifyToken(token string) (*Payload, error)
}
