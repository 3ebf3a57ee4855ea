package identity

import "time"

// Identity is the authentication record (email + credential). It is a
// separate row from the application profile in the users table.
type Identity struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// TokenPair is what a successful authentication yields: a short-lived signed
// access token and an opaque refresh token persisted server-side.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
