package identity

import "time"

// User represents a registered platform account.
type User struct {
	ID           string
	Email        string
	FullName     string
	IsVerified   bool
	PasswordHash []byte
	CreatedAt    time.Time
}

// Credentials is the input for registration and login.
type Credentials struct {
	Email    string
	Password string
	FullName string
}
