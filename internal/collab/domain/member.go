package domain

import "time"

// Member is a person with a unique login handle.
type Member struct {
	ID           string
	Handle       string
	DisplayName  string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
