package models

import "time"

// UserRecord is a registered account as persisted in the user directory.
// Only the argon2 hash of the password is ever stored.
type UserRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
}

// Session is the identity attached to a request. A guest session has a
// generated id, no email, and IsGuest set.
type Session struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	IsGuest bool   `json:"is_guest"`
}
