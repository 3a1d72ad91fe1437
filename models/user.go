package models

import "time"

// User represents an account entity used for authentication and authorization.
// Every other entity in the system is owned by a User through its UserID.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Email is the unique login identifier and the default OTP delivery
	// destination.
	Email string `json:"email"`

	// Phone is the optional SMS delivery destination. May be empty.
	Phone string `json:"phone,omitempty"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a hash, never plaintext, and is never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
