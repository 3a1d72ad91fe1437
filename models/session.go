package models

import "time"

// Session is a long-lived authenticated session created only after a
// successful OTP verification. The browser cookie carries a JWT whose
// "jti" claim is the session ID; deleting the row revokes the token.
type Session struct {
	// ID is a UUID identifying the session. It doubles as the JWT "jti".
	ID string `json:"-"`

	UserID    int64     `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}
