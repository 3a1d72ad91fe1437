package models

import "time"

// DeliveryMethod identifies the channel an OTP code is sent over.
type DeliveryMethod string

const (
	DeliveryEmail DeliveryMethod = "email"
	DeliveryPhone DeliveryMethod = "phone"
)

// OtpTTL is the fixed validity window of a passcode. The countdown shown
// by clients is cosmetic; expiry is enforced server-side against ExpiresAt
// on every verification.
const OtpTTL = 5 * time.Minute

// OtpCodeLength is the fixed width of a passcode. Codes are compared as
// strings, so leading zeros are significant.
const OtpCodeLength = 6

// OtpChallenge is one ephemeral login attempt: a passcode bound to a user,
// a delivery channel, and a five-minute window. At most one unconsumed
// challenge per user is ever trusted at verification time; issuing a new
// challenge consumes all of the user's previous ones.
type OtpChallenge struct {
	ID             int64          `json:"-"`
	UserID         int64          `json:"-"`
	Code           string         `json:"-"`
	DeliveryMethod DeliveryMethod `json:"delivery_method"`
	CreatedAt      time.Time      `json:"created_at"`
	ExpiresAt      time.Time      `json:"expires_at"`
	Consumed       bool           `json:"-"`
}

// Expired reports whether the challenge is past its validity window at
// the given instant.
func (c OtpChallenge) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

// TableName returns the name of the database table
// associated with the OtpChallenge model.
func (c OtpChallenge) TableName() string {
	return "otp_challenges"
}
