package models

import "time"

// Mistake is a recurring trading mistake the user tracks. Frequency is a
// counter the user bumps whenever the mistake repeats.
type Mistake struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"-"`
	Title       string    `json:"title"`
	Category    string    `json:"category,omitempty"`
	Description string    `json:"description,omitempty"`
	Frequency   int       `json:"frequency"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Mistake model.
func (m Mistake) TableName() string {
	return "mistakes"
}
