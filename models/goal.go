package models

import "time"

// Goal holds a user's monthly targets. Exactly one row may exist per
// (UserID, Month, Year); writes are upserts and goals are never deleted
// automatically. Nil targets mean "not set" and yield zero progress
// rather than an error.
type Goal struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"-"`
	Month           int       `json:"month"`
	Year            int       `json:"year"`
	TargetPnL       *float64  `json:"targetPnL"`
	TargetWinRate   *float64  `json:"targetWinRate"`
	MaxTradesPerDay *int      `json:"maxTradesPerDay"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Goal model.
func (g Goal) TableName() string {
	return "goals"
}
