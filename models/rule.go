package models

import "time"

// TradingRule is one item of the user's ordered pre-trade checklist.
type TradingRule struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"-"`
	Rule      string    `json:"rule"`
	Position  int       `json:"position"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the TradingRule model.
func (r TradingRule) TableName() string {
	return "trading_rules"
}
