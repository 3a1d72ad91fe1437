package models

import "time"

// TradeType is the direction of a trade.
type TradeType string

const (
	TradeBuy  TradeType = "BUY"
	TradeSell TradeType = "SELL"
)

// TradeStatus is the lifecycle state of a trade. A trade transitions
// OPEN → CLOSED when its exit price arrives.
type TradeStatus string

const (
	TradeOpen   TradeStatus = "OPEN"
	TradeClosed TradeStatus = "CLOSED"
)

// Trade is one journal entry. ProfitLoss is derived, never user-supplied:
// it is non-nil exactly when ExitPrice is non-nil and Status is CLOSED.
type Trade struct {
	ID             int64       `json:"id"`
	UserID         int64       `json:"-"`
	Symbol         string      `json:"symbol"`
	TradeType      TradeType   `json:"tradeType"`
	InstrumentType string      `json:"instrumentType"`
	EntryPrice     float64     `json:"entryPrice"`
	ExitPrice      *float64    `json:"exitPrice"`
	Quantity       float64     `json:"quantity"`
	StopLoss       *float64    `json:"stopLoss"`
	TakeProfit     *float64    `json:"takeProfit"`
	ProfitLoss     *float64    `json:"profitLoss"`
	Status         TradeStatus `json:"status"`
	Notes          string      `json:"notes,omitempty"`
	IsStarred      bool        `json:"isStarred"`
	TradeDate      time.Time   `json:"tradeDate"`
	CreatedAt      time.Time   `json:"createdAt"`
}

// Closed reports whether the trade is closed with a realized P&L.
// Analytics operate only on trades for which this holds.
func (t Trade) Closed() bool {
	return t.Status == TradeClosed && t.ProfitLoss != nil
}

// PnL returns the realized profit or loss, or 0 for an open trade.
func (t Trade) PnL() float64 {
	if t.ProfitLoss == nil {
		return 0
	}
	return *t.ProfitLoss
}

// DayKey returns the local calendar day of the trade as "YYYY-MM-DD".
// Two trades recorded at different times on the same local day share a key.
func (t Trade) DayKey() string {
	return t.TradeDate.Format("2006-01-02")
}

// Recalculate derives ProfitLoss and Status from the price fields.
// With an exit price set the trade closes and P&L becomes
// (exit-entry)*qty for BUY and (entry-exit)*qty for SELL; without one
// the trade stays open and P&L is cleared.
func (t *Trade) Recalculate() {
	if t.ExitPrice == nil {
		t.ProfitLoss = nil
		if t.Status != TradeClosed {
			t.Status = TradeOpen
		}
		return
	}

	var pnl float64
	if t.TradeType == TradeSell {
		pnl = (t.EntryPrice - *t.ExitPrice) * t.Quantity
	} else {
		pnl = (*t.ExitPrice - t.EntryPrice) * t.Quantity
	}

	t.ProfitLoss = &pnl
	t.Status = TradeClosed
}

// TableName returns the name of the database table
// associated with the Trade model.
func (t Trade) TableName() string {
	return "trades"
}
