// Package analytics computes derived performance statistics over a user's
// trade records: summary figures (win rate, profit factor, averages),
// calendar filters, risk metrics (risk/reward, drawdown, Sharpe ratio),
// distribution buckets, and day streaks with goal progress.
//
// All functions are pure: they perform no I/O, never mutate their input
// slices, and return defined zero values on empty input instead of
// errors. Open trades and trades without a realized P&L contribute
// nothing to any sum or count. Because the functions are deterministic
// over their arguments they are safe to recompute concurrently over
// distinct inputs.
package analytics
