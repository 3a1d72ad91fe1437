package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/MKhiriev/trade-ledger-pro/models"
)

// pnlSliceGen generates per-trade realized P&Ls, including zero and
// negative values.
func pnlSliceGen(maxLen int) gopter.Gen {
	return gen.SliceOfN(maxLen, gen.Float64Range(-1000, 1000))
}

// tradesFromPnLs builds one closed trade per P&L, one day apart.
func tradesFromPnLs(pnls []float64) []models.Trade {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	trades := make([]models.Trade, 0, len(pnls))
	for i, pnl := range pnls {
		trade := closedOn(start.AddDate(0, 0, i).Format("2006-01-02"), pnl)
		trades = append(trades, trade)
	}
	return trades
}

func TestProperty_SummaryBounds(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("win rate is within [0, 100]", prop.ForAll(
		func(pnls []float64) bool {
			s := ComputeSummary(tradesFromPnLs(pnls))
			return s.WinRate >= 0 && s.WinRate <= 100
		},
		pnlSliceGen(50),
	))

	properties.Property("averages and extremes keep their sign", prop.ForAll(
		func(pnls []float64) bool {
			s := ComputeSummary(tradesFromPnLs(pnls))
			return s.AvgWin >= 0 && s.AvgLoss <= 0 &&
				s.LargestWin >= 0 && s.LargestLoss <= 0
		},
		pnlSliceGen(50),
	))

	properties.Property("profit factor is non-negative or +Inf", prop.ForAll(
		func(pnls []float64) bool {
			s := ComputeSummary(tradesFromPnLs(pnls))
			return s.ProfitFactor >= 0 || math.IsInf(s.ProfitFactor, 1)
		},
		pnlSliceGen(50),
	))

	properties.TestingRun(t)
}

func TestProperty_RiskBounds(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("max drawdown is never negative", prop.ForAll(
		func(pnls []float64) bool {
			return ComputeRiskMetrics(tradesFromPnLs(pnls)).MaxDrawdown >= 0
		},
		pnlSliceGen(50),
	))

	properties.Property("total P&L equals gross profit minus gross loss", prop.ForAll(
		func(pnls []float64) bool {
			trades := tradesFromPnLs(pnls)
			m := ComputeRiskMetrics(trades)
			s := ComputeSummary(trades)
			return math.Abs(s.TotalPnL-(m.GrossProfit-m.GrossLoss)) < 1e-6
		},
		pnlSliceGen(50),
	))

	properties.Property("drawdown never exceeds gross loss", prop.ForAll(
		func(pnls []float64) bool {
			m := ComputeRiskMetrics(tradesFromPnLs(pnls))
			return m.MaxDrawdown <= m.GrossLoss+1e-9
		},
		pnlSliceGen(50),
	))

	properties.TestingRun(t)
}

func TestProperty_GoalProgressClamped(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("every progress percentage stays within [0, 100]", prop.ForAll(
		func(pnls []float64, target float64) bool {
			goal := &models.Goal{TargetPnL: &target}
			p := ComputeGoalProgress(tradesFromPnLs(pnls), goal)
			return p.PnLProgress.Percent >= 0 && p.PnLProgress.Percent <= 100
		},
		pnlSliceGen(30),
		gen.Float64Range(-5000, 5000),
	))

	properties.TestingRun(t)
}
