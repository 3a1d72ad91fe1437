package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/MKhiriev/trade-ledger-pro/internal/analytics"
	"github.com/MKhiriev/trade-ledger-pro/internal/llm"
	"github.com/MKhiriev/trade-ledger-pro/internal/logger"
	"github.com/MKhiriev/trade-ledger-pro/internal/store"
	"github.com/MKhiriev/trade-ledger-pro/models"
)

// assistantService is the concrete implementation of [AssistantService].
// Each chat turn rebuilds the full journal context into the system prompt,
// so the model always answers against current data and no conversation
// state is stored server-side.
type assistantService struct {
	tradeRepository   store.TradeRepository
	goalRepository    store.GoalRepository
	mistakeRepository store.MistakeRepository
	ruleRepository    store.RuleRepository

	client llm.Client

	// now is swappable in tests; defaults to time.Now.
	now func() time.Time

	logger *logger.Logger
}

// NewAssistantService constructs an [AssistantService] backed by the given
// repositories and language model client.
func NewAssistantService(storages *store.Storages, client llm.Client, logger *logger.Logger) AssistantService {
	return &assistantService{
		tradeRepository:   storages.TradeRepository,
		goalRepository:    storages.GoalRepository,
		mistakeRepository: storages.MistakeRepository,
		ruleRepository:    storages.RuleRepository,
		client:            client,
		now:               time.Now,
		logger:            logger,
	}
}

// Chat answers one free-form question about the user's journal.
//
// Returns [ErrAssistantUnavailable] when no language model is configured.
func (s *assistantService) Chat(ctx context.Context, userID int64, message string) (string, error) {
	log := logger.FromContext(ctx)

	if message == "" {
		return "", ErrInvalidDataProvided
	}

	systemPrompt, err := s.buildSystemPrompt(ctx, userID)
	if err != nil {
		return "", err
	}

	reply, err := s.client.CompleteWithSystem(ctx, systemPrompt, message)
	if err != nil {
		if errors.Is(err, llm.ErrUnavailable) {
			return "", ErrAssistantUnavailable
		}
		log.Err(err).Int64("userID", userID).Msg("assistant completion failed")
		return "", fmt.Errorf("assistant completion failed: %w", err)
	}

	return reply, nil
}

// buildSystemPrompt assembles the journal context the model answers from:
// overall and current-month statistics, the month's goal, recent and
// starred trades, the mistake log, and the active checklist.
func (s *assistantService) buildSystemPrompt(ctx context.Context, userID int64) (string, error) {
	trades, err := s.tradeRepository.ListTrades(ctx, userID, store.TradeFilter{})
	if err != nil {
		return "", fmt.Errorf("trade listing failed: %w", err)
	}
	mistakes, err := s.mistakeRepository.ListMistakes(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("mistake listing failed: %w", err)
	}
	rules, err := s.ruleRepository.ListRules(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("rule listing failed: %w", err)
	}

	now := s.now()
	stats := analytics.ComputeSummary(trades)
	monthTrades := analytics.FilterByMonth(trades, int(now.Month()), now.Year())
	monthStats := analytics.ComputeSummary(monthTrades)

	var goal *models.Goal
	if found, err := s.goalRepository.FindGoal(ctx, userID, int(now.Month()), now.Year()); err == nil {
		goal = &found
	}

	var b strings.Builder
	b.WriteString("You are the journal assistant of a personal trading journal application. ")
	b.WriteString("You help the trader analyze performance, track progress, and spot patterns in their own data.\n\n")
	fmt.Fprintf(&b, "Current Date: %s\n\n", now.Format("Monday, January 2, 2006"))

	b.WriteString("## OVERALL TRADING STATISTICS\n")
	fmt.Fprintf(&b, "- Total Trades: %d\n", stats.TotalTrades)
	fmt.Fprintf(&b, "- Closed Trades: %d\n", stats.ClosedTrades)
	fmt.Fprintf(&b, "- Open Trades: %d\n", stats.OpenTrades)
	fmt.Fprintf(&b, "- Total P&L: %.2f\n", stats.TotalPnL)
	fmt.Fprintf(&b, "- Win Rate: %.1f%%\n", stats.WinRate)
	fmt.Fprintf(&b, "- Average Win: %.2f\n", stats.AvgWin)
	fmt.Fprintf(&b, "- Average Loss: %.2f\n", stats.AvgLoss)
	fmt.Fprintf(&b, "- Largest Win: %.2f\n", stats.LargestWin)
	fmt.Fprintf(&b, "- Largest Loss: %.2f\n", stats.LargestLoss)
	fmt.Fprintf(&b, "- Profit Factor: %s\n\n", formatProfitFactor(stats.ProfitFactor))

	fmt.Fprintf(&b, "## CURRENT MONTH (%s %d) STATISTICS\n", now.Month(), now.Year())
	fmt.Fprintf(&b, "- Trades This Month: %d\n", monthStats.TotalTrades)
	fmt.Fprintf(&b, "- Month P&L: %.2f\n", monthStats.TotalPnL)
	fmt.Fprintf(&b, "- Month Win Rate: %.1f%%\n\n", monthStats.WinRate)

	b.WriteString("## CURRENT MONTH GOALS\n")
	writeGoal(&b, goal)

	b.WriteString("\n## RECENT TRADES (Last 10)\n")
	writeTrades(&b, trades, 10, false)

	b.WriteString("\n## STARRED TRADES\n")
	starred := make([]models.Trade, 0)
	for _, t := range trades {
		if t.IsStarred {
			starred = append(starred, t)
		}
	}
	writeTrades(&b, starred, len(starred), true)

	b.WriteString("\n## TRADING MISTAKES TRACKED\n")
	if len(mistakes) == 0 {
		b.WriteString("No mistakes tracked.\n")
	}
	for i, m := range mistakes {
		fmt.Fprintf(&b, "%d. %s (Category: %s, Frequency: %d)\n", i+1, m.Title, orDefault(m.Category, "Uncategorized"), m.Frequency)
	}

	b.WriteString("\n## ACTIVE TRADING RULES\n")
	active := 0
	for _, r := range rules {
		if r.IsActive {
			active++
			fmt.Fprintf(&b, "%d. %s\n", active, r.Rule)
		}
	}
	if active == 0 {
		b.WriteString("No active trading rules.\n")
	}

	b.WriteString("\n## GUIDELINES\n")
	b.WriteString("1. Answer questions about the trader's performance, statistics, and history.\n")
	b.WriteString("2. Help identify patterns, strengths, and areas for improvement.\n")
	b.WriteString("3. Be encouraging but honest about performance.\n")
	b.WriteString("4. Suggest improvements based on the tracked mistakes and rules.\n")
	b.WriteString("5. Keep responses concise but informative.\n")
	b.WriteString("6. If asked about data not available, politely explain what data is available.\n")

	return b.String(), nil
}

func writeGoal(b *strings.Builder, goal *models.Goal) {
	if goal == nil {
		b.WriteString("No goals set for this month.\n")
		return
	}

	if goal.TargetPnL != nil {
		fmt.Fprintf(b, "- Target P&L: %.2f\n", *goal.TargetPnL)
	} else {
		b.WriteString("- Target P&L: Not set\n")
	}
	if goal.TargetWinRate != nil {
		fmt.Fprintf(b, "- Target Win Rate: %.1f%%\n", *goal.TargetWinRate)
	} else {
		b.WriteString("- Target Win Rate: Not set\n")
	}
	if goal.MaxTradesPerDay != nil {
		fmt.Fprintf(b, "- Max Trades Per Day: %d\n", *goal.MaxTradesPerDay)
	} else {
		b.WriteString("- Max Trades Per Day: Not set\n")
	}
}

func writeTrades(b *strings.Builder, trades []models.Trade, limit int, withNotes bool) {
	if len(trades) == 0 {
		b.WriteString("None.\n")
		return
	}
	if limit > len(trades) {
		limit = len(trades)
	}

	for i := 0; i < limit; i++ {
		t := trades[i]
		pnl := "Open"
		if t.ProfitLoss != nil {
			pnl = fmt.Sprintf("%.2f", *t.ProfitLoss)
		}
		fmt.Fprintf(b, "%d. %s (%s) - %s - P&L: %s - Date: %s", i+1, t.Symbol, t.TradeType, t.Status, pnl, t.DayKey())
		if withNotes && t.Notes != "" {
			fmt.Fprintf(b, " - Notes: %s", t.Notes)
		}
		b.WriteString("\n")
	}
}

func formatProfitFactor(pf float64) string {
	if math.IsInf(pf, 1) {
		return "∞"
	}
	return fmt.Sprintf("%.2f", pf)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
