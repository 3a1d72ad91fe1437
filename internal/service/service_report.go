package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"time"

	"github.com/MKhiriev/trade-ledger-pro/internal/analytics"
	"github.com/MKhiriev/trade-ledger-pro/internal/delivery"
	"github.com/MKhiriev/trade-ledger-pro/internal/logger"
	"github.com/MKhiriev/trade-ledger-pro/internal/store"
	"github.com/MKhiriev/trade-ledger-pro/models"
)

var weeklyReportTemplate = template.Must(template.New("weekly").Parse(`<html>
<body>
<p>Hello {{.Name}},</p>
<p>Here is your trading summary for the week of {{.WeekStart}}.</p>
<ul>
<li>Trades: {{.Summary.TotalTrades}} ({{.Summary.ClosedTrades}} closed)</li>
<li>P&amp;L: {{printf "%.2f" .Summary.TotalPnL}}</li>
<li>Win rate: {{printf "%.1f" .Summary.WinRate}}%</li>
<li>Largest win: {{printf "%.2f" .Summary.LargestWin}}</li>
<li>Largest loss: {{printf "%.2f" .Summary.LargestLoss}}</li>
</ul>
<p>Keep your journal honest and your risk small.</p>
</body>
</html>`))

var goalAlertTemplate = template.Must(template.New("goal").Parse(`<html>
<body>
<p>Hello {{.Name}},</p>
<p>You reached your monthly P&amp;L target of {{printf "%.2f" .Target}}. Current month P&amp;L: {{printf "%.2f" .Actual}}.</p>
</body>
</html>`))

// reportService is the concrete implementation of [ReportService]. It is
// driven by the background worker, not by HTTP requests.
type reportService struct {
	userRepository  store.UserRepository
	tradeRepository store.TradeRepository
	goalRepository  store.GoalRepository

	sender *delivery.Sender

	// now is swappable in tests; defaults to time.Now.
	now func() time.Time

	logger *logger.Logger
}

// NewReportService constructs a [ReportService] backed by the given
// repositories and delivery sender.
func NewReportService(storages *store.Storages, sender *delivery.Sender, logger *logger.Logger) ReportService {
	return &reportService{
		userRepository:  storages.UserRepository,
		tradeRepository: storages.TradeRepository,
		goalRepository:  storages.GoalRepository,
		sender:          sender,
		now:             time.Now,
		logger:          logger,
	}
}

// SendWeeklyReports renders and delivers a seven-day performance summary to
// every user who traded during the window, plus a goal alert to users whose
// monthly P&L target has been reached. A per-user failure is logged and
// skipped; one broken mailbox never blocks the rest of the run.
func (s *reportService) SendWeeklyReports(ctx context.Context) error {
	if !s.sender.Configured(models.DeliveryEmail) {
		s.logger.Debug().Str("func", "*reportService.SendWeeklyReports").Msg("email channel unconfigured, skipping reports")
		return nil
	}

	users, err := s.userRepository.GetAllUsers(ctx)
	if err != nil {
		return fmt.Errorf("user listing failed: %w", err)
	}

	now := s.now()
	weekStart := now.AddDate(0, 0, -7)

	var failed int
	for _, user := range users {
		if err := s.reportForUser(ctx, user, weekStart, now); err != nil {
			s.logger.Err(err).Int64("userID", user.UserID).Msg("weekly report failed")
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("weekly reports: %d of %d users failed", failed, len(users))
	}

	return nil
}

func (s *reportService) reportForUser(ctx context.Context, user models.User, weekStart, now time.Time) error {
	weekTrades, err := s.tradeRepository.ListTrades(ctx, user.UserID, store.TradeFilter{From: &weekStart, To: &now})
	if err != nil {
		return fmt.Errorf("trade listing failed: %w", err)
	}
	if len(weekTrades) == 0 {
		// nothing to report
		return nil
	}

	summary := analytics.ComputeSummary(weekTrades)

	var body bytes.Buffer
	err = weeklyReportTemplate.Execute(&body, struct {
		Name      string
		WeekStart string
		Summary   analytics.Summary
	}{Name: user.Name, WeekStart: weekStart.Format("January 2"), Summary: summary})
	if err != nil {
		return fmt.Errorf("error rendering weekly report: %w", err)
	}

	if err := s.sender.SendWeeklyReport(ctx, user, body.String()); err != nil {
		return fmt.Errorf("error sending weekly report: %w", err)
	}

	return s.goalAlertForUser(ctx, user, now)
}

// goalAlertForUser sends a congratulation when the month's P&L target has
// been reached. Absent goals and unset targets are silently skipped.
func (s *reportService) goalAlertForUser(ctx context.Context, user models.User, now time.Time) error {
	goal, err := s.goalRepository.FindGoal(ctx, user.UserID, int(now.Month()), now.Year())
	if err != nil {
		if errors.Is(err, store.ErrGoalNotFound) {
			return nil
		}
		return fmt.Errorf("goal lookup failed: %w", err)
	}
	if goal.TargetPnL == nil || *goal.TargetPnL <= 0 {
		return nil
	}

	trades, err := s.tradeRepository.ListTrades(ctx, user.UserID, store.TradeFilter{})
	if err != nil {
		return fmt.Errorf("trade listing failed: %w", err)
	}
	monthSummary := analytics.ComputeSummary(analytics.FilterByMonth(trades, int(now.Month()), now.Year()))

	if monthSummary.TotalPnL < *goal.TargetPnL {
		return nil
	}

	var body bytes.Buffer
	err = goalAlertTemplate.Execute(&body, struct {
		Name   string
		Target float64
		Actual float64
	}{Name: user.Name, Target: *goal.TargetPnL, Actual: monthSummary.TotalPnL})
	if err != nil {
		return fmt.Errorf("error rendering goal alert: %w", err)
	}

	if err := s.sender.SendGoalAlert(ctx, user, body.String()); err != nil {
		return fmt.Errorf("error sending goal alert: %w", err)
	}

	return nil
}
