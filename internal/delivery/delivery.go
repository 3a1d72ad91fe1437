// Package delivery sends transactional messages to users: one-time
// passcodes, weekly performance reports, and goal alerts.
//
// A [Sender] routes each message over the channel the caller picked. A
// channel that is not configured reports so via Configured; the auth
// service uses that signal to fall back to demo mode instead of failing
// the login.
package delivery

import (
	"context"

	"github.com/MKhiriev/trade-ledger-pro/models"
)

// Channel delivers messages over one transport (e-mail or SMS).
type Channel interface {
	// Configured reports whether the transport has the credentials it
	// needs to actually deliver anything.
	Configured() bool

	SendOtp(ctx context.Context, user models.User, code string) error
	SendWeeklyReport(ctx context.Context, user models.User, report string) error
	SendGoalAlert(ctx context.Context, user models.User, alert string) error
}

// Sender dispatches messages to the channel matching a delivery method.
type Sender struct {
	email Channel
	sms   Channel
}

// NewSender wires the e-mail and SMS channels into one dispatcher.
// Either channel may be an unconfigured implementation.
func NewSender(email, sms Channel) *Sender {
	return &Sender{email: email, sms: sms}
}

func (s *Sender) channel(method models.DeliveryMethod) Channel {
	if method == models.DeliveryPhone {
		return s.sms
	}
	return s.email
}

// Configured reports whether the channel for method can deliver messages.
func (s *Sender) Configured(method models.DeliveryMethod) bool {
	return s.channel(method).Configured()
}

// SendOtp delivers a passcode over the requested channel.
func (s *Sender) SendOtp(ctx context.Context, user models.User, method models.DeliveryMethod, code string) error {
	return s.channel(method).SendOtp(ctx, user, code)
}

// SendWeeklyReport delivers a weekly performance summary over e-mail.
func (s *Sender) SendWeeklyReport(ctx context.Context, user models.User, report string) error {
	return s.email.SendWeeklyReport(ctx, user, report)
}

// SendGoalAlert delivers a goal progress alert over e-mail.
func (s *Sender) SendGoalAlert(ctx context.Context, user models.User, alert string) error {
	return s.email.SendGoalAlert(ctx, user, alert)
}
