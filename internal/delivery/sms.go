package delivery

import (
	"context"
	"errors"

	"github.com/MKhiriev/trade-ledger-pro/internal/config"
	"github.com/MKhiriev/trade-ledger-pro/internal/logger"
	"github.com/MKhiriev/trade-ledger-pro/models"
)

// ErrNoSMSProvider is returned by every send on an [SMSChannel] that has no
// provider credentials.
var ErrNoSMSProvider = errors.New("no sms provider configured")

// SMSChannel delivers passcodes over SMS. There is no default provider;
// without full credentials the channel reports unconfigured and the auth
// service answers phone logins in demo mode.
//
// TODO: wire a real provider call in sendText once an account exists.
type SMSChannel struct {
	cfg    config.SMS
	logger *logger.Logger
}

// NewSMSChannel constructs an [SMSChannel] from provider settings.
func NewSMSChannel(cfg config.SMS, log *logger.Logger) *SMSChannel {
	return &SMSChannel{cfg: cfg, logger: log}
}

// Configured implements [Channel].
func (c *SMSChannel) Configured() bool {
	return c.cfg.AccountSID != "" && c.cfg.AuthToken != "" && c.cfg.FromNumber != ""
}

// SendOtp sends the passcode to the user's phone number.
func (c *SMSChannel) SendOtp(ctx context.Context, user models.User, code string) error {
	return c.sendText(ctx, user.Phone, "Your verification code is "+code)
}

// SendWeeklyReport is not supported over SMS.
func (c *SMSChannel) SendWeeklyReport(ctx context.Context, user models.User, report string) error {
	return ErrNoSMSProvider
}

// SendGoalAlert is not supported over SMS.
func (c *SMSChannel) SendGoalAlert(ctx context.Context, user models.User, alert string) error {
	return ErrNoSMSProvider
}

func (c *SMSChannel) sendText(ctx context.Context, to, text string) error {
	if !c.Configured() {
		return ErrNoSMSProvider
	}

	c.logger.Debug().Str("func", "*SMSChannel.sendText").Str("to", to).Msg("sms send requested")
	return ErrNoSMSProvider
}
