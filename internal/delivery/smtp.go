// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package delivery

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/MKhiriev/trade-ledger-pro/internal/config"
	"github.com/MKhiriev/trade-ledger-pro/internal/logger"
	"github.com/MKhiriev/trade-ledger-pro/models"
)

var otpMailTemplate = template.Must(template.New("otp").Parse(`<html>
<body>
<p>Hello {{.Name}},</p>
<p>Your verification code is <b>{{.Code}}</b>. It expires in 5 minutes.</p>
<p>If you did not request this code, ignore this message.</p>
</body>
</html>`))

// EmailChannel delivers messages over SMTP with PLAIN auth.
type EmailChannel struct {
	cfg    config.Email
	logger *logger.Logger

	// send is swappable in tests; defaults to smtp.SendMail.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewEmailChannel constructs an [EmailChannel] from SMTP settings. The
// channel reports unconfigured until Host, User, and Pass are all set.
func NewEmailChannel(cfg config.Email, log *logger.Logger) *EmailChannel {
	return &EmailChannel{
		cfg:    cfg,
		logger: log,
		send:   smtp.SendMail,
	}
}

// Configured implements [Channel].
func (c *EmailChannel) Configured() bool {
	return c.cfg.Host != "" && c.cfg.User != "" && c.cfg.Pass != ""
}

// SendOtp renders the passcode mail and sends it to the user's address.
func (c *EmailChannel) SendOtp(ctx context.Context, user models.User, code string) error {
	var body bytes.Buffer
	err := otpMailTemplate.Execute(&body, struct {
		Name string
		Code string
	}{Name: user.Name, Code: code})
	if err != nil {
		return fmt.Errorf("error rendering otp mail: %w", err)
	}

	return c.sendMail(ctx, user.Email, "Your verification code", body.String())
}

// SendWeeklyReport sends the rendered weekly summary.
func (c *EmailChannel) SendWeeklyReport(ctx context.Context, user models.User, report string) error {
	return c.sendMail(ctx, user.Email, "Your weekly trading report", report)
}

// SendGoalAlert sends a goal progress alert.
func (c *EmailChannel) SendGoalAlert(ctx context.Context, user models.User, alert string) error {
	return c.sendMail(ctx, user.Email, "Trading goal alert", alert)
}

func (c *EmailChannel) sendMail(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := bytes.Buffer{}
	fmt.Fprintf(&msg, "From: %s\r\n", c.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	addr := fmt.Sprintf("%s:%d", c.cfg.Host, c.cfg.Port)
	auth := smtp.PlainAuth("", c.cfg.User, c.cfg.Pass, c.cfg.Host)

	if err := c.send(addr, auth, c.cfg.From, []string{to}, msg.Bytes()); err != nil {
		c.logger.Err(err).Str("func", "*EmailChannel.sendMail").Msg("error sending mail")
		return fmt.Errorf("error sending mail: %w", err)
	}

	return nil
}
