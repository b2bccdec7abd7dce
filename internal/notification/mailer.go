package notification

import (
	"context"
	"errors"

	"github.com/wb-go/wbf/logger"
	gomail "gopkg.in/gomail.v2"

	"github.com/abdul977/lodgebooker/internal/config"
)

var errMailerDisabled = errors.New("smtp is not configured")

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	log    logger.Logger
}

// NewSMTPMailer builds the SMTP mailer. With no host configured the
// mailer stays disabled and every send fails, which the dispatcher
// records in the delivery log instead of dropping silently.
func NewSMTPMailer(cfg config.SMTPConfig, log logger.Logger) *SMTPMailer {
	m := &SMTPMailer{from: cfg.From, log: log}
	if cfg.Host == "" {
		log.Warn("smtp host is empty, outbound mail disabled")
		return m
	}

	m.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return m
}

func (m *SMTPMailer) Send(ctx context.Context, recipient, subject, body string) error {
	if m.dialer == nil {
		return errMailerDisabled
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	return m.dialer.DialAndSend(msg)
}
