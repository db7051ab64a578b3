package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/tradesbook-ie/tradesbook/internal/application/notification"
	"github.com/tradesbook-ie/tradesbook/internal/shared/logger"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

// dialer is the part of gomail.Dialer the sender uses.
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	return &SMTPEmailService{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}
}

func (s *SMTPEmailService) Send(ctx context.Context, e notification.Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.dialer.DialAndSend(s.buildMessage(e))
}

func (s *SMTPEmailService) buildMessage(e notification.Email) *gomail.Message {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	if e.ToName != "" {
		m.SetAddressHeader("To", e.To, e.ToName)
	} else {
		m.SetHeader("To", e.To)
	}
	m.SetHeader("Subject", e.Subject)
	m.SetBody("text/plain", e.TextBody)
	if e.HTMLBody != "" {
		m.AddAlternative("text/html", e.HTMLBody)
	}
	return m
}

var _ notification.EmailSender = (*SMTPEmailService)(nil)

// LogEmailService records emails instead of sending them. It is used when
// SMTP delivery is disabled.
type LogEmailService struct {
	logger logger.Interface
}

func NewLogEmailService(logger logger.Interface) *LogEmailService {
	return &LogEmailService{logger: logger}
}

func (s *LogEmailService) Send(_ context.Context, e notification.Email) error {
	if e.To == "" {
		return fmt.Errorf("email recipient is required")
	}
	s.logger.Infow("email delivery disabled, skipping send", "to", e.To, "subject", e.Subject)
	return nil
}
