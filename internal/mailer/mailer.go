package mailer

import (
	"context"
	"log"

	"github.com/shopspring/decimal"
	"gopkg.in/gomail.v2"
)

// Receipt is everything the confirmation email needs.
type Receipt struct {
	Email         string
	Name          string
	Amount        decimal.Decimal
	Currency      string
	TransactionID string
	Locale        string
}

type Mailer interface {
	SendReceipt(ctx context.Context, r Receipt) error
}

// SMTPMailer sends receipts through the configured SMTP relay.
type SMTPMailer struct {
	dialer        *gomail.Dialer
	from          string
	contactEmail  string
	bcc           []string
	defaultLocale string
}

func NewSMTPMailer(host string, port int, user, password, from, contactEmail string, bcc []string, defaultLocale string) *SMTPMailer {
	return &SMTPMailer{
		dialer:        gomail.NewDialer(host, port, user, password),
		from:          from,
		contactEmail:  contactEmail,
		bcc:           bcc,
		defaultLocale: defaultLocale,
	}
}

func (m *SMTPMailer) SendReceipt(_ context.Context, r Receipt) error {
	if r.Email == "" {
		return nil
	}

	subject, text, html, err := renderReceipt(r, m.contactEmail, m.defaultLocale)
	if err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", r.Email)
	msg.SetHeader("Reply-To", m.contactEmail)
	if len(m.bcc) > 0 {
		msg.SetHeader("Bcc", m.bcc...)
	}
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", text)
	msg.AddAlternative("text/html", html)

	return m.dialer.DialAndSend(msg)
}

// ConsoleMailer logs receipts instead of sending them. Used in dev and tests.
type ConsoleMailer struct {
	enabled bool
}

func NewConsoleMailer(enabled bool) *ConsoleMailer {
	return &ConsoleMailer{enabled: enabled}
}

func (m *ConsoleMailer) SendReceipt(_ context.Context, r Receipt) error {
	if m.enabled {
		log.Printf("[DEV-EMAIL] receipt email=%s amount=%s %s intent=%s locale=%s",
			r.Email, r.Amount.StringFixed(2), r.Currency, r.TransactionID, r.Locale)
	}
	return nil
}
