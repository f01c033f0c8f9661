// Package smtp delivers messages over an authenticated STARTTLS SMTP
// session. It is the production transport; see pkg/mailer/outbox for the
// development one.
package smtp

import (
	"context"
	"time"

	gomail "gopkg.in/mail.v2"
)

// operationTimeout bounds the whole dial-auth-send transaction. There is no
// retry on failure and no cancellation of an in-flight send beyond it.
const operationTimeout = 15 * time.Second

// Config holds SMTP relay settings.
type Config struct {
	Host     string `env:"SMTP_HOST,required"`
	Port     int    `env:"SMTP_PORT" envDefault:"587"`
	Username string `env:"SMTP_USERNAME,required"`
	Password string `env:"SMTP_PASSWORD,required"`
}

// Sender sends messages through a single configured relay.
// Safe for concurrent use; each Send runs its own SMTP transaction.
type Sender struct {
	dialer *gomail.Dialer
}

// New creates an SMTP sender with mandatory STARTTLS and the fixed
// operation timeout.
func New(cfg Config) *Sender {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.StartTLSPolicy = gomail.MandatoryStartTLS
	d.Timeout = operationTimeout
	return &Sender{dialer: d}
}

// Send performs the SMTP transaction for one message. Connection, auth,
// and protocol failures all surface as the underlying error text.
func (s *Sender) Send(ctx context.Context, msg *gomail.Message) error {
	// The dialer has no context support; honor an already-expired context
	// before opening a connection.
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.dialer.DialAndSend(msg)
}
