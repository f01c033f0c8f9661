package smtp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	gomail "gopkg.in/mail.v2"

	"github.com/dmitrymomot/courier/pkg/mailer"
	"github.com/dmitrymomot/courier/pkg/mailer/smtp"
)

var _ mailer.Sender = (*smtp.Sender)(nil)

func TestSend_CancelledContext(t *testing.T) {
	t.Parallel()

	s := smtp.New(smtp.Config{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "user",
		Password: "pass",
	})

	msg := gomail.NewMessage()
	msg.SetHeader("From", "no-reply@x.com")
	msg.SetHeader("To", "a@x.com")
	msg.SetBody("text/plain", "hi")

	// An already-cancelled context must fail before any connection attempt.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := s.Send(ctx, msg)
	require.ErrorIs(t, err, context.Canceled)
}
