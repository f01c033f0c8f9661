package mailer

import (
	"context"

	gomail "gopkg.in/mail.v2"
)

// Sender delivers an assembled message. Exactly two implementations exist:
// the SMTP relay (pkg/mailer/smtp) and the local file outbox
// (pkg/mailer/outbox). The variant is selected once at startup and never
// switched at runtime; callers stay transport-agnostic.
type Sender interface {
	Send(ctx context.Context, msg *gomail.Message) error
}
