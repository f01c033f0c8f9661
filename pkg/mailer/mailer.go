package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"

	"github.com/dmitrymomot/courier/pkg/id"
)

// Config holds the addressing and template settings for the dispatch
// pipeline. Embed in the app config for env parsing.
type Config struct {
	TemplatesDir string `env:"TEMPLATES_DIR" envDefault:"./templates"`
	From         string `env:"MAIL_FROM,required"`
	ReplyTo      string `env:"MAIL_REPLY_TO"` // optional; omits the header when empty
}

// Mailer renders templates and dispatches the result through the configured
// Sender. It is constructed once at startup and safe for concurrent use;
// nothing is mutated after New returns.
type Mailer struct {
	sender       Sender
	registry     Registry
	from         mail.Address
	replyTo      *mail.Address
	templatesDir string
	log          *slog.Logger
}

// New validates the configured mailboxes, primes the template registry, and
// returns an immutable Mailer.
func New(sender Sender, cfg Config, log *slog.Logger) (*Mailer, error) {
	from, err := mail.ParseAddress(cfg.From)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid sender mailbox %q: %v", ErrConfig, cfg.From, err)
	}

	var replyTo *mail.Address
	if cfg.ReplyTo != "" {
		replyTo, err = mail.ParseAddress(cfg.ReplyTo)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid reply-to mailbox %q: %v", ErrConfig, cfg.ReplyTo, err)
		}
	}

	m := &Mailer{
		sender:       sender,
		from:         *from,
		replyTo:      replyTo,
		templatesDir: cfg.TemplatesDir,
		log:          log,
	}
	if err := m.registry.Init(cfg.TemplatesDir); err != nil {
		return nil, err
	}
	return m, nil
}

// SendParams is the caller input for one dispatch.
type SendParams struct {
	To       string         // comma-separated recipient mailboxes
	Subject  string         // message subject
	Template string         // template name without extension
	Vars     map[string]any // template variables, strict: referenced keys must exist
}

// Send runs the dispatch pipeline: parse recipients, render the template in
// strict mode, derive the plaintext alternative, assemble the multipart
// message, and hand it to the transport. Each step short-circuits on
// failure, so a returned error means nothing was sent. On success it
// returns a fresh opaque delivery identifier.
func (m *Mailer) Send(ctx context.Context, p SendParams) (string, error) {
	to, err := parseRecipients(p.To)
	if err != nil {
		return "", err
	}

	html, err := m.registry.Render(m.templatesDir, p.Template, p.Vars)
	if err != nil {
		return "", err
	}

	msg := m.buildMessage(to, p.Subject, html)

	if err := m.sender.Send(ctx, msg); err != nil {
		return "", fmt.Errorf("%w: %v", ErrSMTP, err)
	}

	deliveryID := id.New()
	m.log.InfoContext(ctx, "message dispatched",
		slog.String("delivery_id", deliveryID),
		slog.String("template", p.Template),
		slog.Int("recipients", len(to)),
	)
	return deliveryID, nil
}
