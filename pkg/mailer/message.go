package mailer

import (
	"fmt"
	"net/mail"
	"strings"

	gomail "gopkg.in/mail.v2"

	"github.com/dmitrymomot/courier/pkg/htmltext"
)

// parseRecipients splits a comma-separated recipient string, trims each
// segment, and parses it as an RFC 5322 mailbox. The whole operation fails
// on the first invalid entry; there is no partial-recipient delivery.
// Order is preserved.
func parseRecipients(to string) ([]*mail.Address, error) {
	parts := strings.Split(to, ",")
	addrs := make([]*mail.Address, 0, len(parts))
	for _, p := range parts {
		s := strings.TrimSpace(p)
		addr, err := mail.ParseAddress(s)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid recipient %q: %v", ErrConfig, s, err)
		}
		addrs = append(addrs, addr)
	}
	return addrs, nil
}

// buildMessage assembles the addressed multipart/alternative message.
// The plaintext part is added before the HTML part: clients that stop at
// the first recognized alternative must see plaintext, while richer clients
// select the HTML part by content type.
func (m *Mailer) buildMessage(to []*mail.Address, subject, html string) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from.Address, m.from.Name)
	if m.replyTo != nil {
		msg.SetAddressHeader("Reply-To", m.replyTo.Address, m.replyTo.Name)
	}

	recipients := make([]string, len(to))
	for i, addr := range to {
		recipients[i] = msg.FormatAddress(addr.Address, addr.Name)
	}
	msg.SetHeader("To", recipients...)
	msg.SetHeader("Subject", subject)

	msg.SetBody("text/plain", htmltext.Strip(html))
	msg.AddAlternative("text/html", html)
	return msg
}
