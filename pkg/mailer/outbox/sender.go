// Package outbox is the development transport: instead of relaying over
// SMTP it writes each message to a local directory as a discrete .eml file
// containing the full serialization (headers plus multipart body) as it
// would have crossed the wire. Success means the file was written; no
// delivery of any kind occurs.
package outbox

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	gomail "gopkg.in/mail.v2"

	"github.com/dmitrymomot/courier/pkg/id"
)

// Sender writes messages into a local outbox directory.
type Sender struct {
	dir string
}

// New creates the outbox directory if it does not exist and returns a
// file-backed sender.
func New(dir string) (*Sender, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create outbox directory: %w", err)
	}
	return &Sender{dir: dir}, nil
}

// Dir returns the outbox directory path.
func (s *Sender) Dir() string {
	return s.dir
}

// Send serializes the message into a new file. Filenames sort
// chronologically by their UTC timestamp prefix; the random suffix keeps
// same-second messages apart.
func (s *Sender) Send(ctx context.Context, msg *gomail.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name := fmt.Sprintf("%s_%s.eml", time.Now().UTC().Format("20060102T150405"), id.New())
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create outbox file: %w", err)
	}

	if _, err := msg.WriteTo(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("write outbox file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close outbox file: %w", err)
	}
	return nil
}
