// Courier is a single-endpoint mail dispatch service: POST /send renders a
// named template with caller-supplied variables and relays the resulting
// multipart message over SMTP, or writes it to a local outbox directory
// when running in development.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrymomot/courier/internal/handler"
	"github.com/dmitrymomot/courier/pkg/config"
	"github.com/dmitrymomot/courier/pkg/httpserver"
	"github.com/dmitrymomot/courier/pkg/logger"
	"github.com/dmitrymomot/courier/pkg/mailer"
	"github.com/dmitrymomot/courier/pkg/mailer/outbox"
	"github.com/dmitrymomot/courier/pkg/mailer/smtp"
)

type transportConfig struct {
	Kind      string `env:"MAIL_TRANSPORT" envDefault:"file"` // smtp or file
	OutboxDir string `env:"OUTBOX_DIR" envDefault:"./outbox"`
}

type authConfig struct {
	APIKey string `env:"API_KEY"` // empty disables authentication
}

func main() {
	var logCfg logger.Config
	config.MustLoad(&logCfg)
	log := logger.New(logCfg)

	if err := run(log); err != nil {
		log.Error("service failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	var (
		srvCfg  httpserver.Config
		mailCfg mailer.Config
		trCfg   transportConfig
		auth    authConfig
	)
	for _, err := range []error{
		config.Load(&srvCfg),
		config.Load(&mailCfg),
		config.Load(&trCfg),
		config.Load(&auth),
	} {
		if err != nil {
			return err
		}
	}

	sender, err := newSender(trCfg)
	if err != nil {
		return err
	}

	m, err := mailer.New(sender, mailCfg, log)
	if err != nil {
		return err
	}

	log.Info("mailer ready",
		slog.String("transport", trCfg.Kind),
		slog.String("templates_dir", mailCfg.TemplatesDir),
	)

	srv := httpserver.New(srvCfg, log)
	return srv.Run(context.Background(), handler.Routes(m, auth.APIKey, log))
}

// newSender selects the transport once at startup. The set is closed:
// anything but smtp or file refuses to start.
func newSender(cfg transportConfig) (mailer.Sender, error) {
	switch cfg.Kind {
	case "smtp":
		var smtpCfg smtp.Config
		if err := config.Load(&smtpCfg); err != nil {
			return nil, err
		}
		return smtp.New(smtpCfg), nil
	case "file":
		return outbox.New(cfg.OutboxDir)
	default:
		return nil, fmt.Errorf("unknown mail transport %q (want smtp or file)", cfg.Kind)
	}
}
