// Package mailer implements the rendering-and-dispatch pipeline behind the
// send endpoint: template resolution with strict-variable rendering, a
// derived plaintext alternative, multipart/alternative assembly, and
// delivery through a pluggable Sender.
//
// # Usage
//
//	sender, _ := outbox.New("./outbox")
//	m, err := mailer.New(sender, mailer.Config{
//		TemplatesDir: "./templates",
//		From:         "Courier <no-reply@example.com>",
//	}, log)
//	if err != nil {
//		// handle error
//	}
//
//	deliveryID, err := m.Send(ctx, mailer.SendParams{
//		To:       "ann@example.com, bob@example.com",
//		Subject:  "Welcome",
//		Template: "welcome",
//		Vars:     map[string]any{"name": "Ann"},
//	})
//
// # Error taxonomy
//
// Every failure is classified into exactly one of ErrTemplateNotFound,
// ErrRender, ErrSMTP, or ErrConfig at the point of detection and carries a
// human-readable detail string. There are no retries and no partial
// successes: an error means nothing was sent.
//
// # Templates
//
// A template named X resolves to X.html under the templates directory.
// Rendering is strict: referencing a variable absent from the request's
// vars fails with ErrRender rather than printing an empty string, turning
// silent content bugs into caller-visible errors. An optional base.html at
// the directory root is loaded once per process and attached to every
// render as the associated template "base".
package mailer
