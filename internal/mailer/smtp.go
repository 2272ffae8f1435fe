// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package mailer provides the SMTP implementation of the newsletter
// Sender interface, built on wneessen/go-mail.
package mailer

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
)

// SMTP sends HTML email through an SMTP relay. Safe for concurrent use:
// each Send dials its own connection, which keeps the dispatcher's batch
// concurrency honest (one connection per in-flight send).
type SMTP struct {
	host string
	port int
	user string
	pass string
	from string
}

// NewSMTP creates an SMTP sender. user may be empty for relays without
// authentication (e.g. a local test relay).
func NewSMTP(host string, port int, user, pass, from string) *SMTP {
	return &SMTP{host: host, port: port, user: user, pass: pass, from: from}
}

// Send delivers one HTML message. No retries: delivery failures are
// terminal and reported to the caller for counting.
func (s *SMTP) Send(ctx context.Context, to, subject, htmlBody string) error {
	opts := []mail.Option{
		mail.WithPort(s.port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if s.user != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.user),
			mail.WithPassword(s.pass),
		)
	}

	client, err := mail.NewClient(s.host, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	msg := mail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return fmt.Errorf("smtp from %q: %w", s.from, err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("smtp to %q: %w", to, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}
	return nil
}
