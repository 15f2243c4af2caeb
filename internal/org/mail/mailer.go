// Package mail delivers invitation emails. The SMTP implementation is
// deliberately plain (net/smtp, text body); anything richer belongs in a
// provider-specific mailer behind the same interface.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"github.com/quorumhq/quorum/pkg/slogx"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer sends a single message. Implementations must be safe for
// concurrent use.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPMailer sends through a relay with optional PLAIN auth.
type SMTPMailer struct {
	Addr string // host:port
	From string
	Auth smtp.Auth
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.From)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	b.WriteString(msg.Body)

	return smtp.SendMail(m.Addr, m.Auth, m.From, []string{msg.To}, []byte(b.String()))
}

// LogMailer logs instead of sending. Used in development and tests.
type LogMailer struct{}

func (m *LogMailer) Send(ctx context.Context, msg Message) error {
	slogx.FromContext(ctx).Info("mail suppressed (log mailer)",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
	)
	return nil
}

// InviteMessage renders the invitation email. acceptURL already carries the
// signed token.
func InviteMessage(to, organizationName, acceptURL string) Message {
	target := organizationName
	if target == "" {
		target = "the platform"
	}
	return Message{
		To:      to,
		Subject: fmt.Sprintf("You have been invited to join %s", target),
		Body: fmt.Sprintf(
			"Hello,\r\n\r\n"+
				"You have been invited to join %s.\r\n\r\n"+
				"Accept the invitation by opening the link below:\r\n\r\n%s\r\n\r\n"+
				"The link expires in 7 days. If you were not expecting this email you can ignore it.\r\n",
			target, acceptURL),
	}
}
