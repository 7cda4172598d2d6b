// Package mail delivers transactional email over an SMTP relay.
package mail

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"ayurfresh/config"
	"ayurfresh/internal/domain/service"

	"github.com/pkg/errors"
)

// smtpSender is a concrete implementation of the MailSender interface on top
// of net/smtp with PLAIN auth.
type smtpSender struct {
	addr string
	host string
	auth smtp.Auth
	from string
}

// NewSMTPSender is the constructor for smtpSender.
func NewSMTPSender(cfg *config.Config) (service.MailSender, error) {
	if cfg.SMTP == nil || cfg.SMTP.Host == "" {
		return nil, errors.New("smtp configuration must be provided")
	}

	var auth smtp.Auth
	if cfg.SMTP.Username != "" {
		auth = smtp.PlainAuth("", cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Host)
	}

	return &smtpSender{
		addr: net.JoinHostPort(cfg.SMTP.Host, strconv.Itoa(cfg.SMTP.Port)),
		host: cfg.SMTP.Host,
		auth: auth,
		from: cfg.SMTP.From,
	}, nil
}

// Send delivers one HTML mail. The context deadline bounds the whole
// exchange: net/smtp has no context support, so the send runs on its own
// goroutine and the caller stops waiting when the context expires.
func (s *smtpSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	message := s.buildMessage(to, subject, htmlBody)

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(s.addr, s.auth, s.from, []string{to}, message)
	}()

	select {
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "smtp send cancelled")
	case err := <-done:
		return errors.Wrap(err, "smtp send failed")
	}
}

func (s *smtpSender) buildMessage(to, subject, htmlBody string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", s.from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)

	return []byte(b.String())
}
