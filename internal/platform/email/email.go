package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/pkg/errors"

	"hrdesk/internal/domain/notifications"
	"hrdesk/internal/platform/config"
)

const (
	dialTimeout = 10 * time.Second
	// Port 465 speaks TLS from the first byte; every other port starts in plaintext.
	implicitTLSPort = 465
)

type noopMailer struct{}

func (noopMailer) Send(ctx context.Context, from, to, subject, body string) error {
	return nil
}

type dialFunc func(ctx context.Context, network, addr string) (net.Conn, error)

type smtpMailer struct {
	cfg  config.Config
	dial dialFunc
}

// New returns an SMTP mailer, or a mailer that drops everything when email is disabled.
func New(cfg config.Config) notifications.Mailer {
	if !cfg.EmailEnabled || cfg.SMTPHost == "" {
		return noopMailer{}
	}
	dialer := &net.Dialer{Timeout: dialTimeout}
	m := &smtpMailer{cfg: cfg, dial: dialer.DialContext}
	if implicitTLS(cfg) {
		tlsDialer := &tls.Dialer{NetDialer: dialer, Config: tlsConfig(cfg)}
		m.dial = tlsDialer.DialContext
	}
	return m
}

func implicitTLS(cfg config.Config) bool {
	return cfg.SMTPPort == implicitTLSPort
}

// startTLS reports whether a plaintext session must be upgraded before auth.
func startTLS(cfg config.Config) bool {
	return cfg.SMTPUseTLS && !implicitTLS(cfg)
}

func tlsConfig(cfg config.Config) *tls.Config {
	return &tls.Config{ServerName: cfg.SMTPHost, MinVersion: tls.VersionTLS12}
}

// Send delivers a plain text message. The whole SMTP exchange runs on the caller's
// goroutine and is bounded by ctx, so a nil error means the server accepted the message.
func (s *smtpMailer) Send(ctx context.Context, from, to, subject, body string) error {
	if strings.TrimSpace(to) == "" {
		return nil
	}
	addr := net.JoinHostPort(s.cfg.SMTPHost, strconv.Itoa(s.cfg.SMTPPort))
	conn, err := s.dial(ctx, "tcp", addr)
	if err != nil {
		return errors.Wrapf(err, "dial smtp %s", addr)
	}
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	var client *smtp.Client
	if startTLS(s.cfg) {
		client, err = smtp.NewClientStartTLS(conn, tlsConfig(s.cfg))
		if err != nil {
			return sendErr(ctx, err, "smtp starttls")
		}
	} else {
		client = smtp.NewClient(conn)
	}
	defer client.Close()

	// go-smtp arms its own per-command deadline, so cap it at what ctx has left.
	if deadline, ok := ctx.Deadline(); ok {
		remaining := time.Until(deadline)
		client.CommandTimeout = remaining
		client.SubmissionTimeout = remaining
	}

	if s.cfg.SMTPUser != "" {
		if err := client.Auth(sasl.NewPlainClient("", s.cfg.SMTPUser, s.cfg.SMTPPassword)); err != nil {
			return sendErr(ctx, err, "smtp auth")
		}
	}
	msg := strings.NewReader(buildMessage(from, to, subject, body))
	if err := client.SendMail(from, []string{to}, msg); err != nil {
		return sendErr(ctx, err, fmt.Sprintf("send mail to %s", to))
	}
	// The message is already queued; a failed QUIT does not undo delivery.
	_ = client.Quit()
	return nil
}

func sendErr(ctx context.Context, err error, msg string) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return errors.Wrap(ctxErr, msg)
	}
	return errors.Wrap(err, msg)
}

func buildMessage(from, to, subject, body string) string {
	headers := []string{
		fmt.Sprintf("From: %s", from),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
	}
	return strings.Join(headers, "\r\n") + "\r\n" + body
}
