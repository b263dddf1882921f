package email

import (
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"
)

// SMTPSender delivers over plain SMTP; works against Mailpit locally and an
// unauthenticated relay in deployment. Each session runs under one deadline
// covering the dial and all protocol I/O, so a stalled server fails the send
// instead of hanging the caller.
type SMTPSender struct {
	host    string
	addr    string
	from    string
	timeout time.Duration
}

func NewSMTPSender(host, port, from string, timeout time.Duration) *SMTPSender {
	host = strings.TrimSpace(host)
	port = strings.TrimSpace(port)
	from = strings.TrimSpace(from)
	if from == "" {
		from = "no-reply@belleza.local"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &SMTPSender{
		host:    host,
		addr:    fmt.Sprintf("%s:%s", host, port),
		from:    from,
		timeout: timeout,
	}
}

func (s *SMTPSender) Send(to, subject, body string) error {
	conn, err := net.DialTimeout("tcp", s.addr, s.timeout)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(s.timeout)); err != nil {
		return err
	}

	// NewClient reads the server greeting, so the deadline already guards it.
	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Mail(s.from); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write([]byte(buildMessage(s.from, to, subject, body))); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	return client.Quit()
}

func buildMessage(from, to, subject, body string) string {
	// Minimal RFC 5322 message; plain text is all a reminder needs.
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		from, to, subject, body,
	)
}
