package email

import (
	"context"
	"fmt"
	"mime"
	"net/smtp"
	"strings"
)

// Config holds SMTP settings
type Config struct {
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
}

// Message is one HTML email
type Message struct {
	To       string
	Subject  string
	HTMLBody string
}

// SendFunc matches smtp.SendMail
type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Mailer sends HTML mail over SMTP
type Mailer struct {
	config Config
	send   SendFunc
}

// NewMailer creates a mailer using smtp.SendMail
func NewMailer(config Config) *Mailer {
	return &Mailer{config: config, send: smtp.SendMail}
}

// NewMailerWithSender creates a mailer that delivers through send
func NewMailerWithSender(config Config, send SendFunc) *Mailer {
	return &Mailer{config: config, send: send}
}

// Enabled reports whether an SMTP host and sender address are configured
func (m *Mailer) Enabled() bool {
	return m != nil && m.config.SMTPHost != "" && m.config.FromEmail != ""
}

// Send delivers msg. ctx is checked before the SMTP exchange starts;
// net/smtp itself cannot be cancelled.
func (m *Mailer) Send(ctx context.Context, msg Message) error {
	if !m.Enabled() {
		return fmt.Errorf("email: mailer is not configured")
	}
	if strings.ContainsAny(msg.To, "\r\n") || !strings.Contains(msg.To, "@") {
		return fmt.Errorf("email: invalid recipient %q", msg.To)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	addr := m.config.SMTPHost + ":" + m.config.SMTPPort
	var auth smtp.Auth
	if m.config.SMTPUsername != "" {
		auth = smtp.PlainAuth("", m.config.SMTPUsername, m.config.SMTPPassword, m.config.SMTPHost)
	}

	if err := m.send(addr, auth, m.config.FromEmail, []string{msg.To}, m.build(msg)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (m *Mailer) build(msg Message) []byte {
	headers := fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
			"\r\n",
		mime.QEncoding.Encode("utf-8", m.config.FromName),
		m.config.FromEmail,
		msg.To,
		mime.QEncoding.Encode("utf-8", msg.Subject),
	)

	return []byte(headers + msg.HTMLBody)
}
