package email_test

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"github.com/sangkips/hospitality-pos/pkg/email"
)

type capture struct {
	addr string
	from string
	to   []string
	msg  string
}

func testConfig() email.Config {
	return email.Config{
		SMTPHost:  "smtp.example.com",
		SMTPPort:  "587",
		FromName:  "Spice Route",
		FromEmail: "billing@spiceroute.example",
	}
}

func TestMailer_Send(t *testing.T) {
	var got capture
	m := email.NewMailerWithSender(testConfig(), func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		got = capture{addr: addr, from: from, to: to, msg: string(msg)}
		return nil
	})

	err := m.Send(context.Background(), email.Message{
		To:       "guest@example.com",
		Subject:  "Invoice INV-1",
		HTMLBody: "<p>Thanks</p>",
	})
	if err != nil {
		t.Fatal(err)
	}
	if got.addr != "smtp.example.com:587" || got.from != "billing@spiceroute.example" {
		t.Errorf("got %+v", got)
	}
	if len(got.to) != 1 || got.to[0] != "guest@example.com" {
		t.Errorf("to: %v", got.to)
	}
	if !strings.Contains(got.msg, "Subject: Invoice INV-1\r\n") || !strings.HasSuffix(got.msg, "<p>Thanks</p>") {
		t.Errorf("message: %q", got.msg)
	}
}

func TestMailer_Rejects(t *testing.T) {
	sendErr := errors.New("relay denied")
	failing := email.NewMailerWithSender(testConfig(), func(string, smtp.Auth, string, []string, []byte) error {
		return sendErr
	})

	tests := []struct {
		name   string
		mailer *email.Mailer
		to     string
	}{
		{"not configured", email.NewMailer(email.Config{}), "guest@example.com"},
		{"header injection", failing, "guest@example.com\r\nBcc: x@y.z"},
		{"no at sign", failing, "guest"},
		{"transport error", failing, "guest@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.mailer.Send(context.Background(), email.Message{To: tt.to}); err == nil {
				t.Error("expected error")
			}
		})
	}

	err := failing.Send(context.Background(), email.Message{To: "guest@example.com"})
	if !errors.Is(err, sendErr) {
		t.Errorf("expected wrapped transport error, got %v", err)
	}
}
