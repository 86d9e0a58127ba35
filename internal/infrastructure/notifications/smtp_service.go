package notifications

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/sachinkumar2222/Productr/domain"
)

// SMTPSender delivers codes over email.
type SMTPSender struct {
	host     string
	port     int
	username string
	password string
	from     string
	fromName string
}

// NewSMTPSender creates a new SMTP email sender.
func NewSMTPSender(host string, port int, username, password, from, fromName string) *SMTPSender {
	return &SMTPSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		fromName: fromName,
	}
}

// Deliver implements domain.NotificationSender for email recipients.
func (s *SMTPSender) Deliver(_ context.Context, key domain.RecipientKey, code string) error {
	fromHeader := fmt.Sprintf("%s <%s>", s.fromName, s.from)

	msg := strings.Join([]string{
		fmt.Sprintf("From: %s", fromHeader),
		fmt.Sprintf("To: %s", key.Value),
		"Subject: Your Productr Login Verification Code",
		"MIME-Version: 1.0",
		`Content-Type: text/html; charset="UTF-8"`,
		"",
		otpEmailBody(code),
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	if err := smtp.SendMail(addr, auth, s.from, []string{key.Value}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func otpEmailBody(code string) string {
	return fmt.Sprintf(`<div style="font-family:sans-serif;max-width:480px;margin:0 auto">
  <h2>Productr</h2>
  <p>Use this code to sign in. It is valid for 10 minutes.</p>
  <p style="font-size:32px;letter-spacing:8px;font-weight:bold">%s</p>
  <p>If you did not request this code, you can ignore this email.</p>
</div>`, code)
}

var _ domain.NotificationSender = (*SMTPSender)(nil)
