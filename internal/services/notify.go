package services

import (
	"context"
	"crypto/tls"
	"fmt"
	"html"

	"clubportal-backend-go/internal/models"

	"gopkg.in/gomail.v2"
)

type Notifier interface {
	MemberApproved(ctx context.Context, member models.Member) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type SMTPNotifier struct {
	cfg SMTPConfig
}

func NewSMTPNotifier(cfg SMTPConfig) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg}
}

func (n *SMTPNotifier) MemberApproved(ctx context.Context, member models.Member) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.From)
	m.SetHeader("To", member.Email)
	m.SetHeader("Subject", "Your club membership has been approved")
	m.SetBody("text/html", approvalHTML(member.FullName))

	d := gomail.NewDialer(n.cfg.Host, n.cfg.Port, n.cfg.Username, n.cfg.Password)
	d.TLSConfig = &tls.Config{ServerName: n.cfg.Host}
	return sendWithin(ctx, func() error { return d.DialAndSend(m) })
}

// sendWithin returns when send finishes or ctx ends, whichever is first.
// gomail has no deadline once connected.
func sendWithin(ctx context.Context, send func() error) error {
	result := make(chan error, 1)
	go func() { result <- send() }()
	select {
	case err := <-result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func approvalHTML(name string) string {
	return fmt.Sprintf(`<p>Hello %s,</p><p>Your membership application has been approved. You now have full access to member resources.</p>`, html.EscapeString(name))
}

type NopNotifier struct{}

func (NopNotifier) MemberApproved(context.Context, models.Member) error { return nil }
