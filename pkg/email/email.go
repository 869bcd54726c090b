package email

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"mime"
	"net"
	"net/smtp"
	"strings"

	"neurodek-backend/config"
)

type sendMailFunc func(ctx context.Context, addr string, a smtp.Auth, from string, to []string, msg []byte) error

// EmailService handles sending emails via SMTP
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
	toEmail   string
	sendMail  sendMailFunc
}

// ContactEmailData holds the data for contact form emails
type ContactEmailData struct {
	SenderName  string
	SenderEmail string
	Company     string
	Budget      string
	Message     string
	DocumentID  string
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
		toEmail:   cfg.ContactEmailTo,
		sendMail:  sendMail,
	}
}

var contactEmailTemplate = template.Must(template.New("contact").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Contact Submission</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <h2>New contact submission</h2>
    <p><strong>From:</strong> {{.SenderName}} ({{.SenderEmail}})</p>
    {{if .Company}}<p><strong>Company:</strong> {{.Company}}</p>{{end}}
    {{if .Budget}}<p><strong>Budget:</strong> {{.Budget}}</p>{{end}}
    <p><strong>Message:</strong></p>
    <div style="background: #f9f9f9; padding: 15px; border-left: 4px solid #0066cc;">{{.Message}}</div>
    {{if .DocumentID}}<p style="color: #888; font-size: 12px;">Stored as {{.DocumentID}}</p>{{end}}
</body>
</html>`))

// BuildContactMessage renders the MIME message for a contact submission
func (s *EmailService) BuildContactMessage(data ContactEmailData) ([]byte, error) {
	var body bytes.Buffer
	if err := contactEmailTemplate.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("failed to execute email template: %w", err)
	}

	subject := mime.QEncoding.Encode("utf-8", "Contact Form: "+headerValue(data.SenderName))

	return []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Reply-To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.fromEmail,
		s.toEmail,
		headerValue(data.SenderEmail),
		subject,
		body.String(),
	)), nil
}

// headerValue folds submitted text onto a single header line
var headerValue = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ").Replace

// SendContactEmail sends a contact form email to the configured recipient.
// The SMTP exchange is bounded by ctx.
func (s *EmailService) SendContactEmail(ctx context.Context, data ContactEmailData) error {
	msg, err := s.BuildContactMessage(data)
	if err != nil {
		return err
	}

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := s.sendMail(ctx, addr, auth, s.fromEmail, []string{s.toEmail}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != "" && s.toEmail != ""
}

// sendMail is smtp.SendMail with the dial and the whole conversation bounded by ctx
func sendMail(ctx context.Context, addr string, a smtp.Auth, from string, to []string, msg []byte) error {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return err
	}

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			_ = conn.Close()
			return err
		}
	}

	c, err := smtp.NewClient(conn, host)
	if err != nil {
		_ = conn.Close()
		return err
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: host}); err != nil {
			return err
		}
	}
	if a != nil {
		if ok, _ := c.Extension("AUTH"); ok {
			if err := c.Auth(a); err != nil {
				return err
			}
		}
	}
	if err := c.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err := c.Rcpt(rcpt); err != nil {
			return err
		}
	}

	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return c.Quit()
}
