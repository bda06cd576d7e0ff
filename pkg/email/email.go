package email

import (
	"bytes"
	"fmt"
	"go-jobboard-backend/config"
	"html/template"
	"net/smtp"
)

// Service handles sending emails via SMTP
type Service struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
}

// NewService creates a new email service from the SMTP configuration
func NewService(cfg *config.Config) *Service {
	return &Service{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
	}
}

// verificationEmailTemplate renders the 6-digit signup code
const verificationEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Verify your account</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0066cc; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .code { font-size: 32px; letter-spacing: 8px; font-weight: bold; text-align: center; padding: 15px; background: white; border-left: 4px solid #0066cc; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Verify your account</h1>
        </div>
        <div class="content">
            <p>Hi {{.Username}},</p>
            <p>Use the code below to verify your account. It expires in one hour.</p>
            <div class="code">{{.Code}}</div>
        </div>
        <div class="footer">
            <p>If you did not sign up, you can safely ignore this email.</p>
        </div>
    </div>
</body>
</html>`

// alertEmailTemplate renders job alert messages
const alertEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Subject}}</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0066cc; color: white; padding: 20px; text-align: center; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #0066cc; margin-top: 10px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>{{.Subject}}</h1>
        </div>
        <div class="message-box">{{.Message}}</div>
        <div class="footer">
            <p>You are receiving this because of your job alert settings.</p>
        </div>
    </div>
</body>
</html>`

// SendVerificationCode sends the signup verification code to a new user
func (s *Service) SendVerificationCode(to, username, code string) error {
	body, err := render("verification", verificationEmailTemplate, map[string]string{
		"Username": username,
		"Code":     code,
	})
	if err != nil {
		return err
	}
	return s.send(to, "Your verification code", body)
}

// SendJobAlert sends a templated job alert message
func (s *Service) SendJobAlert(to, subject, message string) error {
	body, err := render("alert", alertEmailTemplate, map[string]string{
		"Subject": subject,
		"Message": message,
	})
	if err != nil {
		return err
	}
	return s.send(to, subject, body)
}

func render(name, tmplText string, data any) (string, error) {
	tmpl, err := template.New(name).Parse(tmplText)
	if err != nil {
		return "", fmt.Errorf("failed to parse email template: %w", err)
	}
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}
	return body.String(), nil
}

func (s *Service) send(to, subject, htmlBody string) error {
	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.fromEmail,
		to,
		subject,
		htmlBody,
	))

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *Service) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}
