package heatindex

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/jordan-wright/email"
)

// sendIssue delivers the rendered issue to the subscriber list over
// BCC. The To header points back at the sender so subscriber addresses
// never leak to each other.
func sendIssue(config SmtpConfig, subject, htmlBody string) error {
	if len(config.Subscribers) == 0 {
		return fmt.Errorf("no subscribers configured")
	}
	if config.Server == "" || config.Username == "" || config.Password == "" {
		return fmt.Errorf("smtp config incomplete: need server/username/password")
	}

	port := config.Port
	if port == 0 {
		port = 587
	}
	fromEmail := config.FromEmail
	if fromEmail == "" {
		fromEmail = config.Username
	}
	fromName := config.FromName
	if fromName == "" {
		fromName = "NYC Heat Index"
	}

	mail := email.NewEmail()
	mail.From = fmt.Sprintf("%s <%s>", fromName, fromEmail)
	mail.To = []string{fromEmail}
	mail.Bcc = config.Subscribers
	mail.Subject = subject
	mail.HTML = []byte(htmlBody)
	if config.ReplyTo != "" {
		mail.ReplyTo = []string{config.ReplyTo}
	}

	addr := fmt.Sprintf("%s:%d", config.Server, port)
	err := mail.Send(addr, smtp.PlainAuth("", config.Username, config.Password, config.Server))
	if err != nil && strings.Contains(err.Error(), "server doesn't support AUTH") {
		return mail.Send(addr, nil)
	}
	return err
}
