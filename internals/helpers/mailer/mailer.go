package mailer

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"certassoc_backend/internals/configs"
)

// Send delivers a single plain-text mail through SendGrid.
// Callers treat delivery as best-effort; use SendAsync on request paths.
func Send(toName, toEmail, subject, body string) error {
	if configs.SendgridAPIKey == "" {
		log.Printf("[MAIL] skipped (no api key): to=%s subject=%q", toEmail, subject)
		return nil
	}
	from := mail.NewEmail(configs.MailFromName, configs.MailFromAddress)
	to := mail.NewEmail(toName, toEmail)
	msg := mail.NewSingleEmail(from, subject, to, body, body)

	client := sendgrid.NewSendClient(configs.SendgridAPIKey)
	resp, err := client.Send(msg)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// SendAsync fires the mail in a goroutine; failures are logged and swallowed
// so a slow or broken mail provider never fails the request.
func SendAsync(toName, toEmail, subject, body string) {
	go func() {
		if err := Send(toName, toEmail, subject, body); err != nil {
			log.Printf("[MAIL ERROR] to=%s subject=%q err=%v", toEmail, subject, err)
		}
	}()
}
