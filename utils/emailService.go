package utils

import (
	"chainlearn/config"
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

// SendEmail sends an HTML email through the configured SMTP account.
// A missing sender configuration turns the call into a no-op.
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password
	if from == "" || password == "" {
		log.Println("Email sender not configured, skipping email to", strings.Join(to, ","))
		return nil
	}

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: ChainLearn <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg)); err != nil {
		log.Printf("Error sending email: %v", err)
		return err
	}
	return nil
}

// SendCertificateEmail notifies a user that a track certificate was issued
func SendCertificateEmail(email, username, trackTitle, certificateID string) {
	if email == "" {
		return
	}

	name := username
	if name == "" {
		name = "there"
	}

	body := fmt.Sprintf(`
	<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
		<h2>Congratulations, %s!</h2>
		<p>You have earned a certificate for completing <b>%s</b>.</p>
		<p>Certificate ID: <code>%s</code></p>
		<p>Keep learning and earning XP on ChainLearn.</p>
	</div>`, name, trackTitle, certificateID)

	if err := SendEmail([]string{email}, "Your ChainLearn certificate for "+trackTitle, body); err != nil {
		log.Printf("Failed to send certificate email to %s: %v", email, err)
	}
}
