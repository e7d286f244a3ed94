package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// sendEmail delivers a plain-text message through the configured SMTP relay.
func sendEmail(to, subject, body string) error {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPortStr := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	smtpPort, err := strconv.Atoi(smtpPortStr)
	if err != nil {
		return fmt.Errorf("invalid SMTP_PORT value: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", smtpUser)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPass)
	return d.DialAndSend(m)
}

// SendResetCodeEmail sends a password reset code to the user's email.
func SendResetCodeEmail(email, code string) error {
	body := "Your password reset code is: " + code + "\n\n" +
		"If you did not request a password reset, please ignore this email."
	return sendEmail(email, "Password Reset Code", body)
}

// SendAppointmentEmail notifies a patient or guest about the outcome of an
// appointment action. Delivery is best effort; callers log failures instead
// of surfacing them.
func SendAppointmentEmail(email, subject, body string) {
	if email == "" {
		return
	}
	if err := sendEmail(email, subject, body); err != nil {
		log.Printf("Failed to send appointment email to %s: %v", email, err)
	}
}
