package utils

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// SendResetCodeEmail mails a password reset code to a staff member.
func SendResetCodeEmail(email, code string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_USER"))
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Password Reset Code")
	m.SetBody("text/plain", "Your password reset code is: "+code)
	m.AddAlternative("text/html", `
	<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 20px auto; padding: 20px;">
		<h1>Password Reset Code</h1>
		<p>Your password reset code is:</p>
		<p style="font-weight: bold; color: #007bff;">`+code+`</p>
		<p>If you did not request a password reset, please ignore this email.</p>
	</div>`)

	return dialAndSend(m)
}

// SendEmergencyEmail mails an emergency notification to a staff member so it
// reaches them even without an open session.
func SendEmergencyEmail(email, title, message string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_USER"))
	m.SetHeader("To", email)
	m.SetHeader("Subject", "[EMERGENCY] "+title)
	m.SetBody("text/plain", message)
	m.AddAlternative("text/html", `
	<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 20px auto; padding: 20px;">
		<h1 style="color: #dc3545;">`+title+`</h1>
		<p>`+message+`</p>
	</div>`)

	return dialAndSend(m)
}

// EmailConfigured reports whether an SMTP endpoint is set up.
func EmailConfigured() bool {
	return os.Getenv("SMTP_HOST") != ""
}

func dialAndSend(m *gomail.Message) error {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPortStr := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	smtpPort, err := strconv.Atoi(smtpPortStr)
	if err != nil {
		log.Printf("Invalid SMTP_PORT value: %v", err)
		return err
	}

	d := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPass)
	return d.DialAndSend(m)
}
