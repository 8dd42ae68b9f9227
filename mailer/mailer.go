package mailer

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"
)

type EmailSender struct {
	Host      string
	Port      int
	User      string
	Password  string
	Recipient string
}

func NewEmailSender(host string, port int, user, password, recipient string) *EmailSender {
	return &EmailSender{
		Host:      host,
		Port:      port,
		User:      user,
		Password:  password,
		Recipient: recipient,
	}
}

// SendContact relays one contact-form submission as plain text. No retry:
// a transport failure is returned to the caller as-is.
func (s *EmailSender) SendContact(name, email, phone, message string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.User)
	m.SetHeader("To", s.Recipient)
	m.SetHeader("Reply-To", email)
	m.SetHeader("Subject", fmt.Sprintf("New contact from %s", name))
	m.SetBody("text/plain", ContactBody(name, email, phone, message))

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func ContactBody(name, email, phone, message string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", name)
	fmt.Fprintf(&b, "Email: %s\n", email)
	if phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", phone)
	}
	b.WriteString("\n")
	b.WriteString(message)
	b.WriteString("\n")
	return b.String()
}
