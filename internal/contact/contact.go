// Package contact validates contact form submissions and mails them to the site owner.
package contact

import (
	"errors"
	"fmt"
	"net/mail"
	"net/smtp"
	"strings"
)

// ErrNotConfigured is returned when SMTP credentials are missing.
var ErrNotConfigured = errors.New("SMTP credentials not configured")

// Message is one contact form submission.
type Message struct {
	Name  string
	Email string
	Body  string
}

// Validate trims the submission and checks every field is usable.
func (m *Message) Validate() error {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	m.Body = strings.TrimSpace(m.Body)

	var missing []string
	if m.Name == "" {
		missing = append(missing, "name")
	}
	if m.Email == "" {
		missing = append(missing, "email")
	}
	if m.Body == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing %s", strings.Join(missing, ", "))
	}
	if strings.ContainsAny(m.Name+m.Email, "\r\n") {
		return errors.New("name and email must be a single line")
	}
	addr, err := mail.ParseAddress(m.Email)
	if err != nil {
		return fmt.Errorf("invalid email: %w", err)
	}
	m.Email = addr.Address
	return nil
}

// Mailer delivers contact messages.
type Mailer interface {
	Send(m Message) error
}

// SendFunc matches smtp.SendMail.
type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer sends contact messages through an SMTP relay with PLAIN auth.
type SMTPMailer struct {
	Host string
	Port string
	User string
	Pass string
	To   string

	send SendFunc
}

// NewSMTPMailer creates a mailer. An empty to address delivers to user.
func NewSMTPMailer(host, port, user, pass, to string) *SMTPMailer {
	if to == "" {
		to = user
	}
	return &SMTPMailer{Host: host, Port: port, User: user, Pass: pass, To: to, send: smtp.SendMail}
}

// Send composes and delivers m.
func (s *SMTPMailer) Send(m Message) error {
	if s.User == "" || s.Pass == "" {
		return ErrNotConfigured
	}
	if err := m.Validate(); err != nil {
		return err
	}

	auth := smtp.PlainAuth("", s.User, s.Pass, s.Host)
	if err := s.send(s.Host+":"+s.Port, auth, s.User, []string{s.To}, s.compose(m)); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

func (s *SMTPMailer) compose(m Message) []byte {
	var b strings.Builder
	b.WriteString("To: " + s.To + "\r\n")
	b.WriteString("Subject: Portfolio Contact: " + m.Name + "\r\n")
	b.WriteString("From: " + s.User + "\r\n")
	b.WriteString("Reply-To: " + m.Email + "\r\n")
	b.WriteString("\r\n")
	b.WriteString("New contact form submission from your portfolio:\r\n\r\n")
	b.WriteString("Name: " + m.Name + "\r\n")
	b.WriteString("Email: " + m.Email + "\r\n")
	b.WriteString("Message:\r\n" + m.Body + "\r\n")
	return []byte(b.String())
}
