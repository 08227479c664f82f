package services

import (
	"gopkg.in/gomail.v2"
)

// Mailer is the outbound notification transport used by AlertService.
type Mailer interface {
	// Validate reports whether the transport is usable at all, without
	// touching the network.
	Validate() error

	Send(to, subject, body string) error
}

// SMTPMailer delivers alerts through an authenticated SMTP account.
type SMTPMailer struct {
	Host     string
	Port     int
	Email    string
	Password string
}

func NewSMTPMailer(host string, port int, email, password string) *SMTPMailer {
	return &SMTPMailer{
		Host:     host,
		Port:     port,
		Email:    email,
		Password: password,
	}
}

func (m *SMTPMailer) Validate() error {
	if m.Email == "" || m.Password == "" {
		return ErrSMTPNotConfigured
	}

	return nil
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.Email)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.Host, m.Port, m.Email, m.Password)
	dialer.SSL = m.Port == 465

	return dialer.DialAndSend(msg)
}
