// Package mailer delivers the shop's three outbound emails over SMTP.
// Delivery is best effort: callers log failures and never roll back the
// state change that triggered the message.
package mailer

import (
	"fmt"
	"time"

	gomail "gopkg.in/gomail.v2"
)

// Mailer sends a single HTML message to one recipient.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// Config holds SMTP relay settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPMailer is a gomail-backed Mailer.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer creates a mailer for the given relay.
func NewSMTPMailer(cfg Config) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// Send delivers one message. Each call dials the relay; there is no retry.
func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}

// OneTimeCodeMail builds the verification / password-reset message.
func OneTimeCodeMail(code string) (subject, body string) {
	subject = "Your verification code"
	body = fmt.Sprintf("<h3>Your one-time code is: <b>%s</b></h3><p>It is valid for 10 minutes.</p>", code)
	return subject, body
}

// OrderConfirmationMail builds the order placement message.
func OrderConfirmationMail(orderID string, deliveryDate time.Time) (subject, body string) {
	subject = "Your order confirmation"
	body = fmt.Sprintf(
		"<h2>Thank you for your order!</h2>"+
			"<p>Your order <strong>%s</strong> has been placed successfully.</p>"+
			"<p>Expected delivery by: <strong>%s</strong></p>",
		orderID, deliveryDate.Format("Mon Jan 2 2006"))
	return subject, body
}

// OrderStatusMail builds the terminal status notice. It returns ok=false
// for statuses that do not notify.
func OrderStatusMail(name, orderID, status string) (subject, body string, ok bool) {
	switch status {
	case "Delivered":
		subject = "Your order has been delivered"
	case "Cancelled":
		subject = "Your order was cancelled"
	default:
		return "", "", false
	}
	if name == "" {
		name = "there"
	}
	body = fmt.Sprintf(
		"<h2>Hi %s,</h2><p>Your order <strong>%s</strong> is now: <b>%s</b>.</p>",
		name, orderID, status)
	return subject, body, true
}
