package services

import (
	"time"

	"artshop/pkg/mailer"
)

// Notifier dispatches the shop's outbound emails. Implementations are best
// effort; callers log failures and never roll back state.
type Notifier interface {
	OneTimeCode(to, code string) error
	OrderConfirmation(to, orderID string, deliveryDate time.Time) error
	OrderStatus(to, name, orderID, status string) error
}

// MailNotifier sends notifications through an SMTP mailer.
type MailNotifier struct {
	mail mailer.Mailer
}

// NewMailNotifier creates a Notifier backed by the given mailer.
func NewMailNotifier(m mailer.Mailer) *MailNotifier {
	return &MailNotifier{mail: m}
}

func (n *MailNotifier) OneTimeCode(to, code string) error {
	subject, body := mailer.OneTimeCodeMail(code)
	return n.mail.Send(to, subject, body)
}

func (n *MailNotifier) OrderConfirmation(to, orderID string, deliveryDate time.Time) error {
	subject, body := mailer.OrderConfirmationMail(orderID, deliveryDate)
	return n.mail.Send(to, subject, body)
}

// OrderStatus notifies on terminal transitions only; other statuses are a
// no-op.
func (n *MailNotifier) OrderStatus(to, name, orderID, status string) error {
	subject, body, ok := mailer.OrderStatusMail(name, orderID, status)
	if !ok {
		return nil
	}
	return n.mail.Send(to, subject, body)
}
