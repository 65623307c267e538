// Package mail implements the email notification gateway over SMTP.
package mail

import (
	"context"
	"fmt"
	"strings"

	"mealhub/config"
	"mealhub/internal/domain/entity"
	"mealhub/internal/domain/service"

	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"
)

// smtpMailer sends order emails through a configured SMTP server. Every send
// is best-effort from the engine's point of view; the caller decides what to
// do with a returned error.
type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer is the constructor for smtpMailer.
func NewSMTPMailer(cfg *config.SMTPConfig) service.Mailer {
	return &smtpMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// SendOrderInvoice sends an invoice email carrying the full order snapshot.
func (m *smtpMailer) SendOrderInvoice(ctx context.Context, email string, order *entity.Order) error {
	subject := fmt.Sprintf("Invoice for order %s", order.ID)

	return m.send(ctx, email, subject, invoiceBody(order))
}

// SendOrderStatusUpdate sends a status-change email with a short label
// describing the new state.
func (m *smtpMailer) SendOrderStatusUpdate(ctx context.Context, email string, order *entity.Order, label string) error {
	subject := fmt.Sprintf("Order %s is now %s", order.ID, label)
	body := fmt.Sprintf("Your order is now %s.\n\n%s", label, orderSnapshot(order))

	return m.send(ctx, email, subject, body)
}

// SendDeliveryNotification sends a delivery confirmation email.
func (m *smtpMailer) SendDeliveryNotification(ctx context.Context, email string, order *entity.Order) error {
	subject := fmt.Sprintf("Order %s delivered", order.ID)
	body := fmt.Sprintf("The order has been delivered.\n\n%s", orderSnapshot(order))

	return m.send(ctx, email, subject, body)
}

func (m *smtpMailer) send(ctx context.Context, email, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "aborting email send")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return errors.Wrapf(err, "failed to send email to %s", email)
	}

	return nil
}

// invoiceBody renders the plain-text invoice for an order.
func invoiceBody(order *entity.Order) string {
	var b strings.Builder
	b.WriteString("Thank you for your order.\n\n")
	b.WriteString(orderSnapshot(order))

	return b.String()
}

// orderSnapshot renders the order detail block shared by all order emails.
func orderSnapshot(order *entity.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order ID:    %s\n", order.ID)
	if order.Meal != nil {
		fmt.Fprintf(&b, "Meal:        %s\n", order.Meal.Name)
	}
	fmt.Fprintf(&b, "Quantity:    %d\n", order.Quantity)
	fmt.Fprintf(&b, "Total price: %.2f\n", order.TotalPrice)
	fmt.Fprintf(&b, "Status:      %s\n", order.Status)
	if order.Vendor != nil && order.Vendor.VendorProfile != nil {
		fmt.Fprintf(&b, "Restaurant:  %s\n", order.Vendor.VendorProfile.RestaurantName)
	}

	return b.String()
}
