// Package service defines interfaces for infrastructure services consumed by
// the business logic.
package service

import (
	"context"

	"mealhub/internal/domain/entity"
)

// Mailer is the notification gateway of the order engine. All sends are
// best-effort: a failure is logged by the caller and never rolls back the
// persistence write it trails.
type Mailer interface {
	// SendOrderInvoice sends an invoice email carrying the full order
	// snapshot to the given recipient.
	SendOrderInvoice(ctx context.Context, email string, order *entity.Order) error

	// SendOrderStatusUpdate sends a status-change email with a short label
	// describing the new state, e.g. "Processing".
	SendOrderStatusUpdate(ctx context.Context, email string, order *entity.Order, label string) error

	// SendDeliveryNotification sends a delivery confirmation email.
	SendDeliveryNotification(ctx context.Context, email string, order *entity.Order) error
}
