package mail

import (
	"context"
	"log/slog"

	"mealhub/internal/domain/entity"
	"mealhub/internal/domain/service"
)

// noopMailer is the fail-soft mailer used when no SMTP credentials are
// configured. It records every would-be send at debug level so local
// environments still show the notification flow.
type noopMailer struct {
	logger *slog.Logger
}

// NewNoopMailer is the constructor for noopMailer.
func NewNoopMailer(logger *slog.Logger) service.Mailer {
	return &noopMailer{logger: logger}
}

func (m *noopMailer) SendOrderInvoice(ctx context.Context, email string, order *entity.Order) error {
	m.logSkipped(ctx, "invoice", email, order)

	return nil
}

func (m *noopMailer) SendOrderStatusUpdate(ctx context.Context, email string, order *entity.Order, label string) error {
	m.logSkipped(ctx, "status update: "+label, email, order)

	return nil
}

func (m *noopMailer) SendDeliveryNotification(ctx context.Context, email string, order *entity.Order) error {
	m.logSkipped(ctx, "delivery notification", email, order)

	return nil
}

func (m *noopMailer) logSkipped(ctx context.Context, kind, email string, order *entity.Order) {
	m.logger.DebugContext(ctx, "SMTP not configured, skipping email",
		slog.String("kind", kind),
		slog.String("email", email),
		slog.Any("orderID", order.ID),
	)
}
