package mail

import (
	"context"
	"testing"

	"mealhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder() *entity.Order {
	vendor := &entity.User{
		ID:    uuid.New(),
		Email: "vendor@example.com",
		Role:  entity.RoleVendor,
		VendorProfile: &entity.VendorProfile{
			RestaurantName: "Test Kitchen",
		},
	}

	return &entity.Order{
		ID:         uuid.New(),
		Quantity:   2,
		TotalPrice: 20.0,
		Status:     entity.StatusOrdered,
		Meal:       &entity.Meal{ID: uuid.New(), Name: "Beef Noodles", Vendor: vendor},
		Vendor:     vendor,
	}
}

func TestInvoiceBody(t *testing.T) {
	order := testOrder()

	body := invoiceBody(order)
	assert.Contains(t, body, "Thank you for your order.")
	assert.Contains(t, body, order.ID.String())
	assert.Contains(t, body, "Beef Noodles")
	assert.Contains(t, body, "Quantity:    2")
	assert.Contains(t, body, "Total price: 20.00")
	assert.Contains(t, body, "Status:      ORDERED")
	assert.Contains(t, body, "Test Kitchen")
}

func TestOrderSnapshot_MissingRelations(t *testing.T) {
	order := testOrder()
	order.Meal = nil
	order.Vendor = nil

	body := orderSnapshot(order)
	assert.Contains(t, body, order.ID.String())
	assert.NotContains(t, body, "Meal:")
	assert.NotContains(t, body, "Restaurant:")
}

func TestSMTPMailer_CancelledContext(t *testing.T) {
	mailer := &smtpMailer{from: "noreply@example.com"}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := mailer.SendOrderInvoice(ctx, "customer@example.com", testOrder())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNoopMailer_AlwaysSucceeds(t *testing.T) {
	mailer := NewNoopMailer(discardLogger())
	ctx := context.Background()
	order := testOrder()

	require.NoError(t, mailer.SendOrderInvoice(ctx, "a@example.com", order))
	require.NoError(t, mailer.SendOrderStatusUpdate(ctx, "a@example.com", order, "Processing"))
	require.NoError(t, mailer.SendDeliveryNotification(ctx, "a@example.com", order))
}
