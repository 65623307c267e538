// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "mealhub/internal/delivery/context"
	"mealhub/internal/domain/entity"
	domainerrors "mealhub/internal/domain/errors"
	"mealhub/internal/domain/policy"
	"mealhub/internal/domain/repository"
	"mealhub/internal/domain/service"
	"mealhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// statusUpdateLabels maps a transition target to the label used in the
// status-update email sent to the customer. Targets without a label send no
// notification at all.
var statusUpdateLabels = map[entity.OrderStatus]string{
	entity.StatusProcessing: "Processing",
}

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo repository.OrderRepository
	mealRepo  repository.MealRepository
	userRepo  repository.UserRepository
	mailer    service.Mailer
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	MealRepo  repository.MealRepository
	UserRepo  repository.UserRepository
	Mailer    service.Mailer
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo: params.OrderRepo,
		mealRepo:  params.MealRepo,
		userRepo:  params.UserRepo,
		mailer:    params.Mailer,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create places a new order against a meal on behalf of the acting customer.
// The stock check is a point-in-time gate: nothing is reserved, and two
// concurrent creations against the same meal can both pass it. The total
// price is computed from the meal price read here and never recomputed.
func (srv *orderService) Create(ctx context.Context, actor entity.Actor, input usecase.CreateOrderInput) (*entity.Order, error) {
	meal, err := srv.mealRepo.FindByID(ctx, input.MealID)
	if err != nil {
		if errors.Is(err, repository.ErrMealNotFound) {
			return nil, domainerrors.ErrMealNotFound
		}

		return nil, errors.Wrap(err, "failed to find meal for order")
	}

	if !meal.InStock() {
		return nil, domainerrors.ErrMealOutOfStock
	}

	customer, err := srv.userRepo.FindByID(ctx, actor.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve ordering customer")
	}

	now := time.Now()
	order := &entity.Order{
		ID:         uuid.New(),
		MealID:     meal.ID,
		CustomerID: actor.ID,
		VendorID:   meal.VendorID,
		Quantity:   input.Quantity,
		TotalPrice: meal.Price * float64(input.Quantity),
		Status:     entity.StatusOrdered,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := srv.orderRepo.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	order.Meal = meal
	order.Customer = customer
	order.Vendor = meal.Vendor

	// Invoices go out strictly after the write committed. A failed send is
	// logged and never undoes the order.
	srv.sendInvoice(ctx, customer.Email, order)
	if meal.Vendor != nil {
		srv.sendInvoice(ctx, meal.Vendor.Email, order)
	}

	srv.log(ctx).Info("Order created",
		slog.Any("orderID", order.ID),
		slog.Any("mealID", meal.ID),
		slog.Any("customerID", actor.ID),
		slog.Float64("totalPrice", order.TotalPrice),
	)

	return order, nil
}

// List returns the actor's orders, most recent first. Customers see orders
// they placed, vendors see orders addressed to them.
func (srv *orderService) List(ctx context.Context, actor entity.Actor) ([]*entity.Order, error) {
	switch actor.Role {
	case entity.RoleCustomer:
		orders, err := srv.orderRepo.FindByCustomer(ctx, actor.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list orders by customer")
		}

		return orders, nil
	case entity.RoleVendor:
		orders, err := srv.orderRepo.FindByVendor(ctx, actor.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list orders by vendor")
		}

		return orders, nil
	default:
		return nil, domainerrors.ErrForbidden
	}
}

// Get returns a single order, provided the actor is its customer or vendor.
func (srv *orderService) Get(ctx context.Context, actor entity.Actor, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := policy.CanViewOrder(actor, order); err != nil {
		return nil, err
	}

	return order, nil
}

// UpdateStatus is the sole transition entry point of the order state
// machine. Authorization is delegated to the policy; on success the new
// status is persisted and transition-specific notifications fire.
func (srv *orderService) UpdateStatus(ctx context.Context, actor entity.Actor, orderID uuid.UUID, target entity.OrderStatus) (*entity.Order, error) {
	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := policy.CanTransitionOrder(actor, order, target); err != nil {
		return nil, err
	}

	if err := srv.orderRepo.UpdateStatus(ctx, order.ID, target); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to update order status")
	}

	order.Status = target
	order.UpdatedAt = time.Now()

	srv.notifyTransition(ctx, order, target)

	srv.log(ctx).Info("Order status updated",
		slog.Any("orderID", order.ID),
		slog.String("status", target.String()),
		slog.Any("actorID", actor.ID),
		slog.String("actorRole", actor.Role.String()),
	)

	return order, nil
}

// findOrder resolves an order with its relations, translating the
// repository sentinel into the client-visible not-found error.
func (srv *orderService) findOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// notifyTransition fires the emails attached to specific transitions:
// PROCESSING notifies the customer only, DELIVERED notifies customer and
// vendor. Every other target sends nothing.
func (srv *orderService) notifyTransition(ctx context.Context, order *entity.Order, target entity.OrderStatus) {
	switch target {
	case entity.StatusProcessing:
		if label, ok := statusUpdateLabels[target]; ok && order.Customer != nil {
			if err := srv.mailer.SendOrderStatusUpdate(ctx, order.Customer.Email, order, label); err != nil {
				srv.log(ctx).Warn("Failed to send status update email",
					slog.Any("orderID", order.ID),
					slog.Any("error", err),
				)
			}
		}
	case entity.StatusDelivered:
		for _, recipient := range []*entity.User{order.Customer, order.Vendor} {
			if recipient == nil {
				continue
			}
			if err := srv.mailer.SendDeliveryNotification(ctx, recipient.Email, order); err != nil {
				srv.log(ctx).Warn("Failed to send delivery notification email",
					slog.Any("orderID", order.ID),
					slog.String("email", recipient.Email),
					slog.Any("error", err),
				)
			}
		}
	}
}

// sendInvoice delivers one invoice email, logging failures without
// propagating them.
func (srv *orderService) sendInvoice(ctx context.Context, email string, order *entity.Order) {
	if err := srv.mailer.SendOrderInvoice(ctx, email, order); err != nil {
		srv.log(ctx).Warn("Failed to send order invoice email",
			slog.Any("orderID", order.ID),
			slog.String("email", email),
			slog.Any("error", err),
		)
	}
}
