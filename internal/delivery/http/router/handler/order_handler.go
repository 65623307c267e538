package handler

import (
	"net/http"

	"mealhub/internal/delivery/http/middleware"
	"mealhub/internal/delivery/http/response"
	"mealhub/internal/domain/entity"
	domainerrors "mealhub/internal/domain/errors"
	"mealhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order lifecycle handlers.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type createOrderRequest struct {
	MealID   string `json:"meal_id" validate:"required,uuid4"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Create handles the order placement request. Requires the customer role.
func (h *OrderHandler) Create(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing authenticated actor")
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "VALIDATION_FAILED", "input validation failed", err.Error())
	}

	mealID, err := uuid.Parse(req.MealID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid meal ID")
	}

	order, err := h.uc.Create(c.Request().Context(), actor, usecase.CreateOrderInput{
		MealID:   mealID,
		Quantity: req.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newOrderView(order), "Order placed successfully")
}

// List returns all orders the actor participates in, most recent first.
func (h *OrderHandler) List(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing authenticated actor")
	}

	orders, err := h.uc.List(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOrderViews(orders), "Orders retrieved successfully")
}

// Get returns a single order, provided the actor is its customer or vendor.
func (h *OrderHandler) Get(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing authenticated actor")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	order, err := h.uc.Get(c.Request().Context(), actor, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOrderView(order), "Order retrieved successfully")
}

// UpdateStatus handles the order status transition request. The target
// status is validated here so the engine only ever sees known statuses.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing authenticated actor")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "VALIDATION_FAILED", "input validation failed", err.Error())
	}

	target := entity.OrderStatus(req.Status)
	if !target.IsValid() {
		return errors.WithStack(domainerrors.ErrInvalidOrderStatus.WithDetails("unknown status: " + req.Status))
	}

	order, err := h.uc.UpdateStatus(c.Request().Context(), actor, orderID, target)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOrderView(order), "Order status updated successfully")
}
