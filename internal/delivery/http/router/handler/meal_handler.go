package handler

import (
	"net/http"

	"mealhub/internal/delivery/http/middleware"
	"mealhub/internal/delivery/http/response"
	"mealhub/internal/domain/entity"
	"mealhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MealHandler holds dependencies for meal catalog handlers.
type MealHandler struct {
	uc usecase.MealUsecase
}

// NewMealHandler is the constructor for MealHandler, injected by Fx.
func NewMealHandler(uc usecase.MealUsecase) *MealHandler {
	return &MealHandler{uc: uc}
}

type mealRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	ImageURL    string   `json:"image_url" validate:"omitempty,url"`
	Categories  []string `json:"categories" validate:"required,min=1,max=3,dive,oneof=BREAKFAST LUNCH DINNER SNACK DRINK DESSERT"`
	StockStatus string   `json:"stock_status" validate:"required,oneof=IN_STOCK OUT_OF_STOCK"`
}

func (r *mealRequest) categories() []entity.MealCategory {
	categories := make([]entity.MealCategory, 0, len(r.Categories))
	for _, category := range r.Categories {
		categories = append(categories, entity.MealCategory(category))
	}

	return categories
}

// Create handles the meal creation request. Requires the vendor role.
func (h *MealHandler) Create(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing authenticated actor")
	}

	var req mealRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid meal input")
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "VALIDATION_FAILED", "input validation failed", err.Error())
	}

	meal, err := h.uc.Create(c.Request().Context(), actor, usecase.CreateMealInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Categories:  req.categories(),
		StockStatus: entity.StockStatus(req.StockStatus),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newMealView(meal), "Meal created successfully")
}

// Update handles the meal update request. Requires the vendor role and
// ownership of the listing.
func (h *MealHandler) Update(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing authenticated actor")
	}

	mealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid meal ID")
	}

	var req mealRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid meal input")
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "VALIDATION_FAILED", "input validation failed", err.Error())
	}

	meal, err := h.uc.Update(c.Request().Context(), actor, mealID, usecase.UpdateMealInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Categories:  req.categories(),
		StockStatus: entity.StockStatus(req.StockStatus),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newMealView(meal), "Meal updated successfully")
}

// Delete handles the meal deletion request. Requires the vendor role and
// ownership of the listing.
func (h *MealHandler) Delete(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing authenticated actor")
	}

	mealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid meal ID")
	}

	if err := h.uc.Delete(c.Request().Context(), actor, mealID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Meal deleted successfully")
}

// Get returns a single meal listing. No authentication required.
func (h *MealHandler) Get(c echo.Context) error {
	mealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid meal ID")
	}

	meal, err := h.uc.Get(c.Request().Context(), mealID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newMealView(meal), "Meal retrieved successfully")
}

// List returns meal listings, newest first. An optional "vendor" query
// parameter narrows the catalog to a single vendor. No authentication
// required.
func (h *MealHandler) List(c echo.Context) error {
	if vendorParam := c.QueryParam("vendor"); vendorParam != "" {
		vendorID, err := uuid.Parse(vendorParam)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid vendor ID")
		}

		meals, err := h.uc.ListByVendor(c.Request().Context(), vendorID)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, newMealViews(meals), "Meals retrieved successfully")
	}

	meals, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newMealViews(meals), "Meals retrieved successfully")
}
