package handler

import (
	"time"

	"mealhub/internal/domain/entity"

	"github.com/google/uuid"
)

// userView is the client-facing shape of an account. The password hash
// never leaves the service.
type userView struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone,omitempty"`
	Location       string    `json:"location,omitempty"`
	Role           string    `json:"role"`
	RestaurantName string    `json:"restaurant_name,omitempty"`
	BusinessID     string    `json:"business_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func newUserView(user *entity.User) *userView {
	if user == nil {
		return nil
	}

	view := &userView{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Phone:     user.Phone,
		Location:  user.Location,
		Role:      user.Role.String(),
		CreatedAt: user.CreatedAt,
	}
	if user.VendorProfile != nil {
		view.RestaurantName = user.VendorProfile.RestaurantName
		view.BusinessID = user.VendorProfile.BusinessID
	}

	return view
}

type mealView struct {
	ID          uuid.UUID `json:"id"`
	VendorID    uuid.UUID `json:"vendor_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"image_url,omitempty"`
	Categories  []string  `json:"categories"`
	StockStatus string    `json:"stock_status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Vendor      *userView `json:"vendor,omitempty"`
}

func newMealView(meal *entity.Meal) *mealView {
	if meal == nil {
		return nil
	}

	categories := make([]string, 0, len(meal.Categories))
	for _, category := range meal.Categories {
		categories = append(categories, category.String())
	}

	return &mealView{
		ID:          meal.ID,
		VendorID:    meal.VendorID,
		Name:        meal.Name,
		Description: meal.Description,
		Price:       meal.Price,
		ImageURL:    meal.ImageURL,
		Categories:  categories,
		StockStatus: meal.StockStatus.String(),
		CreatedAt:   meal.CreatedAt,
		UpdatedAt:   meal.UpdatedAt,
		Vendor:      newUserView(meal.Vendor),
	}
}

func newMealViews(meals []*entity.Meal) []*mealView {
	views := make([]*mealView, 0, len(meals))
	for _, meal := range meals {
		views = append(views, newMealView(meal))
	}

	return views
}

type orderView struct {
	ID         uuid.UUID `json:"id"`
	MealID     uuid.UUID `json:"meal_id"`
	CustomerID uuid.UUID `json:"customer_id"`
	VendorID   uuid.UUID `json:"vendor_id"`
	Quantity   int       `json:"quantity"`
	TotalPrice float64   `json:"total_price"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Meal       *mealView `json:"meal,omitempty"`
	Customer   *userView `json:"customer,omitempty"`
	Vendor     *userView `json:"vendor,omitempty"`
}

func newOrderView(order *entity.Order) *orderView {
	if order == nil {
		return nil
	}

	return &orderView{
		ID:         order.ID,
		MealID:     order.MealID,
		CustomerID: order.CustomerID,
		VendorID:   order.VendorID,
		Quantity:   order.Quantity,
		TotalPrice: order.TotalPrice,
		Status:     order.Status.String(),
		CreatedAt:  order.CreatedAt,
		UpdatedAt:  order.UpdatedAt,
		Meal:       newMealView(order.Meal),
		Customer:   newUserView(order.Customer),
		Vendor:     newUserView(order.Vendor),
	}
}

func newOrderViews(orders []*entity.Order) []*orderView {
	views := make([]*orderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, newOrderView(order))
	}

	return views
}
