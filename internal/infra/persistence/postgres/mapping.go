package postgres

import (
	"mealhub/internal/domain/entity"
	"mealhub/internal/infra/persistence/model"
)

// toUserDomain maps a persistence model back to a pure domain entity.
func toUserDomain(userM *model.UserModel) *entity.User {
	if userM == nil {
		return nil
	}

	user := &entity.User{
		ID:           userM.ID,
		Email:        userM.Email,
		Name:         userM.Name,
		Phone:        userM.Phone,
		Location:     userM.Location,
		Role:         entity.Role(userM.Role),
		PasswordHash: userM.PasswordHash,
		CreatedAt:    userM.CreatedAt,
		UpdatedAt:    userM.UpdatedAt,
	}
	if user.Role == entity.RoleVendor {
		user.VendorProfile = &entity.VendorProfile{
			RestaurantName: userM.RestaurantName,
			BusinessID:     userM.BusinessID,
		}
	}

	return user
}

// fromUserDomain maps a pure domain entity to a GORM persistence model.
func fromUserDomain(user *entity.User) *model.UserModel {
	userM := &model.UserModel{
		ID:           user.ID,
		Email:        user.Email,
		Name:         user.Name,
		Phone:        user.Phone,
		Location:     user.Location,
		Role:         user.Role.String(),
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
	if user.VendorProfile != nil {
		userM.RestaurantName = user.VendorProfile.RestaurantName
		userM.BusinessID = user.VendorProfile.BusinessID
	}

	return userM
}

func toMealDomain(mealM *model.MealModel) *entity.Meal {
	if mealM == nil {
		return nil
	}

	categories := make([]entity.MealCategory, 0, len(mealM.Categories))
	for _, c := range mealM.Categories {
		categories = append(categories, entity.MealCategory(c))
	}

	return &entity.Meal{
		ID:          mealM.ID,
		VendorID:    mealM.VendorID,
		Name:        mealM.Name,
		Description: mealM.Description,
		Price:       mealM.Price,
		ImageURL:    mealM.ImageURL,
		Categories:  categories,
		StockStatus: entity.StockStatus(mealM.StockStatus),
		CreatedAt:   mealM.CreatedAt,
		UpdatedAt:   mealM.UpdatedAt,
		Vendor:      toUserDomain(mealM.Vendor),
	}
}

func fromMealDomain(meal *entity.Meal) *model.MealModel {
	categories := make([]string, 0, len(meal.Categories))
	for _, c := range meal.Categories {
		categories = append(categories, c.String())
	}

	return &model.MealModel{
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
	}
}

func toOrderDomain(orderM *model.OrderModel) *entity.Order {
	if orderM == nil {
		return nil
	}

	return &entity.Order{
		ID:         orderM.ID,
		MealID:     orderM.MealID,
		CustomerID: orderM.CustomerID,
		VendorID:   orderM.VendorID,
		Quantity:   orderM.Quantity,
		TotalPrice: orderM.TotalPrice,
		Status:     entity.OrderStatus(orderM.Status),
		CreatedAt:  orderM.CreatedAt,
		UpdatedAt:  orderM.UpdatedAt,
		Meal:       toMealDomain(orderM.Meal),
		Customer:   toUserDomain(orderM.Customer),
		Vendor:     toUserDomain(orderM.Vendor),
	}
}

func fromOrderDomain(order *entity.Order) *model.OrderModel {
	return &model.OrderModel{
		ID:         order.ID,
		MealID:     order.MealID,
		CustomerID: order.CustomerID,
		VendorID:   order.VendorID,
		Quantity:   order.Quantity,
		TotalPrice: order.TotalPrice,
		Status:     order.Status.String(),
		CreatedAt:  order.CreatedAt,
		UpdatedAt:  order.UpdatedAt,
	}
}
