package impl

import (
	"context"
	"testing"

	"mealhub/internal/domain/entity"
	domainerrors "mealhub/internal/domain/errors"
	"mealhub/internal/domain/repository"
	mockRepo "mealhub/internal/mocks/repository"
	"mealhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMealService(t *testing.T) (*mockRepo.MockMealRepository, usecase.MealUsecase) {
	mealRepo := mockRepo.NewMockMealRepository(t)
	service := NewMealService(MealServiceParams{
		MealRepo: mealRepo,
		Logger:   discardLogger(),
	})

	return mealRepo, service
}

func TestMealService_Create_Success(t *testing.T) {
	mealRepo, service := newMealService(t)
	ctx := context.Background()

	vendor := newTestVendor()
	actor := entity.Actor{ID: vendor.ID, Role: entity.RoleVendor}

	mealRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Meal")).
		Return(nil)

	meal, err := service.Create(ctx, actor, usecase.CreateMealInput{
		Name:        "Beef Noodles",
		Description: "Braised beef noodle soup",
		Price:       10.0,
		Categories:  []entity.MealCategory{entity.CategoryLunch},
		StockStatus: entity.StockStatusInStock,
	})
	require.NoError(t, err)
	require.NotNil(t, meal)

	assert.Equal(t, vendor.ID, meal.VendorID)
	assert.Equal(t, "Beef Noodles", meal.Name)
	assert.Equal(t, 10.0, meal.Price)
	assert.Equal(t, entity.StockStatusInStock, meal.StockStatus)
	assert.NotEqual(t, uuid.Nil, meal.ID)
}

func TestMealService_Create_CustomerForbidden(t *testing.T) {
	_, service := newMealService(t)
	ctx := context.Background()

	actor := entity.Actor{ID: uuid.New(), Role: entity.RoleCustomer}

	meal, err := service.Create(ctx, actor, usecase.CreateMealInput{
		Name:        "Beef Noodles",
		Price:       10.0,
		Categories:  []entity.MealCategory{entity.CategoryLunch},
		StockStatus: entity.StockStatusInStock,
	})
	require.Error(t, err)
	assert.Nil(t, meal)
	assert.ErrorIs(t, err, domainerrors.ErrVendorRoleRequired)
}

func TestMealService_Update_Success(t *testing.T) {
	mealRepo, service := newMealService(t)
	ctx := context.Background()

	vendor := newTestVendor()
	meal := newTestMeal(vendor)
	actor := entity.Actor{ID: vendor.ID, Role: entity.RoleVendor}

	mealRepo.EXPECT().FindByID(ctx, meal.ID).Return(meal, nil)
	mealRepo.EXPECT().Update(ctx, meal).Return(nil)

	updated, err := service.Update(ctx, actor, meal.ID, usecase.UpdateMealInput{
		Name:        "Spicy Beef Noodles",
		Description: meal.Description,
		Price:       12.5,
		Categories:  meal.Categories,
		StockStatus: entity.StockStatusOutOfStock,
	})
	require.NoError(t, err)

	assert.Equal(t, "Spicy Beef Noodles", updated.Name)
	assert.Equal(t, 12.5, updated.Price)
	assert.Equal(t, entity.StockStatusOutOfStock, updated.StockStatus)
	// Ownership never moves on update.
	assert.Equal(t, vendor.ID, updated.VendorID)
}

func TestMealService_Update_ForeignVendorForbidden(t *testing.T) {
	mealRepo, service := newMealService(t)
	ctx := context.Background()

	vendor := newTestVendor()
	meal := newTestMeal(vendor)
	actor := entity.Actor{ID: uuid.New(), Role: entity.RoleVendor}

	mealRepo.EXPECT().FindByID(ctx, meal.ID).Return(meal, nil)

	updated, err := service.Update(ctx, actor, meal.ID, usecase.UpdateMealInput{
		Name:        "Hijacked",
		Price:       1.0,
		Categories:  meal.Categories,
		StockStatus: meal.StockStatus,
	})
	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrMealOwnershipViolation)
	mealRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestMealService_Update_NotFound(t *testing.T) {
	mealRepo, service := newMealService(t)
	ctx := context.Background()

	actor := entity.Actor{ID: uuid.New(), Role: entity.RoleVendor}
	mealID := uuid.New()

	mealRepo.EXPECT().FindByID(ctx, mealID).Return(nil, repository.ErrMealNotFound)

	updated, err := service.Update(ctx, actor, mealID, usecase.UpdateMealInput{})
	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrMealNotFound)
}

func TestMealService_Delete_Success(t *testing.T) {
	mealRepo, service := newMealService(t)
	ctx := context.Background()

	vendor := newTestVendor()
	meal := newTestMeal(vendor)
	actor := entity.Actor{ID: vendor.ID, Role: entity.RoleVendor}

	mealRepo.EXPECT().FindByID(ctx, meal.ID).Return(meal, nil)
	mealRepo.EXPECT().Delete(ctx, meal.ID).Return(nil)

	err := service.Delete(ctx, actor, meal.ID)
	require.NoError(t, err)
}

func TestMealService_Delete_ForeignVendorForbidden(t *testing.T) {
	mealRepo, service := newMealService(t)
	ctx := context.Background()

	vendor := newTestVendor()
	meal := newTestMeal(vendor)
	actor := entity.Actor{ID: uuid.New(), Role: entity.RoleVendor}

	mealRepo.EXPECT().FindByID(ctx, meal.ID).Return(meal, nil)

	err := service.Delete(ctx, actor, meal.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMealOwnershipViolation)
	mealRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestMealService_Get_NotFound(t *testing.T) {
	mealRepo, service := newMealService(t)
	ctx := context.Background()

	mealID := uuid.New()
	mealRepo.EXPECT().FindByID(ctx, mealID).Return(nil, repository.ErrMealNotFound)

	meal, err := service.Get(ctx, mealID)
	require.Error(t, err)
	assert.Nil(t, meal)
	assert.ErrorIs(t, err, domainerrors.ErrMealNotFound)
}

func TestMealService_List(t *testing.T) {
	mealRepo, service := newMealService(t)
	ctx := context.Background()

	vendor := newTestVendor()
	expected := []*entity.Meal{newTestMeal(vendor), newTestMeal(vendor)}

	mealRepo.EXPECT().FindAll(ctx).Return(expected, nil)

	meals, err := service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, meals)
}

func TestMealService_ListByVendor(t *testing.T) {
	mealRepo, service := newMealService(t)
	ctx := context.Background()

	vendor := newTestVendor()
	expected := []*entity.Meal{newTestMeal(vendor)}

	mealRepo.EXPECT().FindByVendor(ctx, vendor.ID).Return(expected, nil)

	meals, err := service.ListByVendor(ctx, vendor.ID)
	require.NoError(t, err)
	assert.Equal(t, expected, meals)
}
