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
	"mealhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// mealService implements the MealUsecase interface. The catalog itself is
// thin CRUD; its specified content is the policy consultation before every
// mutation and the immutability of the vendor ID.
type mealService struct {
	mealRepo repository.MealRepository
	logger   *slog.Logger
}

// MealServiceParams holds dependencies for MealService, injected by Fx.
type MealServiceParams struct {
	fx.In

	MealRepo repository.MealRepository
	Logger   *slog.Logger
}

// NewMealService is the constructor for mealService.
func NewMealService(params MealServiceParams) usecase.MealUsecase {
	return &mealService{
		mealRepo: params.MealRepo,
		logger:   params.Logger,
	}
}

func (srv *mealService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create adds a new listing owned by the acting vendor.
func (srv *mealService) Create(ctx context.Context, actor entity.Actor, input usecase.CreateMealInput) (*entity.Meal, error) {
	if err := policy.CanMutateMeal(actor, uuid.Nil, policy.MealActionCreate); err != nil {
		return nil, err
	}

	now := time.Now()
	meal := &entity.Meal{
		ID:          uuid.New(),
		VendorID:    actor.ID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Categories:  input.Categories,
		StockStatus: input.StockStatus,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := srv.mealRepo.Create(ctx, meal); err != nil {
		return nil, errors.Wrap(err, "failed to create meal")
	}

	srv.log(ctx).Info("Meal created",
		slog.Any("mealID", meal.ID),
		slog.Any("vendorID", actor.ID),
	)

	return meal, nil
}

// Update modifies an existing listing after an ownership check. The vendor
// ID of the stored listing is never rewritten.
func (srv *mealService) Update(ctx context.Context, actor entity.Actor, mealID uuid.UUID, input usecase.UpdateMealInput) (*entity.Meal, error) {
	meal, err := srv.findMeal(ctx, mealID)
	if err != nil {
		return nil, err
	}

	if err := policy.CanMutateMeal(actor, meal.VendorID, policy.MealActionUpdate); err != nil {
		return nil, err
	}

	meal.Name = input.Name
	meal.Description = input.Description
	meal.Price = input.Price
	meal.ImageURL = input.ImageURL
	meal.Categories = input.Categories
	meal.StockStatus = input.StockStatus
	meal.UpdatedAt = time.Now()

	if err := srv.mealRepo.Update(ctx, meal); err != nil {
		return nil, errors.Wrap(err, "failed to update meal")
	}

	return meal, nil
}

// Delete removes a listing after an ownership check.
func (srv *mealService) Delete(ctx context.Context, actor entity.Actor, mealID uuid.UUID) error {
	meal, err := srv.findMeal(ctx, mealID)
	if err != nil {
		return err
	}

	if err := policy.CanMutateMeal(actor, meal.VendorID, policy.MealActionDelete); err != nil {
		return err
	}

	if err := srv.mealRepo.Delete(ctx, mealID); err != nil {
		return errors.Wrap(err, "failed to delete meal")
	}

	srv.log(ctx).Info("Meal deleted",
		slog.Any("mealID", mealID),
		slog.Any("vendorID", actor.ID),
	)

	return nil
}

// Get returns a single listing.
func (srv *mealService) Get(ctx context.Context, mealID uuid.UUID) (*entity.Meal, error) {
	return srv.findMeal(ctx, mealID)
}

// List returns all listings, newest first.
func (srv *mealService) List(ctx context.Context) ([]*entity.Meal, error) {
	meals, err := srv.mealRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list meals")
	}

	return meals, nil
}

// ListByVendor returns all listings owned by a vendor, newest first.
func (srv *mealService) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.Meal, error) {
	meals, err := srv.mealRepo.FindByVendor(ctx, vendorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list meals by vendor")
	}

	return meals, nil
}

func (srv *mealService) findMeal(ctx context.Context, mealID uuid.UUID) (*entity.Meal, error) {
	meal, err := srv.mealRepo.FindByID(ctx, mealID)
	if err != nil {
		if errors.Is(err, repository.ErrMealNotFound) {
			return nil, domainerrors.ErrMealNotFound
		}

		return nil, errors.Wrap(err, "failed to find meal")
	}

	return meal, nil
}
