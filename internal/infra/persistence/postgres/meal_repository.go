package postgres

import (
	"context"

	"mealhub/internal/domain/entity"
	domainerrors "mealhub/internal/domain/errors"
	"mealhub/internal/domain/repository"
	"mealhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// mealRepository implements the repository.MealRepository interface.
type mealRepository struct {
	db *gorm.DB
}

// NewMealRepository is the constructor for mealRepository.
func NewMealRepository(db *gorm.DB) repository.MealRepository {
	return &mealRepository{
		db: db,
	}
}

// Create persists a new meal listing.
func (repo *mealRepository) Create(ctx context.Context, meal *entity.Meal) error {
	mealM := fromMealDomain(meal)

	if err := repo.db.WithContext(ctx).Create(mealM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid vendor reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required meal information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create meal")
	}

	meal.CreatedAt = mealM.CreatedAt
	meal.UpdatedAt = mealM.UpdatedAt

	return nil
}

// FindByID retrieves a meal by its unique ID, resolving the owning vendor.
func (repo *mealRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Meal, error) {
	var mealM model.MealModel

	if err := repo.db.WithContext(ctx).
		Preload("Vendor").
		Where("id = ?", id).
		First(&mealM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMealNotFound
		}

		return nil, errors.Wrap(err, "failed to find meal by id")
	}

	return toMealDomain(&mealM), nil
}

// FindAll retrieves all meal listings, newest first.
func (repo *mealRepository) FindAll(ctx context.Context) ([]*entity.Meal, error) {
	var mealModels []*model.MealModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&mealModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list meals")
	}

	meals := make([]*entity.Meal, 0, len(mealModels))
	for _, mealM := range mealModels {
		meals = append(meals, toMealDomain(mealM))
	}

	return meals, nil
}

// FindByVendor retrieves all meals owned by a specific vendor, newest first.
func (repo *mealRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.Meal, error) {
	var mealModels []*model.MealModel

	if err := repo.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("created_at DESC").
		Find(&mealModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list meals by vendor")
	}

	meals := make([]*entity.Meal, 0, len(mealModels))
	for _, mealM := range mealModels {
		meals = append(meals, toMealDomain(mealM))
	}

	return meals, nil
}

// Update persists changes to an existing meal listing. The vendor_id column
// is deliberately excluded: a listing can never change owner.
func (repo *mealRepository) Update(ctx context.Context, meal *entity.Meal) error {
	mealM := fromMealDomain(meal)

	result := repo.db.WithContext(ctx).
		Model(&model.MealModel{}).
		Where("id = ?", meal.ID).
		Select("name", "description", "price", "image_url", "categories", "stock_status", "updated_at").
		Updates(mealM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update meal")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMealNotFound
	}

	return nil
}

// Delete removes a meal listing by its ID.
func (repo *mealRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.MealModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete meal")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMealNotFound
	}

	return nil
}
