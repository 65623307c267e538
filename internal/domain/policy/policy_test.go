package policy

import (
	"testing"

	"mealhub/internal/domain/entity"
	domainerrors "mealhub/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanMutateMeal(t *testing.T) {
	vendorID := uuid.New()
	vendor := entity.Actor{ID: vendorID, Role: entity.RoleVendor}
	otherVendor := entity.Actor{ID: uuid.New(), Role: entity.RoleVendor}
	customer := entity.Actor{ID: uuid.New(), Role: entity.RoleCustomer}

	tests := []struct {
		name    string
		actor   entity.Actor
		ownerID uuid.UUID
		action  MealAction
		wantErr error
	}{
		{
			name:    "vendor creates",
			actor:   vendor,
			ownerID: uuid.Nil,
			action:  MealActionCreate,
			wantErr: nil,
		},
		{
			name:    "customer creates",
			actor:   customer,
			ownerID: uuid.Nil,
			action:  MealActionCreate,
			wantErr: domainerrors.ErrVendorRoleRequired,
		},
		{
			name:    "owner updates",
			actor:   vendor,
			ownerID: vendorID,
			action:  MealActionUpdate,
			wantErr: nil,
		},
		{
			name:    "foreign vendor updates",
			actor:   otherVendor,
			ownerID: vendorID,
			action:  MealActionUpdate,
			wantErr: domainerrors.ErrMealOwnershipViolation,
		},
		{
			name:    "owner deletes",
			actor:   vendor,
			ownerID: vendorID,
			action:  MealActionDelete,
			wantErr: nil,
		},
		{
			name:    "foreign vendor deletes",
			actor:   otherVendor,
			ownerID: vendorID,
			action:  MealActionDelete,
			wantErr: domainerrors.ErrMealOwnershipViolation,
		},
		{
			name:    "customer deletes",
			actor:   customer,
			ownerID: vendorID,
			action:  MealActionDelete,
			wantErr: domainerrors.ErrVendorRoleRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanMutateMeal(tt.actor, tt.ownerID, tt.action)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCanViewOrder(t *testing.T) {
	customerID := uuid.New()
	vendorID := uuid.New()
	order := &entity.Order{
		ID:         uuid.New(),
		CustomerID: customerID,
		VendorID:   vendorID,
	}

	tests := []struct {
		name    string
		actor   entity.Actor
		wantErr error
	}{
		{
			name:  "own customer",
			actor: entity.Actor{ID: customerID, Role: entity.RoleCustomer},
		},
		{
			name:  "own vendor",
			actor: entity.Actor{ID: vendorID, Role: entity.RoleVendor},
		},
		{
			name:    "foreign customer",
			actor:   entity.Actor{ID: uuid.New(), Role: entity.RoleCustomer},
			wantErr: domainerrors.ErrForbidden,
		},
		{
			name:    "foreign vendor",
			actor:   entity.Actor{ID: uuid.New(), Role: entity.RoleVendor},
			wantErr: domainerrors.ErrForbidden,
		},
		{
			name:    "unknown role with matching id",
			actor:   entity.Actor{ID: customerID, Role: entity.Role("ADMIN")},
			wantErr: domainerrors.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanViewOrder(tt.actor, order)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCanTransitionOrder(t *testing.T) {
	customerID := uuid.New()
	vendorID := uuid.New()
	order := &entity.Order{
		ID:         uuid.New(),
		CustomerID: customerID,
		VendorID:   vendorID,
		Status:     entity.StatusOrdered,
	}

	tests := []struct {
		name    string
		actor   entity.Actor
		target  entity.OrderStatus
		wantErr error
	}{
		{
			name:   "customer marks delivered",
			actor:  entity.Actor{ID: customerID, Role: entity.RoleCustomer},
			target: entity.StatusDelivered,
		},
		{
			// Ownership of the order is not checked for customer delivery
			// transitions.
			name:   "foreign customer marks delivered",
			actor:  entity.Actor{ID: uuid.New(), Role: entity.RoleCustomer},
			target: entity.StatusDelivered,
		},
		{
			name:    "customer marks processing",
			actor:   entity.Actor{ID: customerID, Role: entity.RoleCustomer},
			target:  entity.StatusProcessing,
			wantErr: domainerrors.ErrCustomerDeliveredOnly,
		},
		{
			name:    "customer marks ordered",
			actor:   entity.Actor{ID: customerID, Role: entity.RoleCustomer},
			target:  entity.StatusOrdered,
			wantErr: domainerrors.ErrCustomerDeliveredOnly,
		},
		{
			name:   "owning vendor marks processing",
			actor:  entity.Actor{ID: vendorID, Role: entity.RoleVendor},
			target: entity.StatusProcessing,
		},
		{
			// Vendors are unrestricted in the target, including moves that
			// rewind the lifecycle.
			name:   "owning vendor rewinds to ordered",
			actor:  entity.Actor{ID: vendorID, Role: entity.RoleVendor},
			target: entity.StatusOrdered,
		},
		{
			name:    "foreign vendor marks processing",
			actor:   entity.Actor{ID: uuid.New(), Role: entity.RoleVendor},
			target:  entity.StatusProcessing,
			wantErr: domainerrors.ErrOrderOwnershipViolation,
		},
		{
			name:    "unknown role",
			actor:   entity.Actor{ID: uuid.New(), Role: entity.Role("ADMIN")},
			target:  entity.StatusDelivered,
			wantErr: domainerrors.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanTransitionOrder(tt.actor, order, tt.target)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
