// Package policy is the authorization rule set shared by meal mutation and
// order transition paths. The rules are pure functions over the actor, the
// resource's ownership and the requested action; a nil return means allow.
//
// The policy is role-closed: only CUSTOMER and VENDOR exist, and there is no
// administrative override role.
package policy

import (
	"mealhub/internal/domain/entity"
	domainerrors "mealhub/internal/domain/errors"

	"github.com/google/uuid"
)

// MealAction enumerates the mutating operations on a meal listing.
type MealAction string

const (
	MealActionCreate MealAction = "create"
	MealActionUpdate MealAction = "update"
	MealActionDelete MealAction = "delete"
)

// CanMutateMeal decides whether the actor may perform the given action on a
// meal owned by ownerID. Creation only requires the vendor role, since the
// resource does not exist yet; update and delete additionally require
// ownership. For MealActionCreate the ownerID argument is ignored.
func CanMutateMeal(actor entity.Actor, ownerID uuid.UUID, action MealAction) error {
	if !actor.IsVendor() {
		return domainerrors.ErrVendorRoleRequired
	}

	if action == MealActionCreate {
		return nil
	}

	if ownerID != actor.ID {
		return domainerrors.ErrMealOwnershipViolation
	}

	return nil
}

// CanViewOrder decides whether the actor may read the given order. Customers
// may view their own orders, vendors theirs; every other combination is
// denied.
func CanViewOrder(actor entity.Actor, order *entity.Order) error {
	switch actor.Role {
	case entity.RoleCustomer:
		if order.CustomerID == actor.ID {
			return nil
		}
	case entity.RoleVendor:
		if order.VendorID == actor.ID {
			return nil
		}
	}

	return domainerrors.ErrForbidden
}

// CanTransitionOrder decides whether the actor may move the given order to
// the target status. Rules are evaluated in order, first failure wins:
//
//   - A customer's only permitted target is DELIVERED. A customer is NOT
//     checked for ownership of the order here, so any customer can mark any
//     order delivered. This mirrors the original behavior and is kept until a
//     product decision says otherwise.
//   - A vendor must own the order. The target status is not restricted for
//     vendors, so a backward move such as DELIVERED -> PROCESSING is allowed.
//   - Any other role is denied unconditionally.
func CanTransitionOrder(actor entity.Actor, order *entity.Order, target entity.OrderStatus) error {
	switch actor.Role {
	case entity.RoleCustomer:
		if target != entity.StatusDelivered {
			return domainerrors.ErrCustomerDeliveredOnly
		}

		return nil
	case entity.RoleVendor:
		if order.VendorID != actor.ID {
			return domainerrors.ErrOrderOwnershipViolation
		}

		return nil
	default:
		return domainerrors.ErrForbidden
	}
}
