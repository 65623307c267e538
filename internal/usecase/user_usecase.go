package usecase

import (
	"context"

	"mealhub/internal/domain/entity"
)

// RegisterInput defines the data required to register a new account. The
// vendor fields are only consulted when Role is RoleVendor.
type RegisterInput struct {
	Name           string
	Email          string
	Password       string
	Phone          string
	Location       string
	Role           entity.Role
	RestaurantName string
	BusinessID     string
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RegisterOutput returns the newly created account's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// UserUsecase defines account plumbing: registration and login. It carries
// no lifecycle logic; the interesting decisions live in OrderUsecase and the
// authorization policy.
type UserUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
}
