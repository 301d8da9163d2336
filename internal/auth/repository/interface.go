package repository

import (
	"context"

	"smartmeet/internal/model"
)

// Repository is the composed interface for the auth domain data store.
type Repository interface {
	UserRepository
}

// UserRepository defines all data access methods for the User entity.
type UserRepository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (model.User, error)
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (model.User, error)
	UpdateUser(ctx context.Context, opt UpdateUserOptions) (model.User, error)
}
