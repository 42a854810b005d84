package repository

import (
	"context"
	"errors"

	"shop/internal/domain/entity"
)

// ErrUserNotFound is returned when no account matches the lookup key.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by primary key.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByPhone retrieves a single user by the unique phone number.
	FindByPhone(ctx context.Context, phoneNumber string) (*entity.User, error)

	// FindByToken retrieves the user holding the given API token.
	FindByToken(ctx context.Context, token string) (*entity.User, error)

	// List returns one bounded page of users in primary-key order.
	List(ctx context.Context, page Pagination) (*Page[entity.User], error)

	// Create persists a new user and writes back the generated ID.
	Create(ctx context.Context, user *entity.User) error

	// Update persists the full state of an existing user.
	Update(ctx context.Context, user *entity.User) error
}
