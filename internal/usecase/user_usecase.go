// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"shop/internal/domain/entity"
	"shop/internal/domain/repository"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name        string
	Email       string
	PhoneNumber string
	Password    string
}

// LoginInput defines the data required for a login attempt. When
// GenerateNewToken is set, a successful attempt rotates the API token.
type LoginInput struct {
	PhoneNumber      string
	Password         string
	GenerateNewToken bool
}

// ChangePasswordInput defines the data required to change a password.
type ChangePasswordInput struct {
	PhoneNumber     string
	CurrentPassword string
	NewPassword     string
}

// UpdateUserInput defines the optional fields of a partial user update.
// Nil fields are left unchanged.
type UpdateUserInput struct {
	Name  *string
	Email *string
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new account with a hashed password.
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)

	// Login verifies credentials and optionally rotates the API token.
	// The result is returned even when the password does not match; only an
	// unknown identifier is an error.
	Login(ctx context.Context, input *LoginInput) (*entity.LoginResult, error)

	// ChangePassword re-verifies the current password before storing the new one.
	ChangePassword(ctx context.Context, input *ChangePasswordInput) (*entity.User, error)

	// Authenticate resolves a bearer token to the account holding it.
	Authenticate(ctx context.Context, token string) (*entity.User, error)

	// ListUsers returns one page of accounts.
	ListUsers(ctx context.Context, page repository.Pagination) (*repository.Page[entity.User], error)

	// GetUser retrieves a single account by ID.
	GetUser(ctx context.Context, id uint) (*entity.User, error)

	// UpdateUserByPhone applies a partial update to the account with the
	// given phone number.
	UpdateUserByPhone(ctx context.Context, phoneNumber string, input *UpdateUserInput) (*entity.User, error)
}
