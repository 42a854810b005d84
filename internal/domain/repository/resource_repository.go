// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"shop/internal/domain/entity"
)

// ErrNotFound is the domain-specific error for an unknown primary key.
var ErrNotFound = errors.New("record not found")

// Resource is the uniform CRUD contract shared by every catalog entity.
// It is implemented once by the generic GORM repository and instantiated
// per entity, instead of duplicating a repository per table.
type Resource[E any] interface {
	// List returns one bounded page of records in primary-key order.
	List(ctx context.Context, page Pagination) (*Page[E], error)

	// FindByID retrieves a single record, returning ErrNotFound when absent.
	FindByID(ctx context.Context, id uint) (*E, error)

	// Create persists a new record and writes the generated ID and
	// timestamps back onto the entity.
	Create(ctx context.Context, e *E) error

	// Update persists the full state of an existing record.
	Update(ctx context.Context, e *E) error

	// Delete removes a record permanently, returning ErrNotFound when the
	// ID does not exist (including a repeated delete).
	Delete(ctx context.Context, id uint) error
}

// CategoryRepository persists categories.
type CategoryRepository interface {
	Resource[entity.Category]
}

// BrandRepository persists brands.
type BrandRepository interface {
	Resource[entity.Brand]
}

// CommentRepository persists comments.
type CommentRepository interface {
	Resource[entity.Comment]
}

// ProductRepository persists products and serves the per-provider listing.
type ProductRepository interface {
	Resource[entity.Product]

	// ListByProvider returns a page of products whose provider_id matches.
	ListByProvider(ctx context.Context, providerID uint, page Pagination) (*Page[entity.Product], error)
}

// ProviderRepository persists providers. Reads additionally expose the
// denormalized account view joined through members to users.
type ProviderRepository interface {
	Resource[entity.Provider]

	// ListAccounts returns a page of providers joined to their backing accounts.
	ListAccounts(ctx context.Context, page Pagination) (*Page[entity.ProviderAccount], error)

	// FindAccountByID returns one provider joined to its backing account.
	FindAccountByID(ctx context.Context, id uint) (*entity.ProviderAccount, error)
}
