package usecase

import (
	"context"

	"shop/internal/domain/entity"
	"shop/internal/domain/repository"
)

// ResourceUsecase is the uniform CRUD contract exposed to the delivery layer,
// parameterized by entity and by explicit allow-listed input structs. Create
// inputs carry exactly the writable fields; update inputs use pointers so
// omitted fields are left unchanged.
type ResourceUsecase[E any, C any, U any] interface {
	List(ctx context.Context, page repository.Pagination) (*repository.Page[E], error)
	Get(ctx context.Context, id uint) (*E, error)
	Create(ctx context.Context, input *C) (*E, error)
	Update(ctx context.Context, id uint, input *U) (*E, error)
	Delete(ctx context.Context, id uint) error
}

// --- Category ---

// CreateCategoryInput is the allow-listed field set for category creation.
type CreateCategoryInput struct {
	Name string
	Slug string
}

// UpdateCategoryInput is the allow-listed field set for category updates.
type UpdateCategoryInput struct {
	Name *string
	Slug *string
}

// CategoryUsecase exposes category CRUD.
type CategoryUsecase interface {
	ResourceUsecase[entity.Category, CreateCategoryInput, UpdateCategoryInput]
}

// --- Brand ---

// CreateBrandInput is the allow-listed field set for brand creation.
type CreateBrandInput struct {
	Name string
	Slug string
}

// UpdateBrandInput is the allow-listed field set for brand updates.
type UpdateBrandInput struct {
	Name *string
	Slug *string
}

// BrandUsecase exposes brand CRUD.
type BrandUsecase interface {
	ResourceUsecase[entity.Brand, CreateBrandInput, UpdateBrandInput]
}

// --- Comment ---

// CreateCommentInput is the allow-listed field set for comment creation.
type CreateCommentInput struct {
	Username string
	Title    string
	Content  string
}

// UpdateCommentInput is the allow-listed field set for comment updates.
type UpdateCommentInput struct {
	Username *string
	Title    *string
	Content  *string
}

// CommentUsecase exposes comment CRUD.
type CommentUsecase interface {
	ResourceUsecase[entity.Comment, CreateCommentInput, UpdateCommentInput]
}

// --- Product ---

// CreateProductInput is the allow-listed field set for product creation.
type CreateProductInput struct {
	Name        string
	Price       int64
	Description string
	Slug        string
	Stock       *bool // Defaults to true when omitted.
	BrandID     uint
	ProviderID  *uint
}

// UpdateProductInput is the allow-listed field set for product updates.
type UpdateProductInput struct {
	Name        *string
	Price       *int64
	Description *string
	Slug        *string
	Stock       *bool
	BrandID     *uint
	ProviderID  *uint
}

// ProductUsecase exposes product CRUD plus the per-provider listing.
type ProductUsecase interface {
	ResourceUsecase[entity.Product, CreateProductInput, UpdateProductInput]

	// ListByProvider returns a page of the provider's products, failing with
	// a not-found error when the provider itself does not exist.
	ListByProvider(ctx context.Context, providerID uint, page repository.Pagination) (*repository.Page[entity.Product], error)
}

// --- Provider ---

// CreateProviderInput is the allow-listed field set for provider creation.
type CreateProviderInput struct {
	Name     string
	Slug     string
	Address  string
	Phone    string
	MemberID *uint
}

// UpdateProviderInput is the allow-listed field set for provider updates.
type UpdateProviderInput struct {
	Name     *string
	Slug     *string
	Address  *string
	Phone    *string
	MemberID *uint
}

// ProviderUsecase exposes provider CRUD. List and Get return the
// denormalized account view joined to the backing user.
type ProviderUsecase interface {
	ResourceUsecase[entity.Provider, CreateProviderInput, UpdateProviderInput]

	ListAccounts(ctx context.Context, page repository.Pagination) (*repository.Page[entity.ProviderAccount], error)
	GetAccount(ctx context.Context, id uint) (*entity.ProviderAccount, error)
}
