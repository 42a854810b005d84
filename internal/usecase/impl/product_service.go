package impl

import (
	"context"
	"log/slog"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/usecase"

	"github.com/pkg/errors"
)

// productService layers the per-provider listing on top of the shared CRUD
// orchestration.
type productService struct {
	*resourceService[entity.Product, usecase.CreateProductInput, usecase.UpdateProductInput]
	productRepo  repository.ProductRepository
	providerRepo repository.ProviderRepository
}

// NewProductService is the constructor for the product usecase.
func NewProductService(
	productRepo repository.ProductRepository,
	providerRepo repository.ProviderRepository,
	logger *slog.Logger,
) usecase.ProductUsecase {
	return &productService{
		resourceService: newResourceService(
			"product",
			productRepo,
			buildProduct,
			mergeProduct,
			logger,
		),
		productRepo:  productRepo,
		providerRepo: providerRepo,
	}
}

func buildProduct(input *usecase.CreateProductInput) *entity.Product {
	product := &entity.Product{
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
		Slug:        input.Slug,
		Stock:       true,
		BrandID:     input.BrandID,
		ProviderID:  input.ProviderID,
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}

	return product
}

func mergeProduct(product *entity.Product, input *usecase.UpdateProductInput) {
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Slug != nil {
		product.Slug = *input.Slug
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.BrandID != nil {
		product.BrandID = *input.BrandID
	}
	if input.ProviderID != nil {
		product.ProviderID = input.ProviderID
	}
}

// ListByProvider returns one page of the provider's products. The provider
// must exist; an empty catalog for a known provider is an empty page.
func (srv *productService) ListByProvider(ctx context.Context, providerID uint, page repository.Pagination) (*repository.Page[entity.Product], error) {
	if _, err := srv.providerRepo.FindByID(ctx, providerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrResourceNotFound.WrapMessage("provider not found")
		}

		return nil, errors.Wrap(err, "failed to load provider for product listing")
	}

	products, err := srv.productRepo.ListByProvider(ctx, providerID, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list provider products")
	}

	return products, nil
}
