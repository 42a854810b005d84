package handler

import (
	"net/http"
	"time"

	"shop/config"
	"shop/internal/delivery/http/response"
	"shop/internal/domain/entity"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type createProductRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Price       int64  `json:"price" validate:"required,gte=0"`
	Description string `json:"description"`
	Slug        string `json:"slug" validate:"required,max=255"`
	Stock       *bool  `json:"stock"`
	BrandID     uint   `json:"brand_id" validate:"required"`
	ProviderID  *uint  `json:"provider_id"`
}

type updateProductRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=255"`
	Price       *int64  `json:"price" validate:"omitempty,gte=0"`
	Description *string `json:"description"`
	Slug        *string `json:"slug" validate:"omitempty,max=255"`
	Stock       *bool   `json:"stock"`
	BrandID     *uint   `json:"brand_id"`
	ProviderID  *uint   `json:"provider_id"`
}

type productView struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Price       int64     `json:"price"`
	Description string    `json:"description"`
	Slug        string    `json:"slug"`
	Stock       bool      `json:"stock"`
	BrandID     uint      `json:"brand_id"`
	ProviderID  *uint     `json:"provider_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func presentProduct(product *entity.Product) any {
	return productView{
		ID:          product.ID,
		Name:        product.Name,
		Price:       product.Price,
		Description: product.Description,
		Slug:        product.Slug,
		Stock:       product.Stock,
		BrandID:     product.BrandID,
		ProviderID:  product.ProviderID,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

// ProductHandler serves the product CRUD routes plus the per-provider listing.
type ProductHandler struct {
	*resourceHandler[entity.Product, usecase.CreateProductInput, usecase.UpdateProductInput]
	uc usecase.ProductUsecase
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, cfg *config.Config) *ProductHandler {
	return &ProductHandler{
		resourceHandler: newResourceHandler[entity.Product, usecase.CreateProductInput, usecase.UpdateProductInput](
			uc,
			bindCreateProduct,
			bindUpdateProduct,
			presentProduct,
			cfg.Pagination.PerPage,
		),
		uc: uc,
	}
}

func bindCreateProduct(c echo.Context) (*usecase.CreateProductInput, error) {
	req, err := bindAndValidate[createProductRequest](c)
	if err != nil {
		return nil, err
	}

	return &usecase.CreateProductInput{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Slug:        req.Slug,
		Stock:       req.Stock,
		BrandID:     req.BrandID,
		ProviderID:  req.ProviderID,
	}, nil
}

func bindUpdateProduct(c echo.Context) (*usecase.UpdateProductInput, error) {
	req, err := bindAndValidate[updateProductRequest](c)
	if err != nil {
		return nil, err
	}

	return &usecase.UpdateProductInput{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Slug:        req.Slug,
		Stock:       req.Stock,
		BrandID:     req.BrandID,
		ProviderID:  req.ProviderID,
	}, nil
}

// ListByProvider handles the per-provider product listing request.
func (h *ProductHandler) ListByProvider(c echo.Context) error {
	providerID, err := parseID(c)
	if err != nil {
		return err
	}

	result, err := h.uc.ListByProvider(c.Request().Context(), providerID, parsePagination(c, h.perPage))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, presentPage(result, presentProduct), "")
}
