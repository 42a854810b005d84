package handler

import (
	"time"

	"shop/config"
	"shop/internal/domain/entity"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// --- Category ---

type createCategoryRequest struct {
	Name string `json:"name" validate:"required,max=255"`
	Slug string `json:"slug" validate:"required,max=255"`
}

type updateCategoryRequest struct {
	Name *string `json:"name" validate:"omitempty,max=255"`
	Slug *string `json:"slug" validate:"omitempty,max=255"`
}

type categoryView struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryHandler serves the category CRUD routes.
type CategoryHandler struct {
	*resourceHandler[entity.Category, usecase.CreateCategoryInput, usecase.UpdateCategoryInput]
}

// NewCategoryHandler is the constructor for CategoryHandler, injected by Fx.
func NewCategoryHandler(uc usecase.CategoryUsecase, cfg *config.Config) *CategoryHandler {
	return &CategoryHandler{
		resourceHandler: newResourceHandler(
			uc,
			func(c echo.Context) (*usecase.CreateCategoryInput, error) {
				req, err := bindAndValidate[createCategoryRequest](c)
				if err != nil {
					return nil, err
				}

				return &usecase.CreateCategoryInput{Name: req.Name, Slug: req.Slug}, nil
			},
			func(c echo.Context) (*usecase.UpdateCategoryInput, error) {
				req, err := bindAndValidate[updateCategoryRequest](c)
				if err != nil {
					return nil, err
				}

				return &usecase.UpdateCategoryInput{Name: req.Name, Slug: req.Slug}, nil
			},
			func(category *entity.Category) any {
				return categoryView{
					ID:        category.ID,
					Name:      category.Name,
					Slug:      category.Slug,
					CreatedAt: category.CreatedAt,
					UpdatedAt: category.UpdatedAt,
				}
			},
			cfg.Pagination.PerPage,
		),
	}
}

// --- Brand ---

type createBrandRequest struct {
	Name string `json:"name" validate:"required,max=255"`
	Slug string `json:"slug" validate:"required,max=255"`
}

type updateBrandRequest struct {
	Name *string `json:"name" validate:"omitempty,max=255"`
	Slug *string `json:"slug" validate:"omitempty,max=255"`
}

type brandView struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BrandHandler serves the brand CRUD routes.
type BrandHandler struct {
	*resourceHandler[entity.Brand, usecase.CreateBrandInput, usecase.UpdateBrandInput]
}

// NewBrandHandler is the constructor for BrandHandler, injected by Fx.
func NewBrandHandler(uc usecase.BrandUsecase, cfg *config.Config) *BrandHandler {
	return &BrandHandler{
		resourceHandler: newResourceHandler(
			uc,
			func(c echo.Context) (*usecase.CreateBrandInput, error) {
				req, err := bindAndValidate[createBrandRequest](c)
				if err != nil {
					return nil, err
				}

				return &usecase.CreateBrandInput{Name: req.Name, Slug: req.Slug}, nil
			},
			func(c echo.Context) (*usecase.UpdateBrandInput, error) {
				req, err := bindAndValidate[updateBrandRequest](c)
				if err != nil {
					return nil, err
				}

				return &usecase.UpdateBrandInput{Name: req.Name, Slug: req.Slug}, nil
			},
			func(brand *entity.Brand) any {
				return brandView{
					ID:        brand.ID,
					Name:      brand.Name,
					Slug:      brand.Slug,
					CreatedAt: brand.CreatedAt,
					UpdatedAt: brand.UpdatedAt,
				}
			},
			cfg.Pagination.PerPage,
		),
	}
}

// --- Comment ---

type createCommentRequest struct {
	Username string `json:"username" validate:"required,max=255"`
	Title    string `json:"title" validate:"required,max=255"`
	Content  string `json:"content" validate:"required"`
}

type updateCommentRequest struct {
	Username *string `json:"username" validate:"omitempty,max=255"`
	Title    *string `json:"title" validate:"omitempty,max=255"`
	Content  *string `json:"content" validate:"omitempty"`
}

type commentView struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CommentHandler serves the comment CRUD routes.
type CommentHandler struct {
	*resourceHandler[entity.Comment, usecase.CreateCommentInput, usecase.UpdateCommentInput]
}

// NewCommentHandler is the constructor for CommentHandler, injected by Fx.
func NewCommentHandler(uc usecase.CommentUsecase, cfg *config.Config) *CommentHandler {
	return &CommentHandler{
		resourceHandler: newResourceHandler(
			uc,
			func(c echo.Context) (*usecase.CreateCommentInput, error) {
				req, err := bindAndValidate[createCommentRequest](c)
				if err != nil {
					return nil, err
				}

				return &usecase.CreateCommentInput{
					Username: req.Username,
					Title:    req.Title,
					Content:  req.Content,
				}, nil
			},
			func(c echo.Context) (*usecase.UpdateCommentInput, error) {
				req, err := bindAndValidate[updateCommentRequest](c)
				if err != nil {
					return nil, err
				}

				return &usecase.UpdateCommentInput{
					Username: req.Username,
					Title:    req.Title,
					Content:  req.Content,
				}, nil
			},
			func(comment *entity.Comment) any {
				return commentView{
					ID:        comment.ID,
					Username:  comment.Username,
					Title:     comment.Title,
					Content:   comment.Content,
					CreatedAt: comment.CreatedAt,
					UpdatedAt: comment.UpdatedAt,
				}
			},
			cfg.Pagination.PerPage,
		),
	}
}
