package impl

import (
	"log/slog"

	"shop/internal/domain/entity"
	"shop/internal/domain/repository"
	"shop/internal/usecase"
)

// NewCategoryService is the constructor for the category usecase.
func NewCategoryService(repo repository.CategoryRepository, logger *slog.Logger) usecase.CategoryUsecase {
	return newResourceService(
		"category",
		repo,
		func(input *usecase.CreateCategoryInput) *entity.Category {
			return &entity.Category{
				Name: input.Name,
				Slug: input.Slug,
			}
		},
		func(category *entity.Category, input *usecase.UpdateCategoryInput) {
			if input.Name != nil {
				category.Name = *input.Name
			}
			if input.Slug != nil {
				category.Slug = *input.Slug
			}
		},
		logger,
	)
}

// NewBrandService is the constructor for the brand usecase.
func NewBrandService(repo repository.BrandRepository, logger *slog.Logger) usecase.BrandUsecase {
	return newResourceService(
		"brand",
		repo,
		func(input *usecase.CreateBrandInput) *entity.Brand {
			return &entity.Brand{
				Name: input.Name,
				Slug: input.Slug,
			}
		},
		func(brand *entity.Brand, input *usecase.UpdateBrandInput) {
			if input.Name != nil {
				brand.Name = *input.Name
			}
			if input.Slug != nil {
				brand.Slug = *input.Slug
			}
		},
		logger,
	)
}

// NewCommentService is the constructor for the comment usecase.
func NewCommentService(repo repository.CommentRepository, logger *slog.Logger) usecase.CommentUsecase {
	return newResourceService(
		"comment",
		repo,
		func(input *usecase.CreateCommentInput) *entity.Comment {
			return &entity.Comment{
				Username: input.Username,
				Title:    input.Title,
				Content:  input.Content,
			}
		},
		func(comment *entity.Comment, input *usecase.UpdateCommentInput) {
			if input.Username != nil {
				comment.Username = *input.Username
			}
			if input.Title != nil {
				comment.Title = *input.Title
			}
			if input.Content != nil {
				comment.Content = *input.Content
			}
		},
		logger,
	)
}
