package postgres

import (
	"shop/internal/domain/entity"
	"shop/internal/domain/repository"
	"shop/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// The leaf catalog entities reuse the generic repository directly; only the
// mapper pairs differ.

// NewCategoryRepository is the constructor for the category repository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return newResourceRepository(db, toCategoryDomain, fromCategoryDomain)
}

// NewBrandRepository is the constructor for the brand repository.
func NewBrandRepository(db *gorm.DB) repository.BrandRepository {
	return newResourceRepository(db, toBrandDomain, fromBrandDomain)
}

// NewCommentRepository is the constructor for the comment repository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return newResourceRepository(db, toCommentDomain, fromCommentDomain)
}

// --- Mapper Functions ---

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:        data.ID,
		Name:      data.Name,
		Slug:      data.Slug,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	if data == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:        data.ID,
		Name:      data.Name,
		Slug:      data.Slug,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toBrandDomain(data *model.BrandModel) *entity.Brand {
	if data == nil {
		return nil
	}

	return &entity.Brand{
		ID:        data.ID,
		Name:      data.Name,
		Slug:      data.Slug,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromBrandDomain(data *entity.Brand) *model.BrandModel {
	if data == nil {
		return nil
	}

	return &model.BrandModel{
		ID:        data.ID,
		Name:      data.Name,
		Slug:      data.Slug,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toCommentDomain(data *model.CommentModel) *entity.Comment {
	if data == nil {
		return nil
	}

	return &entity.Comment{
		ID:        data.ID,
		Username:  data.Username,
		Title:     data.Title,
		Content:   data.Content,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromCommentDomain(data *entity.Comment) *model.CommentModel {
	if data == nil {
		return nil
	}

	return &model.CommentModel{
		ID:        data.ID,
		Username:  data.Username,
		Title:     data.Title,
		Content:   data.Content,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
