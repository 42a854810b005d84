package postgres

import (
	"context"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// productRepository extends the generic CRUD repository with the
// per-provider listing query.
type productRepository struct {
	*resourceRepository[model.ProductModel, entity.Product]
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		resourceRepository: newResourceRepository(db, toProductDomain, fromProductDomain),
		db:                 db,
	}
}

// ListByProvider returns a page of products whose provider_id matches.
func (repo *productRepository) ListByProvider(ctx context.Context, providerID uint, page repository.Pagination) (*repository.Page[entity.Product], error) {
	page = page.Normalize()

	query := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("provider_id = ?", providerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count provider products")
	}

	var models []model.ProductModel
	err := query.
		Order("id").
		Limit(page.PerPage).
		Offset(page.Offset()).
		Find(&models).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list provider products")
	}

	items := make([]*entity.Product, 0, len(models))
	for i := range models {
		items = append(items, toProductDomain(&models[i]))
	}

	return repository.NewPage(items, page, total), nil
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Price:       data.Price,
		Description: data.Description,
		Slug:        data.Slug,
		Stock:       data.Stock,
		BrandID:     data.BrandID,
		ProviderID:  data.ProviderID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Price:       data.Price,
		Description: data.Description,
		Slug:        data.Slug,
		Stock:       data.Stock,
		BrandID:     data.BrandID,
		ProviderID:  data.ProviderID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
