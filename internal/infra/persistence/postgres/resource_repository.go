// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// resourceRepository is the single generic CRUD implementation shared by all
// catalog entities. M is the GORM model, E the domain entity; the two mapper
// functions translate between them so domain code never sees GORM types.
type resourceRepository[M any, E any] struct {
	db         *gorm.DB
	toEntity   func(*M) *E
	fromEntity func(*E) *M
}

func newResourceRepository[M any, E any](db *gorm.DB, toEntity func(*M) *E, fromEntity func(*E) *M) *resourceRepository[M, E] {
	return &resourceRepository[M, E]{
		db:         db,
		toEntity:   toEntity,
		fromEntity: fromEntity,
	}
}

// List returns one bounded page of records in primary-key order.
func (repo *resourceRepository[M, E]) List(ctx context.Context, page repository.Pagination) (*repository.Page[E], error) {
	page = page.Normalize()

	var total int64
	if err := repo.db.WithContext(ctx).Model(new(M)).Count(&total).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count records")
	}

	var models []M
	err := repo.db.WithContext(ctx).
		Order("id").
		Limit(page.PerPage).
		Offset(page.Offset()).
		Find(&models).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list records")
	}

	items := make([]*E, 0, len(models))
	for i := range models {
		items = append(items, repo.toEntity(&models[i]))
	}

	return repository.NewPage(items, page, total), nil
}

// FindByID retrieves a single record by primary key.
func (repo *resourceRepository[M, E]) FindByID(ctx context.Context, id uint) (*E, error) {
	var m M
	err := repo.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find record by id")
	}

	return repo.toEntity(&m), nil
}

// Create persists a new record and writes the generated ID and timestamps
// back onto the entity.
func (repo *resourceRepository[M, E]) Create(ctx context.Context, e *E) error {
	m := repo.fromEntity(e)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateWriteError(err, "failed to create record")
	}

	*e = *repo.toEntity(m)

	return nil
}

// Update persists the full state of an existing record.
func (repo *resourceRepository[M, E]) Update(ctx context.Context, e *E) error {
	m := repo.fromEntity(e)

	if err := repo.db.WithContext(ctx).Save(m).Error; err != nil {
		return translateWriteError(err, "failed to update record")
	}

	*e = *repo.toEntity(m)

	return nil
}

// Delete removes a record permanently. A second delete of the same ID
// reports ErrNotFound rather than silently succeeding.
func (repo *resourceRepository[M, E]) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(new(M), id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete record")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// translateWriteError converts constraint violations into domain errors so
// callers can map them onto validation responses.
func translateWriteError(err error, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return domainerrors.ErrSlugTaken.WrapMessage(details)
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrInvalidReference.WrapMessage(details)
	case isNotNullConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WrapMessage(details)
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}
