package impl

import (
	"context"
	"log/slog"

	deliverycontext "shop/internal/delivery/context"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"

	"github.com/pkg/errors"
)

// resourceService is the single CRUD orchestration shared by every catalog
// resource. Per-entity behavior is injected as two functions: build turns an
// allow-listed create input into a fresh entity, merge applies the non-nil
// fields of an update input onto a loaded entity.
type resourceService[E any, C any, U any] struct {
	name   string
	repo   repository.Resource[E]
	build  func(*C) *E
	merge  func(*E, *U)
	logger *slog.Logger
}

func newResourceService[E any, C any, U any](
	name string,
	repo repository.Resource[E],
	build func(*C) *E,
	merge func(*E, *U),
	logger *slog.Logger,
) *resourceService[E, C, U] {
	return &resourceService[E, C, U]{
		name:   name,
		repo:   repo,
		build:  build,
		merge:  merge,
		logger: logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *resourceService[E, C, U]) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns one page of the resource in primary-key order.
func (srv *resourceService[E, C, U]) List(ctx context.Context, page repository.Pagination) (*repository.Page[E], error) {
	result, err := srv.repo.List(ctx, page)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", srv.name)
	}

	return result, nil
}

// Get retrieves one record by ID.
func (srv *resourceService[E, C, U]) Get(ctx context.Context, id uint) (*E, error) {
	found, err := srv.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrResourceNotFound
		}

		return nil, errors.Wrapf(err, "failed to find %s by id", srv.name)
	}

	return found, nil
}

// Create builds a fresh entity from the allow-listed input and persists it.
func (srv *resourceService[E, C, U]) Create(ctx context.Context, input *C) (*E, error) {
	created := srv.build(input)

	if err := srv.repo.Create(ctx, created); err != nil {
		srv.log(ctx).Warn("Create failed", slog.String("resource", srv.name), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Created", slog.String("resource", srv.name))

	return created, nil
}

// Update loads the record, merges the provided fields onto it, and persists
// the result. Omitted fields keep their stored values.
func (srv *resourceService[E, C, U]) Update(ctx context.Context, id uint, input *U) (*E, error) {
	current, err := srv.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrResourceNotFound
		}

		return nil, errors.Wrapf(err, "failed to load %s for update", srv.name)
	}

	srv.merge(current, input)

	if err := srv.repo.Update(ctx, current); err != nil {
		srv.log(ctx).Warn("Update failed", slog.String("resource", srv.name), slog.Uint64("id", uint64(id)), slog.Any("error", err))

		return nil, err
	}

	return current, nil
}

// Delete removes the record. Deleting an already absent record reports
// not found rather than succeeding silently.
func (srv *resourceService[E, C, U]) Delete(ctx context.Context, id uint) error {
	if err := srv.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domainerrors.ErrResourceNotFound
		}

		return errors.Wrapf(err, "failed to delete %s", srv.name)
	}

	srv.log(ctx).Debug("Deleted", slog.String("resource", srv.name), slog.Uint64("id", uint64(id)))

	return nil
}
