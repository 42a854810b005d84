// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strconv"

	"shop/internal/delivery/http/response"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// pageView is the serialized form of one result page.
type pageView struct {
	Items    []any `json:"items"`
	Page     int   `json:"page"`
	PerPage  int   `json:"per_page"`
	Total    int64 `json:"total"`
	LastPage int   `json:"last_page"`
}

func presentPage[E any](page *repository.Page[E], present func(*E) any) pageView {
	items := make([]any, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, present(item))
	}

	return pageView{
		Items:    items,
		Page:     page.Page,
		PerPage:  page.PerPage,
		Total:    page.Total,
		LastPage: page.LastPage,
	}
}

// parsePagination reads page/per_page query parameters. A missing or
// malformed per_page falls back to the configured default.
func parsePagination(c echo.Context, defaultPerPage int) repository.Pagination {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	perPage, _ := strconv.Atoi(c.QueryParam("per_page"))
	if perPage <= 0 {
		perPage = defaultPerPage
	}

	return repository.Pagination{Page: page, PerPage: perPage}
}

// parseID reads the :id path parameter as an unsigned integer.
func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails("id must be a positive integer")
	}

	return uint(id), nil
}

// bindAndValidate decodes the request body into T and runs tag validation.
func bindAndValidate[T any](c echo.Context) (*T, error) {
	var req T
	if err := c.Bind(&req); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return nil, err
	}

	return &req, nil
}

// resourceHandler serves the uniform CRUD surface for one resource. Binding
// and presentation differ per entity and are injected as functions; the
// request flow itself is written once.
type resourceHandler[E any, C any, U any] struct {
	uc         usecase.ResourceUsecase[E, C, U]
	bindCreate func(echo.Context) (*C, error)
	bindUpdate func(echo.Context) (*U, error)
	present    func(*E) any
	perPage    int
}

func newResourceHandler[E any, C any, U any](
	uc usecase.ResourceUsecase[E, C, U],
	bindCreate func(echo.Context) (*C, error),
	bindUpdate func(echo.Context) (*U, error),
	present func(*E) any,
	perPage int,
) *resourceHandler[E, C, U] {
	return &resourceHandler[E, C, U]{
		uc:         uc,
		bindCreate: bindCreate,
		bindUpdate: bindUpdate,
		present:    present,
		perPage:    perPage,
	}
}

// List handles the paginated listing request.
func (h *resourceHandler[E, C, U]) List(c echo.Context) error {
	result, err := h.uc.List(c.Request().Context(), parsePagination(c, h.perPage))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, presentPage(result, h.present), "")
}

// Get handles the fetch-one request.
func (h *resourceHandler[E, C, U]) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	found, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.present(found), "")
}

// Create handles the creation request.
func (h *resourceHandler[E, C, U]) Create(c echo.Context) error {
	input, err := h.bindCreate(c)
	if err != nil {
		return err
	}

	created, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, h.present(created), "Created")
}

// Update handles the partial update request.
func (h *resourceHandler[E, C, U]) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	input, err := h.bindUpdate(c)
	if err != nil {
		return err
	}

	updated, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusAccepted, h.present(updated), "Updated")
}

// Delete handles the deletion request.
func (h *resourceHandler[E, C, U]) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
