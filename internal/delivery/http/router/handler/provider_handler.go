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

type createProviderRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Slug     string `json:"slug" validate:"required,max=255"`
	Address  string `json:"address" validate:"required,max=255"`
	Phone    string `json:"phone" validate:"required,max=32"`
	MemberID *uint  `json:"member_id"`
}

type updateProviderRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=255"`
	Slug     *string `json:"slug" validate:"omitempty,max=255"`
	Address  *string `json:"address" validate:"omitempty,max=255"`
	Phone    *string `json:"phone" validate:"omitempty,max=32"`
	MemberID *uint   `json:"member_id"`
}

type providerView struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	MemberID  *uint     `json:"member_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type providerAccountView struct {
	providerView
	AccountName  string `json:"account_name"`
	AccountEmail string `json:"account_email"`
}

func presentProvider(provider *entity.Provider) any {
	return providerView{
		ID:        provider.ID,
		Name:      provider.Name,
		Slug:      provider.Slug,
		Address:   provider.Address,
		Phone:     provider.Phone,
		MemberID:  provider.MemberID,
		CreatedAt: provider.CreatedAt,
		UpdatedAt: provider.UpdatedAt,
	}
}

func presentProviderAccount(account *entity.ProviderAccount) any {
	view, _ := presentProvider(&account.Provider).(providerView)

	return providerAccountView{
		providerView: view,
		AccountName:  account.AccountName,
		AccountEmail: account.AccountEmail,
	}
}

// ProviderHandler serves the provider routes. Reads return the account
// projection joined to the backing user; writes go through the plain rows.
type ProviderHandler struct {
	*resourceHandler[entity.Provider, usecase.CreateProviderInput, usecase.UpdateProviderInput]
	uc usecase.ProviderUsecase
}

// NewProviderHandler is the constructor for ProviderHandler, injected by Fx.
func NewProviderHandler(uc usecase.ProviderUsecase, cfg *config.Config) *ProviderHandler {
	return &ProviderHandler{
		resourceHandler: newResourceHandler[entity.Provider, usecase.CreateProviderInput, usecase.UpdateProviderInput](
			uc,
			bindCreateProvider,
			bindUpdateProvider,
			presentProvider,
			cfg.Pagination.PerPage,
		),
		uc: uc,
	}
}

func bindCreateProvider(c echo.Context) (*usecase.CreateProviderInput, error) {
	req, err := bindAndValidate[createProviderRequest](c)
	if err != nil {
		return nil, err
	}

	return &usecase.CreateProviderInput{
		Name:     req.Name,
		Slug:     req.Slug,
		Address:  req.Address,
		Phone:    req.Phone,
		MemberID: req.MemberID,
	}, nil
}

func bindUpdateProvider(c echo.Context) (*usecase.UpdateProviderInput, error) {
	req, err := bindAndValidate[updateProviderRequest](c)
	if err != nil {
		return nil, err
	}

	return &usecase.UpdateProviderInput{
		Name:     req.Name,
		Slug:     req.Slug,
		Address:  req.Address,
		Phone:    req.Phone,
		MemberID: req.MemberID,
	}, nil
}

// List overrides the generic listing with the joined account view.
func (h *ProviderHandler) List(c echo.Context) error {
	result, err := h.uc.ListAccounts(c.Request().Context(), parsePagination(c, h.perPage))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, presentPage(result, presentProviderAccount), "")
}

// Get overrides the generic fetch with the joined account view.
func (h *ProviderHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	account, err := h.uc.GetAccount(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, presentProviderAccount(account), "")
}
