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

type registerRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Email       string `json:"email" validate:"required,email,max=255"`
	PhoneNumber string `json:"phone_number" validate:"required,max=32"`
	Password    string `json:"password" validate:"required,min=6,max=72"`
}

type loginRequest struct {
	PhoneNumber         string `json:"phone_number" validate:"required,max=32"`
	Password            string `json:"password" validate:"required"`
	GenerateNewAPIToken bool   `json:"generate_new_api_token"`
}

type changePasswordRequest struct {
	Phone           string `json:"phone" validate:"required,max=32"`
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6,max=72"`
}

type updatePersonRequest struct {
	Name  *string `json:"name" validate:"omitempty,max=255"`
	Email *string `json:"email" validate:"omitempty,email,max=255"`
}

// userView is the sanitized account representation. The password hash and
// the API token never leave the service.
type userView struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func presentUser(user *entity.User) any {
	return userView{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Role:        user.Role,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

// UserHandler holds dependencies for account-related handlers.
type UserHandler struct {
	uc      usecase.UserUsecase
	perPage int
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, cfg *config.Config) *UserHandler {
	return &UserHandler{uc: uc, perPage: cfg.Pagination.PerPage}
}

// Register handles the account registration request.
func (h *UserHandler) Register(c echo.Context) error {
	req, err := bindAndValidate[registerRequest](c)
	if err != nil {
		return err
	}

	user, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, presentUser(user), "User registered successfully")
}

// Login handles the login request. A failed password check is still a 201
// with success=false; only an unknown identifier is rejected outright.
func (h *UserHandler) Login(c echo.Context) error {
	req, err := bindAndValidate[loginRequest](c)
	if err != nil {
		return err
	}

	result, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		PhoneNumber:      req.PhoneNumber,
		Password:         req.Password,
		GenerateNewToken: req.GenerateNewAPIToken,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, result, "Login processed")
}

// ChangePassword handles the password change request.
func (h *UserHandler) ChangePassword(c echo.Context) error {
	req, err := bindAndValidate[changePasswordRequest](c)
	if err != nil {
		return err
	}

	user, err := h.uc.ChangePassword(c.Request().Context(), &usecase.ChangePasswordInput{
		PhoneNumber:     req.Phone,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusAccepted, presentUser(user), "Password updated")
}

// ListUsers handles the paginated account listing request.
func (h *UserHandler) ListUsers(c echo.Context) error {
	result, err := h.uc.ListUsers(c.Request().Context(), parsePagination(c, h.perPage))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, presentPage(result, presentUser), "")
}

// GetPerson handles the fetch-one account request.
func (h *UserHandler) GetPerson(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	user, err := h.uc.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, presentUser(user), "")
}

// UpdatePerson handles the partial account update keyed by phone number.
func (h *UserHandler) UpdatePerson(c echo.Context) error {
	phone := c.Param("phone")

	req, err := bindAndValidate[updatePersonRequest](c)
	if err != nil {
		return err
	}

	user, err := h.uc.UpdateUserByPhone(c.Request().Context(), phone, &usecase.UpdateUserInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusAccepted, presentUser(user), "Updated")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
