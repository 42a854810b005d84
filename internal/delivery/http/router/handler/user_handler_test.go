package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shop/config"
	"shop/internal/delivery/http/middleware"
	"shop/internal/delivery/http/validator"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// loginStub implements usecase.UserUsecase for the login route only.
type loginStub struct {
	login func(ctx context.Context, input *usecase.LoginInput) (*entity.LoginResult, error)
}

func (s *loginStub) Register(context.Context, *usecase.RegisterInput) (*entity.User, error) {
	return nil, nil
}

func (s *loginStub) Login(ctx context.Context, input *usecase.LoginInput) (*entity.LoginResult, error) {
	return s.login(ctx, input)
}

func (s *loginStub) ChangePassword(context.Context, *usecase.ChangePasswordInput) (*entity.User, error) {
	return nil, nil
}

func (s *loginStub) Authenticate(context.Context, string) (*entity.User, error) {
	return nil, nil
}

func (s *loginStub) ListUsers(context.Context, repository.Pagination) (*repository.Page[entity.User], error) {
	return nil, nil
}

func (s *loginStub) GetUser(context.Context, uint) (*entity.User, error) {
	return nil, nil
}

func (s *loginStub) UpdateUserByPhone(context.Context, string, *usecase.UpdateUserInput) (*entity.User, error) {
	return nil, nil
}

func newLoginServer(stub *loginStub) *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	e.POST("/api/v1/login", NewUserHandler(stub, &config.Config{}).Login)

	return e
}

func postLogin(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestUserHandler_Login_Success(t *testing.T) {
	e := newLoginServer(&loginStub{
		login: func(_ context.Context, input *usecase.LoginInput) (*entity.LoginResult, error) {
			assert.True(t, input.GenerateNewToken)

			return &entity.LoginResult{
				Username: input.PhoneNumber,
				APIKey:   "fresh-token",
				Success:  true,
				UserID:   7,
			}, nil
		},
	})

	rec := postLogin(e, `{"phone_number":"+981234567","password":"secret123","generate_new_api_token":true}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"success":true`)
	assert.Contains(t, body, `"api_key":"fresh-token"`)
	assert.Contains(t, body, `"username":"+981234567"`)
	assert.Contains(t, body, `"user_id":7`)
}

func TestUserHandler_Login_WrongPasswordStill201(t *testing.T) {
	e := newLoginServer(&loginStub{
		login: func(_ context.Context, input *usecase.LoginInput) (*entity.LoginResult, error) {
			return &entity.LoginResult{Username: input.PhoneNumber, UserID: 7}, nil
		},
	})

	rec := postLogin(e, `{"phone_number":"+981234567","password":"wrong"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"success":false`)
	// An empty APIKey is omitted entirely rather than sent as "".
	assert.NotContains(t, body, "api_key")
}

func TestUserHandler_Login_UnknownPhone403(t *testing.T) {
	e := newLoginServer(&loginStub{
		login: func(context.Context, *usecase.LoginInput) (*entity.LoginResult, error) {
			return nil, domainerrors.ErrInvalidLogin
		},
	})

	rec := postLogin(e, `{"phone_number":"+000000000","password":"whatever"}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid login")
}

func TestUserHandler_Login_MissingFields400(t *testing.T) {
	e := newLoginServer(&loginStub{
		login: func(context.Context, *usecase.LoginInput) (*entity.LoginResult, error) {
			t.Fatal("usecase must not be reached on invalid input")

			return nil, nil
		},
	})

	rec := postLogin(e, `{"phone_number":"+981234567"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
