package middleware

import (
	"strings"

	deliverycontext "shop/internal/delivery/context"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware resolves bearer API tokens to accounts. The resolved actor
// is stored on the request context only; no global auth state exists.
type AuthMiddleware struct {
	users usecase.UserUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(users usecase.UserUsecase) *AuthMiddleware {
	return &AuthMiddleware{users: users}
}

// Authenticate validates the Authorization header and loads the matching
// account. Requests without a resolvable token are rejected with 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrUnauthenticated.WithDetails("Authorization header is missing")
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader {
			return domainerrors.ErrUnauthenticated.WithDetails("Invalid token format, must be Bearer token")
		}

		actor, err := m.users.Authenticate(c.Request().Context(), token)
		if err != nil {
			return domainerrors.ErrUnauthenticated
		}

		deliverycontext.SetActor(c, actor)
		c.SetRequest(c.Request().WithContext(
			deliverycontext.WithActor(c.Request().Context(), actor),
		))

		return next(c)
	}
}
