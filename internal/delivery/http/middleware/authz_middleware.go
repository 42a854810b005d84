package middleware

import (
	deliverycontext "shop/internal/delivery/context"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthzMiddleware gates routes by named capability. Every protected route
// passes through here; handlers never carry their own permission checks.
type AuthzMiddleware struct {
	authorizer service.Authorizer
}

// NewAuthzMiddleware is the constructor for AuthzMiddleware.
func NewAuthzMiddleware(authorizer service.Authorizer) *AuthzMiddleware {
	return &AuthzMiddleware{authorizer: authorizer}
}

// Require allows the request through only when the authenticated actor's
// role grants the capability. It must run after Authenticate.
func (m *AuthzMiddleware) Require(capability string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor := deliverycontext.GetActor(c)
			if actor == nil {
				return domainerrors.ErrUnauthenticated
			}

			if !m.authorizer.Allows(capability, actor.Role) {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}
