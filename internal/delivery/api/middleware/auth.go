// Package middleware holds the API-specific Echo middleware.
package middleware

import (
	deliverycontext "tableplay/internal/delivery/context"
	"tableplay/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware rejects requests without a usable bearer token.
type AuthMiddleware struct {
	identity usecase.IdentityUsecase
}

func NewAuthMiddleware(identity usecase.IdentityUsecase) *AuthMiddleware {
	return &AuthMiddleware{identity: identity}
}

// Authenticate resolves the Authorization header and stores the user for the handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := m.identity.Resolve(c.Request().Context(), c.Request().Header.Get(echo.HeaderAuthorization))
		if err != nil {
			return errors.WithStack(err)
		}

		deliverycontext.SetUser(c, user)

		return next(c)
	}
}
