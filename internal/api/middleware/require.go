package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/petowners/petregistry/internal/core/domain"
)

// RequirePrincipal rejects anonymous requests with 401 before the handler
// runs. It must be chained after Authenticate.
func RequirePrincipal() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if PrincipalFrom(c) == nil {
				return domain.ErrNotAuthenticated
			}
			return next(c)
		}
	}
}
