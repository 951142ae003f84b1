package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/petowners/petregistry/internal/core/domain"
)

const principalKey = "principal"

// TokenVerifier rebuilds the principal a bearer token was issued for.
type TokenVerifier interface {
	Verify(token string) (*domain.Principal, error)
}

// Authenticate resolves the caller from an optional bearer token. Without an
// Authorization header the request continues anonymously; a header that is
// present but malformed or invalid is rejected with 401.
func Authenticate(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return next(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
				return domain.ErrNotAuthenticated
			}

			p, err := verifier.Verify(strings.TrimSpace(parts[1]))
			if err != nil {
				return domain.ErrNotAuthenticated
			}

			c.Set(principalKey, p)
			return next(c)
		}
	}
}

// PrincipalFrom returns the principal set by Authenticate, nil when the
// request is anonymous.
func PrincipalFrom(c echo.Context) *domain.Principal {
	p, _ := c.Get(principalKey).(*domain.Principal)
	return p
}
