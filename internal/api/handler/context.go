package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/petowners/petregistry/internal/api/middleware"
	"github.com/petowners/petregistry/internal/core/domain"
)

// principal returns the caller resolved by the Authenticate middleware, nil
// for anonymous requests.
func principal(c echo.Context) *domain.Principal {
	return middleware.PrincipalFrom(c)
}

// pathID parses the :id path parameter. Anything that is not a positive
// integer cannot name a stored row, so it is reported as notFound.
func pathID(c echo.Context, notFound *domain.Error) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, notFound
	}
	return id, nil
}

type messageResponse struct {
	Message string `json:"message"`
}

type createdResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}
