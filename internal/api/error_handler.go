package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/petowners/petregistry/internal/api/metrics"
	"github.com/petowners/petregistry/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// validationResponse carries per-field violations.
type validationResponse struct {
	Errors map[string]string `json:"errors"`
}

var kinds = []struct {
	kind   error
	status int
	label  string
}{
	{domain.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
	{domain.ErrForbidden, http.StatusForbidden, "forbidden"},
	{domain.ErrNotFound, http.StatusNotFound, "not_found"},
	{domain.ErrBadRequest, http.StatusBadRequest, "bad_request"},
	{domain.ErrConflict, http.StatusConflict, "conflict"},
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps domain error kinds to their HTTP status codes.
//   - Renders field violations as {"errors": {...}}.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, any) {
	var de *domain.Error
	if errors.As(err, &de) {
		for _, k := range kinds {
			if errors.Is(de, k.kind) {
				metrics.ErrorsTotal.WithLabelValues(k.label).Inc()
				if len(de.Fields) > 0 {
					return k.status, validationResponse{Errors: de.Fields}
				}
				return k.status, errorResponse{Error: de.Message}
			}
		}
	}

	// Echo's own errors (router 404/405, recovered panics, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		metrics.ErrorsTotal.WithLabelValues("http").Inc()
		if he.Code >= http.StatusInternalServerError {
			logUnhandled(log, c, err)
		}
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	metrics.ErrorsTotal.WithLabelValues("internal").Inc()
	logUnhandled(log, c, err)
	return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
}

func logUnhandled(log zerolog.Logger, c echo.Context, err error) {
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg("unhandled error")
}
