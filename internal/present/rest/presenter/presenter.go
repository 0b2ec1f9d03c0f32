package presenter

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type errorResponse struct {
	Error string `json:"error"`
}

// OK wraps a successful response.
func OK(c echo.Context, payload any) error {
	return c.JSON(http.StatusOK, payload)
}

func Created(c echo.Context, payload any) error {
	return c.JSON(http.StatusCreated, payload)
}

func BadRequestMessage(c echo.Context, msg string) error {
	log.Debug().Str("path", c.Path()).Str("reason", msg).Msg("bad request")
	return c.JSON(http.StatusBadRequest, errorResponse{Error: msg})
}

// Unauthorized carries one generic body for every credential-layer failure
// so callers cannot probe which check rejected them.
func Unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid or missing credentials"})
}

func Forbidden(c echo.Context) error {
	return c.JSON(http.StatusForbidden, errorResponse{Error: "forbidden"})
}

func NotFound(c echo.Context, msg string) error {
	return c.JSON(http.StatusNotFound, errorResponse{Error: msg})
}

// InternalError logs the cause and returns a generic body; internal detail
// never reaches the caller.
func InternalError(c echo.Context, err error) error {
	log.Error().Err(err).Str("path", c.Path()).Msg("internal error")
	return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}
