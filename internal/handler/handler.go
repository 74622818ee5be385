package handler

import (
	"github.com/labstack/echo/v4"

	"taskapi/internal/api"
	"taskapi/internal/apperrors"
)

// respondError maps a domain error to its HTTP status and writes an error
// envelope. Internal detail never reaches the client; echo's logger middleware
// records it.
func respondError(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	if httpErr.StatusCode >= 500 {
		c.Logger().Error(err)
	}
	return c.JSON(httpErr.StatusCode, api.Error(httpErr.Message))
}
