package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jskang/quillpress/backend/internal/models"
)

// internalError maps any uncaught store or runtime failure to the uniform
// 500 body with best-effort detail passthrough.
func internalError(c echo.Context, err error) error {
	return c.JSON(http.StatusInternalServerError, models.MessageResponse{
		Message: "Internal server error",
		Details: err.Error(),
	})
}

// HTTPErrorHandler is the outermost error boundary. Routing misses inside
// the mutation surface answer 400 "Invalid operation" rather than echo's
// default 404/405; everything unrecognized collapses into the uniform 500.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		switch he.Code {
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			_ = c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "Invalid operation"})
		default:
			_ = c.JSON(he.Code, models.MessageResponse{Message: fmt.Sprintf("%v", he.Message)})
		}
		return
	}

	_ = internalError(c, err)
}
