package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// CORS applies the access-control contract of the API: wildcard origin by
// default, or a pinned origin with credentials when the frontend lives on a
// fixed domain (the session-cookie variant). Preflight requests get a 200
// with an empty JSON body before any business logic runs, which is why
// echo's built-in CORS middleware (hardwired to 204) is not used here.
func CORS(allowedOrigin string) echo.MiddlewareFunc {
	origin := "*"
	credentials := false
	if allowedOrigin != "" {
		origin = allowedOrigin
		credentials = true
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set(echo.HeaderAccessControlAllowOrigin, origin)
			h.Set(echo.HeaderAccessControlAllowMethods, "GET, POST, PUT, DELETE, OPTIONS")
			h.Set(echo.HeaderAccessControlAllowHeaders, "Content-Type,Authorization")
			if credentials {
				h.Set(echo.HeaderAccessControlAllowCredentials, "true")
			}

			if c.Request().Method == http.MethodOptions {
				return c.JSON(http.StatusOK, map[string]string{})
			}

			return next(c)
		}
	}
}
