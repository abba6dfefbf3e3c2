package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func corsServer(allowedOrigin string) *echo.Echo {
	e := echo.New()
	e.Use(CORS(allowedOrigin))
	e.GET("/items", func(c echo.Context) error {
		return c.JSON(http.StatusOK, []string{})
	})
	return e
}

func TestCORS(t *testing.T) {
	t.Run("wildcard origin by default", func(t *testing.T) {
		e := corsServer("")

		req := httptest.NewRequest(http.MethodGet, "/items", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
		assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowCredentials))
	})

	t.Run("pinned origin with credentials", func(t *testing.T) {
		e := corsServer("https://example.com")

		req := httptest.NewRequest(http.MethodGet, "/items", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "https://example.com", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
		assert.Equal(t, "true", rec.Header().Get(echo.HeaderAccessControlAllowCredentials))
	})

	t.Run("preflight answers 200 with an empty body", func(t *testing.T) {
		e := corsServer("")

		req := httptest.NewRequest(http.MethodOptions, "/token", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{}`, rec.Body.String())
		assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
		assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowMethods), "OPTIONS")
	})
}
