package handlers

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/jskang/quillpress/backend/pkg/identity"
)

// CodeExchanger completes an OAuth2 authorization-code grant against the
// identity provider.
type CodeExchanger interface {
	Exchange(ctx context.Context, code string) (*identity.Tokens, error)
}

// AuthHandler handles the token exchange between the SPA and the identity
// provider. It is the only handler that talks to anything besides the
// document store.
type AuthHandler struct {
	exchanger    CodeExchanger
	cookieDomain string
}

// NewAuthHandler creates a new AuthHandler. A non-empty cookieDomain turns
// on the session-cookie variant.
func NewAuthHandler(exchanger CodeExchanger, cookieDomain string) *AuthHandler {
	return &AuthHandler{exchanger: exchanger, cookieDomain: cookieDomain}
}

// RegisterAuthRoutes registers the token exchange route
func (h *AuthHandler) RegisterAuthRoutes(e *echo.Echo) {
	e.POST("/token", h.ExchangeToken)
}

// TokenExchangeRequest defines the request body for the code exchange
type TokenExchangeRequest struct {
	Code string `json:"code" validate:"required"`
}

// TokenExchangeResponse relays the provider's tokens to the frontend
type TokenExchangeResponse struct {
	Success bool            `json:"success"`
	Tokens  identity.Tokens `json:"tokens"`
}

// TokenErrorResponse is the error body for the token exchange route
type TokenErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ExchangeToken validates the inbound code and trades it for tokens. An
// empty code never reaches the provider.
func (h *AuthHandler) ExchangeToken(c echo.Context) error {
	var req TokenExchangeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, TokenErrorResponse{Error: "Invalid authorization code format"})
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, TokenErrorResponse{Error: "Invalid authorization code format"})
	}

	tokens, err := h.exchanger.Exchange(c.Request().Context(), req.Code)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, TokenErrorResponse{
			Error:   "Failed to process token exchange",
			Details: err.Error(),
		})
	}

	if h.cookieDomain != "" {
		c.SetCookie(&http.Cookie{
			Name:     "accessToken",
			Value:    tokens.AccessToken,
			Domain:   h.cookieDomain,
			Path:     "/",
			MaxAge:   3600,
			Secure:   true,
			HttpOnly: true,
			SameSite: http.SameSiteNoneMode,
		})
	}

	return c.JSON(http.StatusOK, TokenExchangeResponse{
		Success: true,
		Tokens:  *tokens,
	})
}
