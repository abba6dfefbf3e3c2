package identity

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"

	"github.com/jskang/quillpress/backend/pkg/config"
)

// Tokens is the slice of the provider's token response that the frontend
// consumes.
type Tokens struct {
	AccessToken string `json:"access_token"`
	IDToken     string `json:"id_token"`
}

// Client exchanges authorization codes against the identity provider's
// token endpoint.
type Client struct {
	conf *oauth2.Config
}

// NewClient builds the exchange client from the configured endpoint,
// client id and redirect URI.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		conf: &oauth2.Config{
			ClientID:    cfg.ClientID,
			RedirectURL: cfg.RedirectURI,
			Endpoint: oauth2.Endpoint{
				TokenURL: cfg.TokenEndpoint,
				// Public client: client_id rides in the form body, no secret.
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
	}
}

// Exchange performs the authorization-code grant. The id_token arrives as
// an extra field of the provider response.
func (c *Client) Exchange(ctx context.Context, code string) (*Tokens, error) {
	tok, err := c.conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	idToken, _ := tok.Extra("id_token").(string)
	return &Tokens{AccessToken: tok.AccessToken, IDToken: idToken}, nil
}
