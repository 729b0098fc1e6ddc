package client

import (
	"context"
	"fmt"

	"homegate/pkg/model"
)

type AuthClient struct {
	c *Client
}

func NewAuthClient(c *Client) *AuthClient {
	return &AuthClient{c: c}
}

// AuthResponse is the raw credential-exchange result. The token must be
// persisted before any verification call, which authenticates with it.
type AuthResponse struct {
	Token string
	User  *model.User
}

func (a *AuthClient) decodeAuth(resp *Response) (*AuthResponse, error) {
	var wrapper struct {
		Token string `json:"token"`
	}
	if err := resp.DecodeJSON(&wrapper); err != nil {
		return nil, fmt.Errorf("could not decode auth response: %w", err)
	}

	var user model.User
	if err := unwrap(resp, "user", &user); err != nil {
		return nil, err
	}

	return &AuthResponse{Token: wrapper.Token, User: &user}, nil
}

func (a *AuthClient) Login(ctx context.Context, creds model.LoginRequest) (*AuthResponse, error) {
	resp, err := a.c.POST(ctx, "/users/login", creds)
	if err != nil {
		return nil, err
	}
	return a.decodeAuth(resp)
}

func (a *AuthClient) Signup(ctx context.Context, payload model.SignupRequest) (*AuthResponse, error) {
	resp, err := a.c.POST(ctx, "/users/signup", payload)
	if err != nil {
		return nil, err
	}
	return a.decodeAuth(resp)
}

// Me fetches the identity behind the stored token. It is the verification
// step both login and bootstrap go through before a session is trusted.
func (a *AuthClient) Me(ctx context.Context) (*model.User, error) {
	resp, err := a.c.GET(ctx, "/users/me")
	if err != nil {
		return nil, err
	}
	var user model.User
	if err := unwrap(resp, "user", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (a *AuthClient) Logout(ctx context.Context) error {
	_, err := a.c.GET(ctx, "/users/logout")
	return err
}
