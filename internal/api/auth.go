package api

import (
	"context"
	"net/http"
)

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse represents the login response
type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// SignupRequest represents the registration payload
type SignupRequest struct {
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Password     string   `json:"password"`
	Phone        string   `json:"phone"`
	ProfileImage string   `json:"profileImage"`
	Roles        []string `json:"roles"`
}

// Login authenticates with email and password. The bearer credential is NOT
// attached by this call; the session store installs it after validating the
// response shape.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var resp LoginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Signup registers a new account. The backend returns the created user
// without a token; the account is not authenticated by this call.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodPost, "/auth/signup", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CurrentUser fetches the identity behind the attached bearer credential
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
