package adopcion

import (
	"context"
	"net/http"
)

// AuthService handles login and session verification.
type AuthService struct {
	client *Client
}

// LoginRequest is the request for logging in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the payload returned on a successful login.
type LoginResult struct {
	// Token is the opaque bearer credential for subsequent calls.
	Token string `json:"token"`
	// Admin is the authenticated administrator's profile.
	Admin Admin `json:"admin"`
	// Organizacion is the admin's organization, when the backend
	// includes it.
	Organizacion *Organization `json:"organizacion,omitempty"`
}

// Login exchanges credentials for a bearer token and profile. A 401 here
// means invalid credentials, not an expired session, so it does not
// trigger the session-expiry side effects.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var resp LoginResult
	req := LoginRequest{Email: email, Password: password}
	if err := s.client.send(ctx, http.MethodPost, "/api/auth/login", req, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me verifies the current token against the backend and returns the fresh
// profile. Any persisted profile is provisional until this succeeds.
func (s *AuthService) Me(ctx context.Context) (*Admin, error) {
	var resp struct {
		Admin Admin `json:"admin"`
	}
	if err := s.client.get(ctx, "/api/auth/me", &resp); err != nil {
		return nil, err
	}
	return &resp.Admin, nil
}
