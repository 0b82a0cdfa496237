package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/ninebudget/ninebudget/model"
)

type authenticateResponse struct {
	IDToken string `json:"id_token"`
}

// AuthenticationService logs the user in and out.
type AuthenticationService struct {
	t       *transport
	session *Session
}

// Login exchanges credential for an id token and stores it in the session.
func (s *AuthenticationService) Login(ctx context.Context, credential model.Credential) error {
	if credential.Username == "" || credential.Password == "" {
		return errors.New("login: username and password are required")
	}

	var resp authenticateResponse
	if err := s.t.do(ctx, http.MethodPost, "/authenticate", nil, credential, &resp); err != nil {
		return err
	}
	if resp.IDToken == "" {
		return fmt.Errorf("login: %w", ErrNotAuthenticated)
	}
	return s.session.Set(resp.IDToken)
}

// Logout drops the session.
func (s *AuthenticationService) Logout() {
	s.session.Clear()
}

// IsAuthenticated reports whether the session holds a usable token.
func (s *AuthenticationService) IsAuthenticated() bool {
	_, ok := s.session.Token()
	return ok
}
