package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/ninebudget/ninebudget/model"
)

type passwordResetFinish struct {
	Key         string `json:"key"`
	NewPassword string `json:"newPassword"`
}

// UserService handles registration, activation and password resets.
type UserService struct {
	t *transport
}

// Register creates a user. The user stays inactive until activated.
func (s *UserService) Register(ctx context.Context, user model.User) (model.User, error) {
	var created model.User
	err := s.t.do(ctx, http.MethodPost, "/register", nil, user, &created)
	return created, err
}

// Activate activates the user owning key.
func (s *UserService) Activate(ctx context.Context, key string) error {
	return s.t.do(ctx, http.MethodGet, "/activate", url.Values{"key": {key}}, nil, nil)
}

// RequestPasswordReset mails a reset key to email.
func (s *UserService) RequestPasswordReset(ctx context.Context, email string) error {
	return s.t.do(ctx, http.MethodPost, "/account/reset-password/init", nil, map[string]string{"email": email}, nil)
}

// CompletePasswordReset sets newPassword for the user owning key. Keys expire
// server side a few minutes after they are issued.
func (s *UserService) CompletePasswordReset(ctx context.Context, key, newPassword string) error {
	body := passwordResetFinish{Key: key, NewPassword: newPassword}
	return s.t.do(ctx, http.MethodPost, "/account/reset-password/finish", nil, body, nil)
}
