package client

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session holds the id token of the logged in user. When a file is set the
// token survives between processes.
type Session struct {
	mu    sync.RWMutex
	token string
	file  string
	now   func() time.Time
}

// NewSession creates an empty session persisted to file. An empty file keeps
// the session in memory only.
func NewSession(file string) *Session {
	return &Session{file: file, now: time.Now}
}

// Load reads a previously saved token. A missing file is not an error.
func (s *Session) Load() error {
	if s.file == "" {
		return nil
	}

	raw, err := os.ReadFile(s.file)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read session file: %w", err)
	}

	s.mu.Lock()
	s.token = strings.TrimSpace(string(raw))
	s.mu.Unlock()
	return nil
}

// Set stores token and persists it.
func (s *Session) Set(token string) error {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	if s.file == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.file), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(s.file, []byte(token), 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

// Clear forgets the token and removes the persisted copy.
func (s *Session) Clear() {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()

	if s.file != "" {
		_ = os.Remove(s.file)
	}
}

// Token returns the stored token when it is present and not expired.
func (s *Session) Token() (string, bool) {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()

	if token == "" {
		return "", false
	}

	exp, err := tokenExpiry(token)
	if err != nil {
		return "", false
	}
	if exp != nil && !s.now().Before(*exp) {
		return "", false
	}
	return token, true
}

// ExpiresAt returns the expiry of the stored token, or nil when it has none.
func (s *Session) ExpiresAt() (*time.Time, error) {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()

	if token == "" {
		return nil, ErrNotAuthenticated
	}
	return tokenExpiry(token)
}

// tokenExpiry reads the exp claim without verifying the signature.
func tokenExpiry(token string) (*time.Time, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("parse session token: %w", err)
	}
	if claims.ExpiresAt == nil {
		return nil, nil
	}
	exp := claims.ExpiresAt.Time
	return &exp, nil
}
