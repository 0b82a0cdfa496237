package client

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_EmptyHasNoToken(t *testing.T) {
	_, ok := NewSession("").Token()
	assert.False(t, ok)
}

func TestSession_TokenWithoutExpiry(t *testing.T) {
	session := NewSession("")
	token := signedToken(t, nil)
	require.NoError(t, session.Set(token))

	got, ok := session.Token()
	assert.True(t, ok)
	assert.Equal(t, token, got)

	exp, err := session.ExpiresAt()
	assert.NoError(t, err)
	assert.Nil(t, exp)
}

func TestSession_ExpiryUsesClock(t *testing.T) {
	exp := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	session := NewSession("")
	require.NoError(t, session.Set(signedToken(t, &exp)))

	session.now = func() time.Time { return exp.Add(-time.Second) }
	_, ok := session.Token()
	assert.True(t, ok)

	session.now = func() time.Time { return exp }
	_, ok = session.Token()
	assert.False(t, ok, "token is unusable from its exp instant")
}

func TestSession_GarbageToken(t *testing.T) {
	session := NewSession("")
	require.NoError(t, session.Set("not-a-jwt"))

	_, ok := session.Token()
	assert.False(t, ok)
}

func TestSession_PersistsToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "nested", "session")
	token := signedToken(t, nil)

	require.NoError(t, NewSession(file).Set(token))

	info, err := os.Stat(file)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	reloaded := NewSession(file)
	require.NoError(t, reloaded.Load())
	got, ok := reloaded.Token()
	assert.True(t, ok)
	assert.Equal(t, token, got)

	reloaded.Clear()
	_, err = os.Stat(file)
	assert.True(t, os.IsNotExist(err))
}

func TestSession_LoadMissingFile(t *testing.T) {
	session := NewSession(filepath.Join(t.TempDir(), "absent"))
	assert.NoError(t, session.Load())

	_, err := session.ExpiresAt()
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}
