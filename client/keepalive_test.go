package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newTestKeepalive(t *testing.T, pings *int, pingErr error) (*Keepalive, *fakeClock, *Session) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	session := NewSession("")
	require.NoError(t, session.Set(signedToken(t, nil)))

	k := NewKeepalive(time.Minute, 15*time.Minute, session, func(ctx context.Context) error {
		*pings++
		return pingErr
	}, quietLogger())
	k.now = clock.Now
	k.Touch()
	return k, clock, session
}

func TestKeepalive_PingsWhileActive(t *testing.T) {
	pings := 0
	k, clock, session := newTestKeepalive(t, &pings, nil)

	clock.now = clock.now.Add(5 * time.Minute)
	k.tick(context.Background())

	assert.Equal(t, 1, pings)
	_, ok := session.Token()
	assert.True(t, ok)
}

func TestKeepalive_PingErrorKeepsSession(t *testing.T) {
	pings := 0
	k, _, session := newTestKeepalive(t, &pings, errors.New("offline"))

	k.tick(context.Background())

	assert.Equal(t, 1, pings)
	_, ok := session.Token()
	assert.True(t, ok)
}

func TestKeepalive_IdleEndsSession(t *testing.T) {
	pings := 0
	k, clock, session := newTestKeepalive(t, &pings, nil)

	clock.now = clock.now.Add(15 * time.Minute)
	assert.True(t, k.Idle())
	k.tick(context.Background())

	assert.Equal(t, 0, pings)
	_, ok := session.Token()
	assert.False(t, ok)
}

func TestKeepalive_TouchResetsIdle(t *testing.T) {
	pings := 0
	k, clock, _ := newTestKeepalive(t, &pings, nil)

	clock.now = clock.now.Add(14 * time.Minute)
	k.Touch()
	clock.now = clock.now.Add(14 * time.Minute)

	assert.False(t, k.Idle())
}

func TestKeepalive_NoSessionNoPing(t *testing.T) {
	pings := 0
	k, _, session := newTestKeepalive(t, &pings, nil)
	session.Clear()

	k.tick(context.Background())
	assert.Equal(t, 0, pings)
}

func TestKeepalive_RunStopsWithContext(t *testing.T) {
	pings := 0
	k, _, _ := newTestKeepalive(t, &pings, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		k.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
