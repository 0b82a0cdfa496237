package client

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Keepalive pings the API while the user is active and ends the session once
// no request has been sent for the idle timeout.
type Keepalive struct {
	interval    time.Duration
	idleTimeout time.Duration
	session     *Session
	ping        func(ctx context.Context) error
	log         logrus.FieldLogger
	now         func() time.Time

	mu           sync.Mutex
	lastActivity time.Time
}

// NewKeepalive creates a Keepalive. ping is called every interval while the
// session is active.
func NewKeepalive(interval, idleTimeout time.Duration, session *Session, ping func(ctx context.Context) error, log logrus.FieldLogger) *Keepalive {
	return &Keepalive{
		interval:     interval,
		idleTimeout:  idleTimeout,
		session:      session,
		ping:         ping,
		log:          log,
		now:          time.Now,
		lastActivity: time.Now(),
	}
}

// Touch records user activity.
func (k *Keepalive) Touch() {
	k.mu.Lock()
	k.lastActivity = k.now()
	k.mu.Unlock()
}

type passiveKey struct{}

// Passive marks requests made with the returned context as background
// traffic. They are sent normally but do not count as user activity.
func Passive(ctx context.Context) context.Context {
	return context.WithValue(ctx, passiveKey{}, true)
}

// IsPassive reports whether ctx was marked by Passive.
func IsPassive(ctx context.Context) bool {
	passive, _ := ctx.Value(passiveKey{}).(bool)
	return passive
}

// Interceptor records activity for every request sent through the client,
// except those made with a Passive context.
func (k *Keepalive) Interceptor() Interceptor {
	return func(next Doer) Doer {
		return DoerFunc(func(req *http.Request) (*http.Response, error) {
			if !IsPassive(req.Context()) {
				k.Touch()
			}
			return next.Do(req)
		})
	}
}

// Idle reports whether the idle timeout has passed since the last activity.
func (k *Keepalive) Idle() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.idleTimeout > 0 && k.now().Sub(k.lastActivity) >= k.idleTimeout
}

// Run ticks until ctx is done.
func (k *Keepalive) Run(ctx context.Context) {
	if k.interval <= 0 {
		<-ctx.Done()
		return
	}

	ticker := time.NewTicker(k.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			k.tick(ctx)
		}
	}
}

func (k *Keepalive) tick(ctx context.Context) {
	if _, ok := k.session.Token(); !ok {
		return
	}

	if k.Idle() {
		k.log.Info("Keepalive.idle timeout, ending session")
		k.session.Clear()
		return
	}

	if err := k.ping(ctx); err != nil {
		k.log.WithError(err).Warn("Keepalive.ping")
	}
}
