package client

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"
)

// Client is the budgeting API client. It is assembled once by New and is
// safe for concurrent use.
type Client struct {
	Budgets      *BudgetService
	Accounts     *AccountService
	Auth         *AuthenticationService
	Users        *UserService
	Institutions *InstitutionService
	Session      *Session
	Keepalive    *Keepalive

	registration Registration
	t            *transport
	ping         *transport
}

// Registration names what New wired, in order.
type Registration struct {
	Services     []string
	Interceptors []string
}

type options struct {
	httpClient   *http.Client
	logger       logrus.FieldLogger
	interceptors []namedInterceptor
}

type namedInterceptor struct {
	name string
	fn   Interceptor
}

// Option customizes New.
type Option func(*options)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithLogger sets the logger used by the interceptors and keepalive.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) { o.logger = l }
}

// WithInterceptor appends an interceptor after the built-in ones.
func WithInterceptor(name string, i Interceptor) Option {
	return func(o *options) { o.interceptors = append(o.interceptors, namedInterceptor{name: name, fn: i}) }
}

// New wires the services and the interceptor chain. Every request passes the
// error interceptor first and the header interceptor second.
func New(cfg Config, opts ...Option) (*Client, error) {
	o := options{logger: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.httpClient == nil {
		o.httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	session := NewSession(cfg.SessionFile)
	if err := session.Load(); err != nil {
		return nil, err
	}

	interceptors := []namedInterceptor{
		{name: "error", fn: ErrorInterceptor(o.logger, session.Clear)},
		{name: "header", fn: HeaderInterceptor(session, cfg.UserAgent)},
	}
	interceptors = append(interceptors, o.interceptors...)

	// Pings skip the activity tracking so they do not keep an idle session alive.
	ping, err := newTransport(cfg.BaseURL, Chain(o.httpClient, fns(interceptors)...))
	if err != nil {
		return nil, err
	}

	c := &Client{Session: session, ping: ping}
	c.Keepalive = NewKeepalive(cfg.KeepaliveInterval, cfg.IdleTimeout, session, c.Ping, o.logger)
	interceptors = append(interceptors, namedInterceptor{name: "activity", fn: c.Keepalive.Interceptor()})

	t, err := newTransport(cfg.BaseURL, Chain(o.httpClient, fns(interceptors)...))
	if err != nil {
		return nil, err
	}

	c.t = t
	c.Budgets = &BudgetService{t: t}
	c.Accounts = &AccountService{t: t}
	c.Auth = &AuthenticationService{t: t, session: session}
	c.Users = &UserService{t: t}
	c.Institutions = &InstitutionService{t: t}

	c.registration = Registration{
		Services: []string{"budget", "account", "authentication", "session", "user", "institution"},
	}
	for _, i := range interceptors {
		c.registration.Interceptors = append(c.registration.Interceptors, i.name)
	}
	return c, nil
}

// Registration reports the services and interceptors wired by New.
func (c *Client) Registration() Registration {
	return c.registration
}

// Ping checks that the API is reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.ping.do(ctx, http.MethodGet, "/status", nil, nil, nil)
}

// OpenAPI fetches the API's OpenAPI document.
func (c *Client) OpenAPI(ctx context.Context) (map[string]any, error) {
	var doc map[string]any
	if err := c.t.do(ctx, http.MethodGet, "/openapi.json", nil, nil, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func fns(named []namedInterceptor) []Interceptor {
	out := make([]Interceptor, len(named))
	for i, n := range named {
		out[i] = n.fn
	}
	return out
}
