package client

import (
	"net/http"
)

// Doer sends a single HTTP request.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// DoerFunc adapts a function to a Doer.
type DoerFunc func(req *http.Request) (*http.Response, error)

func (f DoerFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

// Interceptor is a middleware stage wrapped around every request the client sends.
type Interceptor func(next Doer) Doer

// Chain wraps base with interceptors. The first interceptor is the outermost:
// it sees the request first and the response last.
func Chain(base Doer, interceptors ...Interceptor) Doer {
	d := base
	for i := len(interceptors) - 1; i >= 0; i-- {
		d = interceptors[i](d)
	}
	return d
}
