package client

import (
	"net/http"
)

// HeaderInterceptor stamps the JSON and auth headers on every request. The
// bearer token is only sent while the session holds an unexpired one.
func HeaderInterceptor(session *Session, userAgent string) Interceptor {
	return func(next Doer) Doer {
		return DoerFunc(func(req *http.Request) (*http.Response, error) {
			req = req.Clone(req.Context())

			req.Header.Set("Accept", "application/json")
			if req.Body != nil && req.Body != http.NoBody && req.Header.Get("Content-Type") == "" {
				req.Header.Set("Content-Type", "application/json")
			}
			if userAgent != "" {
				req.Header.Set("User-Agent", userAgent)
			}
			if token, ok := session.Token(); ok {
				req.Header.Set("Authorization", "Bearer "+token)
			}

			return next.Do(req)
		})
	}
}
