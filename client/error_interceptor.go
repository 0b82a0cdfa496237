package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

const maxErrorBody = 1 << 20

// errorBody covers the RFC 7807 body huma writes and the {"message"} body
// older endpoints return.
type errorBody struct {
	Title   string `json:"title"`
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

// ErrorInterceptor turns transport failures and error statuses into Go errors.
// A 401 calls onUnauthorized, which is how a stale session gets dropped.
func ErrorInterceptor(log logrus.FieldLogger, onUnauthorized func()) Interceptor {
	return func(next Doer) Doer {
		return DoerFunc(func(req *http.Request) (*http.Response, error) {
			resp, err := next.Do(req)
			if err != nil {
				log.WithError(err).WithFields(logrus.Fields{
					"method": req.Method,
					"url":    req.URL.String(),
				}).Warn("ErrorInterceptor.transport")
				return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL, err)
			}

			if resp.StatusCode < http.StatusBadRequest {
				return resp, nil
			}

			apiErr := readAPIError(req, resp)
			log.WithFields(logrus.Fields{
				"method": req.Method,
				"url":    apiErr.URL,
				"status": apiErr.StatusCode,
			}).Warn("ErrorInterceptor.status")

			if resp.StatusCode == http.StatusUnauthorized && onUnauthorized != nil {
				onUnauthorized()
			}
			return nil, apiErr
		})
	}
}

func readAPIError(req *http.Request, resp *http.Response) *APIError {
	defer resp.Body.Close()

	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Method:     req.Method,
		URL:        req.URL.String(),
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return apiErr
	}

	var body errorBody
	if json.Unmarshal(raw, &body) != nil {
		apiErr.Message = strings.TrimSpace(string(raw))
		return apiErr
	}

	switch {
	case body.Detail != "":
		apiErr.Message = body.Detail
	case body.Message != "":
		apiErr.Message = body.Message
	default:
		apiErr.Message = body.Title
	}
	return apiErr
}
