package transport

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/darasa/darasa-go/core"
)

const (
	headerAuthorization = "Authorization"
	headerRequestID     = "X-Request-ID"
)

// progressMiddleware pairs one Start with one Done around the exchange,
// whatever the outcome.
func progressMiddleware(p core.Progress) Middleware {
	return func(next Doer) Doer {
		return DoerFunc(func(req *http.Request) (*http.Response, error) {
			p.Start()
			defer p.Done()
			return next.Do(req)
		})
	}
}

// requestIDMiddleware tags every outgoing request so server logs can be
// correlated with a client call.
func requestIDMiddleware() Middleware {
	return func(next Doer) Doer {
		return DoerFunc(func(req *http.Request) (*http.Response, error) {
			if req.Header.Get(headerRequestID) == "" {
				req.Header.Set(headerRequestID, uuid.New().String())
			}
			return next.Do(req)
		})
	}
}

// bearerAuthMiddleware attaches the session token when one is present and
// leaves the header off otherwise.
func bearerAuthMiddleware(token func() string) Middleware {
	return func(next Doer) Doer {
		return DoerFunc(func(req *http.Request) (*http.Response, error) {
			if tok := token(); tok != "" {
				req.Header.Set(headerAuthorization, "Bearer "+tok)
			}
			return next.Do(req)
		})
	}
}
