package transport

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net"
	"net/http"
	"net/url"

	"github.com/darasa/darasa-go/core"
)

// user-facing messages, one per failure branch
const (
	msgSessionExpired = "session expired, please log in again"
	msgForbidden      = "you do not have permission to do that"
	msgNotFound       = "the requested resource does not exist"
	msgServerError    = "internal server error"
	msgTimeout        = "request timed out, check your connection"
	msgNetworkDown    = "network connection failed, check your settings"
	msgUnknown        = "unknown error"
	msgRequestFailed  = "request failed"
)

// redirect targets forced by the pipeline
const (
	loginRoute     = "/login"
	forbiddenRoute = "/403"
)

// envelope is the optional application-level wrapper some endpoints answer
// with on an otherwise fine HTTP response.
type envelope struct {
	Code    interface{} `json:"code"`
	Message string      `json:"message"`
}

// decodeEnvelope reports the numeric code, if one is present; a non-numeric
// or absent code means the HTTP status is the whole story.
func decodeEnvelope(body []byte) (code int, hasCode bool, message string) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return 0, false, ""
	}
	if f, ok := env.Code.(float64); ok {
		code, hasCode = int(f), true
	}
	return code, hasCode, env.Message
}

// isSuccessCode accepts both sentinels the backend emits; neither is
// canonical, so both stay valid.
func isSuccessCode(code int) bool { return code == 0 || code == 200 }

// checkBusiness rejects an HTTP-200 response whose envelope carries a
// non-success numeric code.
func (c *Client) checkBusiness(body []byte) error {
	code, ok, msg := decodeEnvelope(body)
	if !ok || isSuccessCode(code) {
		return nil
	}
	if msg == "" {
		msg = msgRequestFailed
	}
	c.notify.Error(msg)
	return &core.APIError{Kind: core.KindBusiness, Status: http.StatusOK, Code: code, Message: msg}
}

// failStatus maps a non-2xx response to its outcome. The 401 branch is the
// only place in the client that forces a global logout and a login
// redirect; every caller inherits that behavior from here.
func (c *Client) failStatus(ctx context.Context, status int, body []byte) error {
	_, _, msg := decodeEnvelope(body)

	switch status {
	case http.StatusUnauthorized:
		c.notify.Error(msgSessionExpired)
		if c.onUnauthorized != nil {
			c.onUnauthorized(ctx)
		}
		c.push(loginRoute)
		return &core.APIError{Kind: core.KindAuthentication, Status: status, Message: msgSessionExpired}

	case http.StatusForbidden:
		c.notify.Error(msgForbidden)
		c.push(forbiddenRoute)
		return &core.APIError{Kind: core.KindAuthorization, Status: status, Message: msgForbidden}

	case http.StatusNotFound:
		c.notify.Error(msgNotFound)
		return &core.APIError{Kind: core.KindNotFound, Status: status, Message: msgNotFound}

	case http.StatusInternalServerError:
		c.notify.Error(msgServerError)
		return &core.APIError{Kind: core.KindServerFault, Status: status, Message: msgServerError}

	default:
		if msg == "" {
			msg = fmt.Sprintf("%s (%d)", msgRequestFailed, status)
		}
		c.notify.Error(msg)
		return &core.APIError{Kind: core.KindServerFault, Status: status, Message: msg}
	}
}

// failTransport classifies failures where no HTTP response arrived at all.
func (c *Client) failTransport(err error) error {
	cause := err
	var uerr *url.Error
	if stderrors.As(err, &uerr) {
		cause = uerr.Err
	}

	var nerr net.Error
	switch {
	case stderrors.Is(cause, context.DeadlineExceeded),
		stderrors.As(cause, &nerr) && nerr.Timeout():
		c.notify.Error(msgTimeout)
		return &core.APIError{Kind: core.KindTimeout, Message: msgTimeout, Err: err}

	case uerr != nil:
		c.notify.Error(msgNetworkDown)
		return &core.APIError{Kind: core.KindNetwork, Message: msgNetworkDown, Err: err}

	default:
		msg := msgUnknown
		if err != nil && err.Error() != "" {
			msg = err.Error()
		}
		c.notify.Error(msg)
		return &core.APIError{Kind: core.KindUnknown, Message: msg, Err: err}
	}
}
