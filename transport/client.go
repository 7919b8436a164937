// Package transport is the request pipeline every API call goes through:
// one client with a base path, an explicit middleware chain for the
// outgoing phase (progress, request id, bearer token) and centralized
// classification of every response, so individual callers never deal with
// auth or error boilerplate.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/darasa/darasa-go/core"
)

// TokenSource supplies the current session token; empty means
// unauthenticated. The session store implements it.
type TokenSource interface {
	Token() string
}

// Navigator lets the pipeline force a navigation (401 → login,
// 403 → forbidden page). The navigation router implements it.
type Navigator interface {
	Push(path string)
}

// Doer executes one HTTP exchange. The middleware chain decorates it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type DoerFunc func(req *http.Request) (*http.Response, error)

func (f DoerFunc) Do(req *http.Request) (*http.Response, error) { return f(req) }

// Middleware wraps a Doer; Chain applies the first middleware outermost, so
// the declared order is the execution order.
type Middleware func(next Doer) Doer

func Chain(base Doer, mw ...Middleware) Doer {
	for i := len(mw) - 1; i >= 0; i-- {
		base = mw[i](base)
	}
	return base
}

type Client struct {
	base     *url.URL
	http     *http.Client
	doer     Doer
	tokens   TokenSource
	nav      Navigator
	notify   core.Notifier
	progress core.Progress
	log      core.Logger

	// onUnauthorized is the single place a 401 forces the session to be
	// invalidated; the wiring layer binds it to the session store.
	onUnauthorized func(ctx context.Context)
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option  { return func(c *Client) { c.http = hc } }
func WithNotifier(n core.Notifier) Option    { return func(c *Client) { c.notify = n } }
func WithProgress(p core.Progress) Option    { return func(c *Client) { c.progress = p } }
func WithLogger(log core.Logger) Option      { return func(c *Client) { c.log = log } }
func WithTokenSource(ts TokenSource) Option  { return func(c *Client) { c.tokens = ts } }
func WithNavigator(nav Navigator) Option     { return func(c *Client) { c.nav = nav } }

func New(baseURL string, opts ...Option) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, errors.Wrapf(err, "transport.New(%s)", baseURL)
	}
	c := &Client{
		base: base,
		// no global timeout: AI generation calls can legitimately run for
		// minutes; callers bound individual requests via their context.
		http:     &http.Client{},
		notify:   core.NopNotifier(),
		progress: core.NopProgress(),
		log:      core.NopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.doer = Chain(
		DoerFunc(c.http.Do),
		progressMiddleware(c.progress),
		requestIDMiddleware(),
		bearerAuthMiddleware(c.token),
	)
	return c, nil
}

// BindSession attaches the token source after construction; the session
// store itself is built on top of this client, so the two are tied together
// by the wiring layer once both exist.
func (c *Client) BindSession(ts TokenSource) { c.tokens = ts }

func (c *Client) SetNavigator(nav Navigator) { c.nav = nav }

func (c *Client) OnUnauthorized(fn func(ctx context.Context)) { c.onUnauthorized = fn }

func (c *Client) token() string {
	if c.tokens == nil {
		return ""
	}
	return c.tokens.Token()
}

func (c *Client) push(path string) {
	if c.nav != nil {
		c.nav.Push(path)
	}
}

// Request is the pending request context for one exchange; it lives no
// longer than the call itself.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   interface{} // JSON-encoded when non-nil
	Form   *Form       // multipart body; takes precedence over Body
	Binary bool        // response is a raw payload, skip the envelope check
	Header http.Header
}

type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

func (r *Response) Decode(out interface{}) error {
	if out == nil || len(r.Body) == 0 {
		return nil
	}
	return errors.Wrap(json.Unmarshal(r.Body, out), "transport: decoding response")
}

// Blob is a downloaded binary payload.
type Blob struct {
	Filename    string
	ContentType string
	Data        []byte
}

// File is one part of a multipart upload.
type File struct {
	Field   string
	Name    string
	Content io.Reader
}

// Form builds a multipart/form-data body.
type Form struct {
	buf         bytes.Buffer
	contentType string
}

func NewForm(fields map[string]string, files ...File) (*Form, error) {
	f := new(Form)
	w := multipart.NewWriter(&f.buf)
	for key, val := range fields {
		if err := w.WriteField(key, val); err != nil {
			return nil, errors.Wrapf(err, "transport: form field %s", key)
		}
	}
	for _, file := range files {
		part, err := w.CreateFormFile(file.Field, file.Name)
		if err != nil {
			return nil, errors.Wrapf(err, "transport: form file %s", file.Name)
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			return nil, errors.Wrapf(err, "transport: form file %s", file.Name)
		}
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "transport: closing form")
	}
	f.contentType = w.FormDataContentType()
	return f, nil
}

// Do runs one request through the pipeline and decodes the JSON body into
// out when non-nil. Every failure branch notifies the user exactly once and
// always returns the error to the caller for local recovery.
func (c *Client) Do(ctx context.Context, req *Request, out interface{}) (*Response, error) {
	httpReq, err := c.build(ctx, req)
	if err != nil {
		return nil, err
	}

	httpResp, err := c.doer.Do(httpReq)
	if err != nil {
		return nil, c.failTransport(err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, c.failTransport(err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return nil, c.failStatus(ctx, httpResp.StatusCode, body)
	}
	if !req.Binary {
		if err := c.checkBusiness(body); err != nil {
			return nil, err
		}
	}

	resp := &Response{Status: httpResp.StatusCode, Header: httpResp.Header, Body: body}
	if out != nil {
		if err := resp.Decode(out); err != nil {
			return nil, err
		}
	}
	return resp, nil
}

func (c *Client) build(ctx context.Context, req *Request) (*http.Request, error) {
	target := *c.base
	target.Path = strings.TrimRight(target.Path, "/") + req.Path
	if len(req.Query) > 0 {
		target.RawQuery = req.Query.Encode()
	}

	var (
		body        io.Reader
		contentType string
	)
	switch {
	case req.Form != nil:
		body = &req.Form.buf
		contentType = req.Form.contentType
	case req.Body != nil:
		raw, err := json.Marshal(req.Body)
		if err != nil {
			return nil, errors.Wrap(err, "transport: encoding request body")
		}
		body = bytes.NewReader(raw)
		contentType = "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target.String(), body)
	if err != nil {
		return nil, errors.Wrapf(err, "transport: building %s %s", req.Method, req.Path)
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	for key, vals := range req.Header {
		for _, val := range vals {
			httpReq.Header.Add(key, val)
		}
	}
	return httpReq, nil
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	_, err := c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query}, out)
	return err
}

func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	_, err := c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body}, out)
	return err
}

func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	_, err := c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body}, out)
	return err
}

func (c *Client) Patch(ctx context.Context, path string, body, out interface{}) error {
	_, err := c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body}, out)
	return err
}

func (c *Client) Delete(ctx context.Context, path string, query url.Values, out interface{}) error {
	_, err := c.Do(ctx, &Request{Method: http.MethodDelete, Path: path, Query: query}, out)
	return err
}

// Upload posts a multipart form.
func (c *Client) Upload(ctx context.Context, path string, fields map[string]string, files []File, out interface{}) error {
	form, err := NewForm(fields, files...)
	if err != nil {
		return err
	}
	_, err = c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Form: form}, out)
	return err
}

// Download fetches a binary payload; the filename comes from the
// Content-Disposition header when the server provides one.
func (c *Client) Download(ctx context.Context, path string, query url.Values) (*Blob, error) {
	resp, err := c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query, Binary: true}, nil)
	if err != nil {
		return nil, err
	}
	return BlobFrom(resp), nil
}

// BlobFrom turns a binary response into a Blob.
func BlobFrom(resp *Response) *Blob {
	blob := &Blob{
		ContentType: resp.Header.Get("Content-Type"),
		Data:        resp.Body,
	}
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			blob.Filename = params["filename"]
		}
	}
	return blob
}
