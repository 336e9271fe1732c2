// Package librequests is a small synchronous HTTP client: it issues
// GET/POST/PUT requests, accumulates the response body as it arrives,
// and records the numeric status code on a per-exchange Request
// context. Transport policy (timeouts, redirects, TLS) lives on the
// injected engine, not here.
package librequests

import (
	"bytes"
	"context"
	"net/http"
	"sync/atomic"

	"github.com/scobi84/librequests/config"
	"github.com/scobi84/librequests/form"
	"github.com/scobi84/librequests/internal/httpx"
	"github.com/scobi84/librequests/internal/platform"
	"github.com/scobi84/librequests/reqerr"
	"github.com/scobi84/librequests/transport"
)

// Request is the per-exchange context. It owns the accumulated response
// body, its byte count, and the status code of the last completed
// request. A Request must not be shared by concurrent calls; concurrent
// use is detected and reported as an error.
type Request struct {
	url string

	body       bytes.Buffer
	size       int64
	statusCode int

	inFlight atomic.Bool
	closed   atomic.Bool
}

// URL returns the request URL the context was created with.
func (r *Request) URL() string {
	return r.url
}

// StatusCode returns the transport-reported status of the last
// completed request, 0 before any request completes.
func (r *Request) StatusCode() int {
	return r.statusCode
}

// Body returns the accumulated response body. Never nil; empty before
// any request completes.
func (r *Request) Body() []byte {
	return r.body.Bytes()
}

// Text returns the accumulated response body as a string.
func (r *Request) Text() string {
	return r.body.String()
}

// Size returns the number of response bytes accumulated so far.
func (r *Request) Size() int64 {
	return r.size
}

func (r *Request) reset() {
	r.body.Reset()
	r.size = 0
	r.statusCode = 0
}

// Client drives exchanges for one or more Request contexts.
type Client struct {
	engine   transport.Engine
	cfg      *config.Config
	platform platform.Provider
}

// Option configures a Client at Init time.
type Option func(*Client)

// WithEngine injects a transport engine, replacing the default
// net/http-backed one.
func WithEngine(e transport.Engine) Option {
	return func(c *Client) {
		c.engine = e
	}
}

// WithConfig replaces the compiled-in configuration.
func WithConfig(cfg *config.Config) Option {
	return func(c *Client) {
		c.cfg = cfg
	}
}

// WithPlatform injects the platform info provider used for the
// User-Agent string.
func WithPlatform(p platform.Provider) Option {
	return func(c *Client) {
		c.platform = p
	}
}

// Init creates a Client and a fresh Request context for url. The
// context starts with an empty body, size 0 and status 0.
func Init(url string, opts ...Option) (*Client, *Request) {
	c := &Client{
		cfg:      config.Default(),
		platform: platform.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.engine == nil {
		if c.cfg.HTTP.Timeout > 0 {
			c.engine = httpx.NewEngineWithClient(&http.Client{Timeout: c.cfg.HTTP.Timeout})
		} else {
			c.engine = httpx.NewDefaultEngine()
		}
	}
	return c, &Request{url: url}
}

// NewRequest creates an additional Request context for url, sharing the
// client's engine. Concurrent requests must each use their own context.
func (c *Client) NewRequest(url string) *Request {
	return &Request{url: url}
}

// Get issues a GET and accumulates the response into req.
func (c *Client) Get(ctx context.Context, req *Request) error {
	return c.dispatch(ctx, "Client.Get", req, methodGet, nil, nil)
}

// Post submits pairs as a form-encoded body via POST.
func (c *Client) Post(ctx context.Context, req *Request, pairs form.Pairs) error {
	return c.dispatch(ctx, "Client.Post", req, methodPost, pairs, nil)
}

// Put submits pairs as a form-encoded body via PUT.
func (c *Client) Put(ctx context.Context, req *Request, pairs form.Pairs) error {
	return c.dispatch(ctx, "Client.Put", req, methodPut, pairs, nil)
}

// PostWithHeaders is Post with additional caller headers, appended in
// order after whatever the dispatcher assembled.
func (c *Client) PostWithHeaders(ctx context.Context, req *Request, pairs form.Pairs, headers []transport.Header) error {
	return c.dispatch(ctx, "Client.PostWithHeaders", req, methodPost, pairs, headers)
}

// PutWithHeaders is Put with additional caller headers.
func (c *Client) PutWithHeaders(ctx context.Context, req *Request, pairs form.Pairs, headers []transport.Header) error {
	return c.dispatch(ctx, "Client.PutWithHeaders", req, methodPut, pairs, headers)
}

// PostList is Post over a flattened key,value,key,value list. An
// odd-length list fails validation before any transport call.
func (c *Client) PostList(ctx context.Context, req *Request, kv ...string) error {
	op := "Client.PostList"
	pairs, err := form.PairsFromList(kv...)
	if err != nil {
		return reqerr.New().
			WithOp(op).
			WithKind(reqerr.ErrValidation).
			WithMessage(err.Error())
	}
	return c.dispatch(ctx, op, req, methodPost, pairs, nil)
}

// PutList is Put over a flattened key,value,key,value list.
func (c *Client) PutList(ctx context.Context, req *Request, kv ...string) error {
	op := "Client.PutList"
	pairs, err := form.PairsFromList(kv...)
	if err != nil {
		return reqerr.New().
			WithOp(op).
			WithKind(reqerr.ErrValidation).
			WithMessage(err.Error())
	}
	return c.dispatch(ctx, op, req, methodPut, pairs, nil)
}

// Close releases the context: the body buffer is dropped and idle
// transport connections are closed. A second Close, or a Close while a
// request on req is still in flight, returns an error.
func (c *Client) Close(req *Request) error {
	op := "Client.Close"
	if req == nil {
		return reqerr.New().
			WithOp(op).
			WithKind(reqerr.ErrValidation).
			WithMessage("request context is nil")
	}
	if req.inFlight.Load() {
		return reqerr.New().
			WithOp(op).
			WithKind(reqerr.ErrInFlight)
	}
	if !req.closed.CompareAndSwap(false, true) {
		return reqerr.New().
			WithOp(op).
			WithKind(reqerr.ErrClosed).
			WithMessage("context already closed")
	}

	req.reset()

	if ic, ok := c.engine.(interface{ CloseIdleConnections() }); ok {
		ic.CloseIdleConnections()
	}
	return nil
}
