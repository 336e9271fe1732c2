package transport

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// ChunkSink receives response body bytes as they arrive. It may be
// invoked zero or more times per exchange, in arrival order, possibly
// with an empty chunk. Returning an error aborts the exchange.
type ChunkSink func(chunk []byte) error

// Header is a single request header. Headers are kept as an ordered
// list rather than a map because emission order is part of the
// library's contract.
type Header struct {
	Name  string
	Value string
}

// Request is the engine's representation of one HTTP exchange.
type Request struct {
	// URL is the full request URL.
	URL string
	// Method is the HTTP verb.
	Method string
	// MethodOverride, when non-empty, replaces Method as the verb on
	// the wire. Used to issue PUT through a POST-shaped request so an
	// arbitrary body can be attached.
	MethodOverride string
	// Headers is the ordered header list for this exchange.
	Headers []Header
	// UserAgent identifies the client. Carried separately from Headers,
	// as a transport option, so the header list stays exactly what the
	// dispatcher assembled.
	UserAgent string
	// Body is the pre-encoded request body, nil when there is none.
	Body []byte
}

// Verb returns the HTTP verb to put on the wire.
func (r *Request) Verb() string {
	if r.MethodOverride != "" {
		return r.MethodOverride
	}
	return r.Method
}

// Engine performs the actual network exchange. Implementations must
// deliver response body bytes to the sink in arrival order and return
// the numeric status code once the exchange completes. Retry, redirect
// and TLS policy belong to the implementation, not to callers.
type Engine interface {
	// Do executes an HTTP exchange. The implementation must respect the context.
	Do(ctx context.Context, req *Request, sink ChunkSink) (int, error)
}

type netEngine struct {
	client *http.Client
}

// NewEngine wraps a standard *http.Client into an Engine.
// If nil is provided, a default http.Client is used.
func NewEngine(stdClient *http.Client) Engine {
	if stdClient == nil {
		stdClient = &http.Client{}
	}
	return &netEngine{client: stdClient}
}

// Do executes the request using the underlying standard http.Client.
func (e *netEngine) Do(ctx context.Context, req *Request, sink ChunkSink) (int, error) {
	stdReq, err := BuildStdRequest(ctx, req)
	if err != nil {
		return 0, err
	}

	stdResp, err := e.client.Do(stdReq)
	if err != nil {
		return 0, err
	}
	defer stdResp.Body.Close()

	if err := Drain(stdResp.Body, sink); err != nil {
		return 0, err
	}

	return stdResp.StatusCode, nil
}

// CloseIdleConnections releases pooled connections held by the
// underlying http.Client.
func (e *netEngine) CloseIdleConnections() {
	e.client.CloseIdleConnections()
}

// BuildStdRequest converts an engine Request into a *http.Request.
// A Content-Length header entry is mapped onto http.Request.ContentLength
// because net/http ignores it in the header map.
func BuildStdRequest(ctx context.Context, req *Request) (*http.Request, error) {
	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	stdReq, err := http.NewRequestWithContext(ctx, req.Verb(), req.URL, body)
	if err != nil {
		return nil, err
	}

	if req.UserAgent != "" {
		stdReq.Header.Set("User-Agent", req.UserAgent)
	}

	for _, h := range req.Headers {
		if strings.EqualFold(h.Name, "Content-Length") {
			n, err := strconv.ParseInt(strings.TrimSpace(h.Value), 10, 64)
			if err != nil {
				return nil, err
			}
			stdReq.ContentLength = n
			continue
		}
		stdReq.Header.Add(h.Name, h.Value)
	}

	return stdReq, nil
}

const drainBufSize = 32 * 1024

// Drain reads r to EOF, handing each read to the sink as one chunk.
func Drain(r io.Reader, sink ChunkSink) error {
	buf := make([]byte, drainBufSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if sinkErr := sink(buf[:n]); sinkErr != nil {
				return sinkErr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
