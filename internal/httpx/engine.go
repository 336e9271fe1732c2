package httpx

import (
	"context"
	"net/http"

	"github.com/scobi84/librequests/transport"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// DefaultEngine is the engine used when a caller injects none. It rides
// on http.DefaultClient, so timeout, redirect and TLS policy are the
// standard library defaults.
type DefaultEngine struct {
	client httpDoer
}

func NewDefaultEngine() *DefaultEngine {
	return &DefaultEngine{
		client: http.DefaultClient,
	}
}

// NewEngineWithClient builds an engine on a caller-configured http.Client.
func NewEngineWithClient(client *http.Client) *DefaultEngine {
	return &DefaultEngine{client: client}
}

// CloseIdleConnections releases pooled connections when the underlying
// doer supports it.
func (e *DefaultEngine) CloseIdleConnections() {
	if c, ok := e.client.(interface{ CloseIdleConnections() }); ok {
		c.CloseIdleConnections()
	}
}

func (e *DefaultEngine) Do(ctx context.Context, r *transport.Request, sink transport.ChunkSink) (int, error) {
	req, err := transport.BuildStdRequest(ctx, r)
	if err != nil {
		return 0, err
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if err := transport.Drain(resp.Body, sink); err != nil {
		return 0, err
	}

	return resp.StatusCode, nil
}
