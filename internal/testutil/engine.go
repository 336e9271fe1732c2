package testutil

import (
	"context"

	"github.com/scobi84/librequests/transport"
)

type FakeEngine struct {
	DoFunc func(ctx context.Context, req *transport.Request, sink transport.ChunkSink) (int, error)
	Calls  int
}

func (f *FakeEngine) Do(ctx context.Context, req *transport.Request, sink transport.ChunkSink) (int, error) {
	f.Calls++
	return f.DoFunc(ctx, req, sink)
}

// ChunkEngine builds a FakeEngine that delivers the given chunks in
// order and reports the given status.
func ChunkEngine(status int, chunks ...string) *FakeEngine {
	return &FakeEngine{
		DoFunc: func(ctx context.Context, req *transport.Request, sink transport.ChunkSink) (int, error) {
			for _, c := range chunks {
				if err := sink([]byte(c)); err != nil {
					return 0, err
				}
			}
			return status, nil
		},
	}
}
