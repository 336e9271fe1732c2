package librequests

import (
	"fmt"

	"github.com/scobi84/librequests/reqerr"
)

// accumulator assembles the response body of one exchange. The engine
// hands it chunks in arrival order; each is appended after existing
// content and counted. An empty chunk is a valid no-op delivery.
type accumulator struct {
	req   *Request
	limit int64
}

func (a *accumulator) sink(chunk []byte) error {
	if a.limit > 0 && a.req.size+int64(len(chunk)) > a.limit {
		a.discard()
		return reqerr.New().
			WithKind(reqerr.ErrBodyTooLarge).
			WithMessage(fmt.Sprintf("response exceeds %d bytes", a.limit))
	}
	a.req.body.Write(chunk)
	a.req.size += int64(len(chunk))
	return nil
}

// discard drops everything accumulated so far, leaving the context as
// if no chunks had arrived.
func (a *accumulator) discard() {
	a.req.body.Reset()
	a.req.size = 0
}
