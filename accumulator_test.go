package librequests

import (
	"testing"

	"github.com/scobi84/librequests/reqerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccumulator_AppendsInOrder(t *testing.T) {
	req := &Request{url: "https://example.com"}
	acc := &accumulator{req: req}

	for _, chunk := range []string{"ab", "", "cd", "e"} {
		require.NoError(t, acc.sink([]byte(chunk)))
	}

	assert.Equal(t, "abcde", req.Text())
	assert.Equal(t, int64(5), req.Size())
}

func TestAccumulator_NoChunks(t *testing.T) {
	req := &Request{url: "https://example.com"}

	assert.Equal(t, "", req.Text())
	assert.NotNil(t, req.Body())
	assert.Zero(t, req.Size())
}

func TestAccumulator_EmptyChunkIsNoOp(t *testing.T) {
	req := &Request{url: "https://example.com"}
	acc := &accumulator{req: req}

	require.NoError(t, acc.sink([]byte{}))

	assert.Equal(t, "", req.Text())
	assert.Zero(t, req.Size())
}

func TestAccumulator_LimitAbortsAndDiscards(t *testing.T) {
	req := &Request{url: "https://example.com"}
	acc := &accumulator{req: req, limit: 4}

	require.NoError(t, acc.sink([]byte("abcd")))

	err := acc.sink([]byte("e"))
	assert.ErrorIs(t, err, reqerr.ErrBodyTooLarge)
	assert.Equal(t, "", req.Text())
	assert.Zero(t, req.Size())
}

func TestAccumulator_UnderLimit(t *testing.T) {
	req := &Request{url: "https://example.com"}
	acc := &accumulator{req: req, limit: 10}

	require.NoError(t, acc.sink([]byte("abcd")))
	require.NoError(t, acc.sink([]byte("efgh")))

	assert.Equal(t, "abcdefgh", req.Text())
	assert.Equal(t, int64(8), req.Size())
}
