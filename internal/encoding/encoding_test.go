package encoding

import (
	"bytes"
	stdgzip "compress/gzip"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	enc, ok := Lookup("gzip")
	require.True(t, ok)
	assert.Equal(t, "gzip", enc.Name())

	_, ok = Lookup("GZIP")
	assert.True(t, ok)

	_, ok = Lookup("br")
	assert.False(t, ok)

	_, ok = Lookup("")
	assert.False(t, ok)
}

func TestNegotiate(t *testing.T) {
	// Test: Unknown tokens are dropped, order is kept
	encs := Negotiate([]string{"invalid-1", "gzip", "invalid-2"})
	require.Len(t, encs, 1)
	assert.Equal(t, "gzip", encs[0].Name())

	// Test: Nothing recognized
	assert.Empty(t, Negotiate([]string{"br", "deflate"}))
	assert.Empty(t, Negotiate(nil))
}

func TestGzipRoundTrip(t *testing.T) {
	for _, input := range [][]byte{
		[]byte("hi"),
		{},
		bytes.Repeat([]byte("abcdefgh"), 4096),
	} {
		encoded, err := Gzip{}.Encode(input)
		require.NoError(t, err)

		// RFC 1952 magic
		require.GreaterOrEqual(t, len(encoded), 2)
		assert.Equal(t, []byte{0x1f, 0x8b}, encoded[:2])

		zr, err := stdgzip.NewReader(bytes.NewReader(encoded))
		require.NoError(t, err)
		decoded, err := io.ReadAll(zr)
		require.NoError(t, err)
		assert.Equal(t, len(input), len(decoded))
		assert.True(t, bytes.Equal(input, decoded))
	}
}
