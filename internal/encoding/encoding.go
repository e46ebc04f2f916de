// Package encoding holds the content codings the server can apply to a
// response body.
package encoding

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Encoding transforms a whole response body.
type Encoding interface {
	Name() string
	Encode(input []byte) ([]byte, error)
}

var registry = map[string]Encoding{
	GzipName: Gzip{},
}

// Lookup returns the registered encoding for a coding token.
func Lookup(name string) (Encoding, bool) {
	enc, ok := registry[strings.ToLower(name)]
	return enc, ok
}

// Negotiate maps Accept-Encoding tokens to registered encodings, keeping the
// client's order and dropping tokens that are not recognized.
func Negotiate(tokens []string) []Encoding {
	var out []Encoding
	for _, token := range tokens {
		if enc, ok := Lookup(token); ok {
			out = append(out, enc)
		}
	}
	return out
}

const GzipName = "gzip"

// Gzip produces an RFC 1952 gzip member over deflate.
type Gzip struct{}

func (Gzip) Name() string {
	return GzipName
}

func (Gzip) Encode(input []byte) ([]byte, error) {
	var buf bytes.Buffer

	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(input); err != nil {
		return nil, fmt.Errorf("gzip write: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("gzip close: %w", err)
	}

	return buf.Bytes(), nil
}
