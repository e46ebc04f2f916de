package request

import (
	"strings"

	"github.com/Brownie44l1/http-origin/internal/headers"
)

// Method is one of the request methods the server understands.
type Method string

const (
	MethodGet  Method = "GET"
	MethodPost Method = "POST"
)

// ParseMethod validates a method token. Matching is exact: "get" is not GET.
func ParseMethod(token string) (Method, error) {
	switch Method(token) {
	case MethodGet, MethodPost:
		return Method(token), nil
	default:
		return "", ErrInvalidMethod
	}
}

func (m Method) String() string {
	return string(m)
}

// Request is a parsed HTTP/1.1 request. Body is non-nil exactly when the
// method is POST, and then holds Content-Length bytes.
type Request struct {
	Method  Method
	Path    string
	Headers *headers.Headers
	Body    []byte
}

func (r *Request) HasBody() bool {
	return r.Body != nil
}

// WantsClose reports whether the client sent "Connection: close".
func (r *Request) WantsClose() bool {
	return strings.EqualFold(strings.TrimSpace(r.Headers.Connection()), "close")
}

// WantsKeepAlive is the HTTP/1.1 default unless the client asked to close.
func (r *Request) WantsKeepAlive() bool {
	return !r.WantsClose()
}
