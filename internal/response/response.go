package response

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/Brownie44l1/http-origin/internal/headers"
)

const (
	ContentTypeText  = "text/plain"
	ContentTypeOctet = "application/octet-stream"
)

// Response is built by a handler and may be rewritten by middleware before
// it is framed. An empty Body counts as no body.
type Response struct {
	Status  StatusCode
	Headers *headers.Headers
	Body    []byte
}

// New returns a response with no headers and no body.
func New(code StatusCode) *Response {
	return &Response{
		Status:  code,
		Headers: headers.NewHeaders(),
	}
}

// Bytes returns a response with arbitrary byte content
func Bytes(code StatusCode, contentType string, data []byte) *Response {
	res := New(code)
	if contentType != "" {
		res.Headers.Set(headers.ContentType, contentType)
	}
	res.Body = data
	return res
}

// PlainText returns a 200 text/plain response
func PlainText(content string) *Response {
	return Bytes(StatusOK, ContentTypeText, []byte(content))
}

// File returns a 200 octet-stream response with the file's contents. A path
// that is missing, a directory, or not readable gets a 404. Other read
// failures are returned.
func File(path string) (*Response, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return New(StatusNotFound), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return New(StatusNotFound), nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	return Bytes(StatusOK, ContentTypeOctet, data), nil
}

func (r *Response) HasBody() bool {
	return len(r.Body) > 0
}
