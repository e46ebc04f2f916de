package server

import (
	"fmt"
	"strconv"

	"github.com/Brownie44l1/http-origin/internal/encoding"
	"github.com/Brownie44l1/http-origin/internal/headers"
	"github.com/Brownie44l1/http-origin/internal/request"
	"github.com/Brownie44l1/http-origin/internal/response"
)

// ContentEncoding applies the first coding from the request's Accept-Encoding
// that the registry recognizes. Without one the response is left untouched.
// Empty bodies are encoded too.
func ContentEncoding(req *request.Request, res *response.Response) error {
	encs := encoding.Negotiate(req.Headers.AcceptEncoding())
	if len(encs) == 0 {
		return nil
	}

	enc := encs[0]
	body, err := enc.Encode(res.Body)
	if err != nil {
		return fmt.Errorf("encode %s: %w", enc.Name(), err)
	}

	res.Body = body
	res.Headers.Set(headers.ContentEncoding, enc.Name())
	res.Headers.Set(headers.ContentLength, strconv.Itoa(len(body)))
	return nil
}
