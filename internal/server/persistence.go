package server

import (
	"github.com/Brownie44l1/http-origin/internal/request"
	"github.com/Brownie44l1/http-origin/internal/response"
)

// shouldCloseConnection determines if connection should be closed after this request
func shouldCloseConnection(req *request.Request, w *response.Writer) bool {
	// If response had errors, close the connection
	if w.HadError() {
		return true
	}

	// HTTP/1.1 keeps alive by default unless "Connection: close"
	return req.WantsClose()
}
