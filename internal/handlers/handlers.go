// Package handlers wires the server's built-in endpoints.
package handlers

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Brownie44l1/http-origin/internal/response"
	"github.com/Brownie44l1/http-origin/internal/router"
)

// Files serves /files/ reads and writes under Root.
//
// Names are joined to Root as given; ".." segments are not rejected.
type Files struct {
	Root string
}

// New returns the routing table, in match order:
//
//	GET  /              200, empty
//	GET  /user-agent    200, the User-Agent header
//	GET  /echo/*rest    200, rest
//	GET  /files/+name   200 with the file, or 404
//	POST /files/+name   201 after writing the body to the file
//
// Anything else falls through to the router's 404.
func New(root string) *router.Router {
	files := &Files{Root: root}

	r := router.New()
	r.GET("/", Root)
	r.GET("/user-agent", UserAgent)
	r.GET("/echo/*rest", Echo)
	r.GET("/files/+name", files.Get)
	r.POST("/files/+name", files.Post)
	return r
}

func Root(ctx *router.Context) (*response.Response, error) {
	return response.New(response.StatusOK), nil
}

func UserAgent(ctx *router.Context) (*response.Response, error) {
	return response.PlainText(ctx.Request.Headers.UserAgent()), nil
}

func Echo(ctx *router.Context) (*response.Response, error) {
	return response.PlainText(ctx.Param("rest")), nil
}

func (f *Files) Get(ctx *router.Context) (*response.Response, error) {
	return response.File(f.path(ctx.Param("name")))
}

// Post creates or truncates the file and writes the body. The write is not
// atomic.
func (f *Files) Post(ctx *router.Context) (*response.Response, error) {
	if err := os.WriteFile(f.path(ctx.Param("name")), ctx.Body(), 0o644); err != nil {
		return nil, fmt.Errorf("write file: %w", err)
	}
	return response.New(response.StatusCreated), nil
}

// path joins name under Root. ".." segments are not rejected, so a name
// can resolve outside Root.
func (f *Files) path(name string) string {
	return filepath.Join(f.Root, name)
}
