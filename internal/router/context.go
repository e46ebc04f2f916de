package router

import (
	"github.com/Brownie44l1/http-origin/internal/request"
)

// Context carries a request and the path parameters its route captured.
type Context struct {
	Request *request.Request
	Params  map[string]string
}

// NewContext creates a new context
func NewContext(req *request.Request, params map[string]string) *Context {
	if params == nil {
		params = make(map[string]string)
	}
	return &Context{
		Request: req,
		Params:  params,
	}
}

// Method returns the HTTP method
func (c *Context) Method() request.Method {
	return c.Request.Method
}

// Path returns the request path
func (c *Context) Path() string {
	return c.Request.Path
}

// Header gets a request header value, "" when absent
func (c *Context) Header(key string) string {
	val, _ := c.Request.Headers.Get(key)
	return val
}

// Param gets a path parameter by name
func (c *Context) Param(name string) string {
	return c.Params[name]
}

// Body returns the request body as bytes
func (c *Context) Body() []byte {
	return c.Request.Body
}
