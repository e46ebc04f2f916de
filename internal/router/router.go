package router

import (
	"strings"

	"github.com/Brownie44l1/http-origin/internal/request"
	"github.com/Brownie44l1/http-origin/internal/response"
)

// Handler produces the response for a matched route. A returned error is a
// transport-level failure and ends the connection.
type Handler func(ctx *Context) (*response.Response, error)

// Route represents a single route
type Route struct {
	Method  request.Method
	Pattern string
	Handler Handler

	prefix   string // literal part of the pattern
	param    string // name of the trailing wildcard, "" for exact routes
	required bool   // wildcard must match at least one byte
}

// Router matches requests against routes in registration order; the first
// match wins.
//
// A pattern is either an exact path ("/user-agent") or a literal prefix
// followed by a trailing wildcard that captures the rest of the path:
// "*name" matches any remainder including an empty one, "+name" needs at
// least one byte. Wildcards are greedy and may span slashes.
type Router struct {
	routes []*Route
}

// New creates a new router
func New() *Router {
	return &Router{
		routes: make([]*Route, 0),
	}
}

// Handle registers a new route
func (r *Router) Handle(method request.Method, pattern string, handler Handler) {
	route := &Route{
		Method:  method,
		Pattern: pattern,
		Handler: handler,
		prefix:  pattern,
	}

	if i := strings.LastIndexByte(pattern, '/'); i >= 0 && i+1 < len(pattern) {
		switch pattern[i+1] {
		case '*', '+':
			route.prefix = pattern[:i+1]
			route.param = pattern[i+2:]
			route.required = pattern[i+1] == '+'
		}
	}

	r.routes = append(r.routes, route)
}

// GET is a shortcut for Handle(request.MethodGet, ...)
func (r *Router) GET(pattern string, handler Handler) {
	r.Handle(request.MethodGet, pattern, handler)
}

// POST is a shortcut for Handle(request.MethodPost, ...)
func (r *Router) POST(pattern string, handler Handler) {
	r.Handle(request.MethodPost, pattern, handler)
}

// Match finds the first route that matches the given method and path
func (r *Router) Match(method request.Method, path string) (*Route, map[string]string) {
	for _, route := range r.routes {
		if route.Method != method {
			continue
		}
		if params, ok := route.match(path); ok {
			return route, params
		}
	}
	return nil, nil
}

// Route dispatches a request. A path no route claims gets a 404.
func (r *Router) Route(req *request.Request) (*response.Response, error) {
	route, params := r.Match(req.Method, req.Path)
	if route == nil {
		return response.New(response.StatusNotFound), nil
	}
	return route.Handler(NewContext(req, params))
}

func (route *Route) match(path string) (map[string]string, bool) {
	if route.param == "" {
		return nil, path == route.prefix
	}

	rest, ok := strings.CutPrefix(path, route.prefix)
	if !ok || (route.required && rest == "") {
		return nil, false
	}
	return map[string]string{route.param: rest}, true
}
