package router

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brownie44l1/http-origin/internal/headers"
	"github.com/Brownie44l1/http-origin/internal/request"
	"github.com/Brownie44l1/http-origin/internal/response"
)

func newRequest(method request.Method, path string) *request.Request {
	return &request.Request{Method: method, Path: path, Headers: headers.NewHeaders()}
}

func named(name string) Handler {
	return func(ctx *Context) (*response.Response, error) {
		return response.PlainText(name + ":" + ctx.Param("rest")), nil
	}
}

func TestMatchExact(t *testing.T) {
	r := New()
	r.GET("/", named("root"))
	r.GET("/user-agent", named("ua"))

	route, _ := r.Match(request.MethodGet, "/")
	require.NotNil(t, route)
	assert.Equal(t, "/", route.Pattern)

	route, _ = r.Match(request.MethodGet, "/user-agent")
	require.NotNil(t, route)
	assert.Equal(t, "/user-agent", route.Pattern)

	route, _ = r.Match(request.MethodGet, "/user-agent/x")
	assert.Nil(t, route)

	// Test: Method must match
	route, _ = r.Match(request.MethodPost, "/")
	assert.Nil(t, route)
}

func TestMatchOptionalWildcard(t *testing.T) {
	r := New()
	r.GET("/echo/*rest", named("echo"))

	_, params := r.Match(request.MethodGet, "/echo/abc")
	assert.Equal(t, "abc", params["rest"])

	_, params = r.Match(request.MethodGet, "/echo/a/b/c")
	assert.Equal(t, "a/b/c", params["rest"])

	route, params := r.Match(request.MethodGet, "/echo/")
	require.NotNil(t, route)
	assert.Equal(t, "", params["rest"])

	route, _ = r.Match(request.MethodGet, "/echo")
	assert.Nil(t, route)
}

func TestMatchRequiredWildcard(t *testing.T) {
	r := New()
	r.GET("/files/+name", named("files"))

	_, params := r.Match(request.MethodGet, "/files/hello.txt")
	assert.Equal(t, "hello.txt", params["name"])

	_, params = r.Match(request.MethodGet, "/files/../secret")
	assert.Equal(t, "../secret", params["name"])

	route, _ := r.Match(request.MethodGet, "/files/")
	assert.Nil(t, route)
}

func TestFirstMatchWins(t *testing.T) {
	r := New()
	r.GET("/echo/special", named("special"))
	r.GET("/echo/*rest", named("echo"))

	res, err := r.Route(newRequest(request.MethodGet, "/echo/special"))
	require.NoError(t, err)
	assert.Equal(t, "special:", string(res.Body))

	res, err = r.Route(newRequest(request.MethodGet, "/echo/other"))
	require.NoError(t, err)
	assert.Equal(t, "echo:other", string(res.Body))
}

func TestRouteMiss(t *testing.T) {
	r := New()
	r.GET("/", named("root"))

	res, err := r.Route(newRequest(request.MethodGet, "/nope"))
	require.NoError(t, err)
	assert.Equal(t, response.StatusNotFound, res.Status)
	assert.False(t, res.HasBody())
}

func TestRouteHandlerError(t *testing.T) {
	boom := errors.New("disk on fire")
	r := New()
	r.POST("/files/+name", func(ctx *Context) (*response.Response, error) {
		return nil, boom
	})

	_, err := r.Route(newRequest(request.MethodPost, "/files/x"))
	assert.ErrorIs(t, err, boom)
}

func TestContext(t *testing.T) {
	req := newRequest(request.MethodPost, "/files/a")
	req.Headers.Set("User-Agent", "foo/1")
	req.Body = []byte("data")

	ctx := NewContext(req, nil)
	assert.Equal(t, request.MethodPost, ctx.Method())
	assert.Equal(t, "/files/a", ctx.Path())
	assert.Equal(t, "foo/1", ctx.Header("user-agent"))
	assert.Equal(t, "", ctx.Header("missing"))
	assert.Equal(t, "", ctx.Param("missing"))
	assert.Equal(t, []byte("data"), ctx.Body())
}
