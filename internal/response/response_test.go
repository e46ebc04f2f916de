package response

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brownie44l1/http-origin/internal/headers"
)

func TestStatusLine(t *testing.T) {
	assert.Equal(t, "200 OK", StatusOK.Line())
	assert.Equal(t, "201 Created", StatusCreated.Line())
	assert.Equal(t, "404 Not Found", StatusNotFound.Line())
	assert.Equal(t, "Unknown", StatusCode(299).Phrase())

	assert.True(t, StatusCreated.IsSuccess())
	assert.True(t, StatusNotFound.IsClientError())
	assert.False(t, StatusNotFound.IsServerError())
}

func TestWriterStatusLine(t *testing.T) {
	// Test: 200 OK
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	err := w.WriteStatusLine(StatusOK)
	require.NoError(t, err)
	assert.Equal(t, "HTTP/1.1 200 OK\r\n", buf.String())

	// Test: 404 Not Found
	buf = &bytes.Buffer{}
	w = NewWriter(buf)
	err = w.WriteStatusLine(StatusNotFound)
	require.NoError(t, err)
	assert.Equal(t, "HTTP/1.1 404 Not Found\r\n", buf.String())
}

func TestWriteEmptyResponse(t *testing.T) {
	buf := &bytes.Buffer{}
	err := NewWriter(buf).Write(New(StatusOK))

	require.NoError(t, err)
	assert.Equal(t, "HTTP/1.1 200 OK\r\n\r\n", buf.String())
}

func TestWritePlainText(t *testing.T) {
	buf := &bytes.Buffer{}
	err := NewWriter(buf).Write(PlainText("abc"))

	require.NoError(t, err)
	assert.Equal(t, "HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\nContent-Length: 3\r\n\r\nabc", buf.String())
}

func TestWriteReplacesContentLength(t *testing.T) {
	res := PlainText("hello")
	res.Headers.Set("content-length", "999")
	res.Headers.Set("X-After", "1")

	buf := &bytes.Buffer{}
	require.NoError(t, NewWriter(buf).Write(res))

	got := buf.String()
	assert.NotContains(t, got, "999")
	assert.NotContains(t, got, "content-length")
	assert.Equal(t, "HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\nX-After: 1\r\nContent-Length: 5\r\n\r\nhello", got)

	// Test: A stale Content-Length with no body is dropped entirely
	res = New(StatusNotFound)
	res.Headers.Set("Content-Length", "12")
	buf.Reset()
	require.NoError(t, NewWriter(buf).Write(res))
	assert.Equal(t, "HTTP/1.1 404 Not Found\r\n\r\n", buf.String())
}

func TestWriterPreservesHeaderCasing(t *testing.T) {
	res := New(StatusOK)
	res.Headers.Set("x-lower", "a")
	res.Headers.Set("X-UPPER", "b")

	buf := &bytes.Buffer{}
	require.NoError(t, NewWriter(buf).Write(res))

	assert.Contains(t, buf.String(), "x-lower: a\r\n")
	assert.Contains(t, buf.String(), "X-UPPER: b\r\n")
}

func TestWriterFlushes(t *testing.T) {
	buf := &bytes.Buffer{}
	bw := bufio.NewWriter(buf)

	require.NoError(t, NewWriter(bw).Write(PlainText("x")))
	assert.Equal(t, 0, bw.Buffered())
	assert.Contains(t, buf.String(), "\r\n\r\nx")
}

func TestWriterReuse(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)

	require.NoError(t, w.Write(New(StatusOK)))
	require.NoError(t, w.Write(New(StatusCreated)))
	assert.Equal(t, "HTTP/1.1 200 OK\r\n\r\nHTTP/1.1 201 Created\r\n\r\n", buf.String())
}

func TestWriterStateValidation(t *testing.T) {
	// Test: Cannot write headers before status
	w := NewWriter(&bytes.Buffer{})
	err := w.WriteHeaders(headers.NewHeaders(), 0)
	assert.Error(t, err)

	// Test: Cannot write body before headers
	w = NewWriter(&bytes.Buffer{})
	require.NoError(t, w.WriteStatusLine(StatusOK))
	err = w.WriteBody([]byte("test"))
	assert.Error(t, err)

	// Test: Cannot write status twice
	err = w.WriteStatusLine(StatusOK)
	assert.Error(t, err)
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestWriterRecordsErrors(t *testing.T) {
	w := NewWriter(failingWriter{})
	err := w.Write(PlainText("x"))

	require.Error(t, err)
	assert.True(t, w.HadError())
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hello.txt"), []byte("world"), 0o644))

	res, err := File(filepath.Join(dir, "hello.txt"))
	require.NoError(t, err)
	assert.Equal(t, StatusOK, res.Status)
	ct, _ := res.Headers.Get("content-type")
	assert.Equal(t, ContentTypeOctet, ct)
	assert.Equal(t, "world", string(res.Body))

	res, err = File(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Equal(t, StatusNotFound, res.Status)
	assert.False(t, res.HasBody())

	// Test: A directory is not found either
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	res, err = File(filepath.Join(dir, "sub"))
	require.NoError(t, err)
	assert.Equal(t, StatusNotFound, res.Status)
	assert.False(t, res.HasBody())
}

func TestFileNotReadable(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores file permissions")
	}
	path := filepath.Join(t.TempDir(), "secret")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o000))

	res, err := File(path)
	require.NoError(t, err)
	assert.Equal(t, StatusNotFound, res.Status)
}
