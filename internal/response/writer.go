package response

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Brownie44l1/http-origin/internal/headers"
)

// writerState tracks what's been written so far
type writerState int

const (
	stateStart writerState = iota
	stateStatusWritten
	stateHeadersWritten
	stateBodyWritten
)

type flusher interface {
	Flush() error
}

// Writer frames responses onto an io.Writer. It is reset by Write so one
// Writer serves every response on a connection.
type Writer struct {
	w        io.Writer
	state    writerState
	hadError bool
}

// NewWriter creates a new response writer
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:     w,
		state: stateStart,
	}
}

// Write frames a whole response and flushes it.
func (w *Writer) Write(res *Response) error {
	w.state = stateStart

	if err := w.WriteStatusLine(res.Status); err != nil {
		return err
	}
	if err := w.WriteHeaders(res.Headers, len(res.Body)); err != nil {
		return err
	}
	if err := w.WriteBody(res.Body); err != nil {
		return err
	}
	return w.Flush()
}

// WriteStatusLine writes the HTTP status line
func (w *Writer) WriteStatusLine(code StatusCode) error {
	if w.state != stateStart {
		return fmt.Errorf("status line already written")
	}

	if err := w.write("HTTP/1.1 " + code.Line() + "\r\n"); err != nil {
		return err
	}

	w.state = stateStatusWritten
	return nil
}

// WriteHeaders writes every header except Content-Length, then a
// Content-Length matching bodyLen when there is a body, then the blank line.
func (w *Writer) WriteHeaders(h *headers.Headers, bodyLen int) error {
	if w.state != stateStatusWritten {
		return fmt.Errorf("must write status line before headers")
	}

	var sb strings.Builder
	for name, value := range h.All() {
		if strings.EqualFold(name, headers.ContentLength) {
			continue
		}
		sb.WriteString(name)
		sb.WriteString(": ")
		sb.WriteString(value)
		sb.WriteString("\r\n")
	}
	if bodyLen > 0 {
		sb.WriteString(headers.ContentLength + ": " + strconv.Itoa(bodyLen) + "\r\n")
	}
	sb.WriteString("\r\n")

	if err := w.write(sb.String()); err != nil {
		return err
	}

	w.state = stateHeadersWritten
	return nil
}

// WriteBody writes the complete response body
func (w *Writer) WriteBody(data []byte) error {
	if w.state != stateHeadersWritten {
		return fmt.Errorf("must write headers before body")
	}

	if len(data) > 0 {
		if _, err := w.w.Write(data); err != nil {
			w.hadError = true
			return err
		}
	}

	w.state = stateBodyWritten
	return nil
}

// Flush pushes buffered bytes out when the underlying writer buffers.
func (w *Writer) Flush() error {
	f, ok := w.w.(flusher)
	if !ok {
		return nil
	}
	if err := f.Flush(); err != nil {
		w.hadError = true
		return err
	}
	return nil
}

func (w *Writer) HadError() bool {
	return w.hadError
}

func (w *Writer) write(s string) error {
	if _, err := io.WriteString(w.w, s); err != nil {
		w.hadError = true
		return err
	}
	return nil
}
