package request

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Brownie44l1/http-origin/internal/headers"
)

var (
	// ErrNoRequest means the client sent nothing (or a bare CRLF) where a
	// request line was expected. The connection should be closed quietly.
	ErrNoRequest = errors.New("no request")

	// ErrConnectionClosed means the peer hung up partway through a header
	// line.
	ErrConnectionClosed = fmt.Errorf("connection closed mid-request: %w", io.ErrUnexpectedEOF)
)

// Parser reads successive requests from one connection.
type Parser struct {
	br *bufio.Reader

	// MaxBodyBytes rejects larger Content-Length values. 0 means unlimited.
	MaxBodyBytes int64
}

func NewParser(r io.Reader) *Parser {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Parser{br: br}
}

// RequestFromReader parses a single request from reader.
func RequestFromReader(reader io.Reader) (*Request, error) {
	return NewParser(reader).ReadRequest()
}

// ReadRequest reads one request: request line, header block and, for POST,
// exactly Content-Length body bytes.
func (p *Parser) ReadRequest() (*Request, error) {
	line, err := p.readLine()
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read request line: %w", err)
	}
	if line == "" {
		return nil, ErrNoRequest
	}

	method, path, err := parseRequestLine(line)
	if err != nil {
		return nil, err
	}

	h, err := p.readHeaders()
	if err != nil {
		return nil, err
	}

	req := &Request{
		Method:  method,
		Path:    path,
		Headers: h,
	}

	if method == MethodPost {
		if req.Body, err = p.readBody(h.ContentLength()); err != nil {
			return nil, err
		}
	}

	return req, nil
}

func (p *Parser) readHeaders() (*headers.Headers, error) {
	h := headers.NewHeaders()
	for {
		line, err := p.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				// EOF before any byte of a line ends the block.
				if line == "" {
					return h, nil
				}
				return nil, ErrConnectionClosed
			}
			return nil, fmt.Errorf("read header: %w", err)
		}

		if line == "" {
			return h, nil
		}

		if err := h.ParseLine(line); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedHeader, err)
		}
	}
}

func (p *Parser) readBody(n int64) ([]byte, error) {
	if p.MaxBodyBytes > 0 && n > p.MaxBodyBytes {
		return nil, fmt.Errorf("%w: %d > %d", ErrBodyTooLarge, n, p.MaxBodyBytes)
	}

	body := make([]byte, n)
	if _, err := io.ReadFull(p.br, body); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

// readLine reads up to a CRLF, which is not included. A CR that is not
// followed by LF stays in the line, and so does a bare LF. At EOF the partial
// line is returned together with io.EOF.
func (p *Parser) readLine() (string, error) {
	var sb strings.Builder
	cr := false

	for {
		b, err := p.br.ReadByte()
		if err != nil {
			if cr {
				sb.WriteByte('\r')
			}
			return sb.String(), err
		}

		switch {
		case b == '\n' && cr:
			return sb.String(), nil
		case b == '\r':
			if cr {
				sb.WriteByte('\r')
			}
			cr = true
		default:
			if cr {
				sb.WriteByte('\r')
				cr = false
			}
			sb.WriteByte(b)
		}
	}
}
