package request

import (
	"errors"
	"fmt"
	"strings"
)

const version = "HTTP/1.1"

var (
	// ErrParse is the root of every malformed-message error.
	ErrParse = errors.New("parse error")

	ErrMalformedRequestLine = fmt.Errorf("%w: malformed request line", ErrParse)
	ErrInvalidMethod        = fmt.Errorf("%w: invalid HTTP method", ErrParse)
	ErrInvalidPath          = fmt.Errorf("%w: invalid request path", ErrParse)
	ErrMalformedHeader      = fmt.Errorf("%w: malformed header", ErrParse)
	ErrBodyTooLarge         = fmt.Errorf("%w: body too large", ErrParse)

	ErrUnsupportedVersion = errors.New("unsupported HTTP version")
)

// parseRequestLine parses: METHOD PATH VERSION
// Tokens are whitespace separated and checked in order, so a bad method is
// reported before a bad version.
func parseRequestLine(line string) (Method, string, error) {
	parts := strings.Fields(line)

	if len(parts) < 1 {
		return "", "", ErrMalformedRequestLine
	}
	method, err := ParseMethod(parts[0])
	if err != nil {
		return "", "", fmt.Errorf("%w: %q", err, parts[0])
	}

	if len(parts) < 2 {
		return "", "", fmt.Errorf("%w: missing path", ErrMalformedRequestLine)
	}
	path := parts[1]
	if !strings.HasPrefix(path, "/") {
		return "", "", fmt.Errorf("%w: %q does not start with a slash", ErrInvalidPath, path)
	}

	if len(parts) < 3 {
		return "", "", fmt.Errorf("%w: missing version", ErrMalformedRequestLine)
	}
	if parts[2] != version {
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedVersion, parts[2])
	}

	if len(parts) > 3 {
		return "", "", fmt.Errorf("%w: content after version: %q", ErrMalformedRequestLine, parts[3])
	}

	return method, path, nil
}
