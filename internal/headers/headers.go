package headers

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"
	"unicode"
)

// Well-known header names.
const (
	AcceptEncoding  = "Accept-Encoding"
	Connection      = "Connection"
	ContentEncoding = "Content-Encoding"
	ContentLength   = "Content-Length"
	ContentType     = "Content-Type"
	UserAgent       = "User-Agent"
)

var ErrMissingColon = errors.New("malformed header: no colon")

type entry struct {
	name  string
	value string
}

// Headers is an ordered, case-insensitive header collection. Names keep the
// casing they were first stored with; a name appears at most once and the
// last write wins.
type Headers struct {
	entries []entry
	index   map[string]int // lowercased name -> position in entries
}

func NewHeaders() *Headers {
	return &Headers{
		index: make(map[string]int),
	}
}

// Get returns the value for a header
func (h *Headers) Get(key string) (string, bool) {
	i, ok := h.index[strings.ToLower(key)]
	if !ok {
		return "", false
	}
	return h.entries[i].value, true
}

// Has reports whether the header is present, even with an empty value
func (h *Headers) Has(key string) bool {
	_, ok := h.index[strings.ToLower(key)]
	return ok
}

// Set stores a value, replacing any previous one
func (h *Headers) Set(key, value string) {
	lower := strings.ToLower(key)
	if i, ok := h.index[lower]; ok {
		h.entries[i].value = value
		return
	}
	h.index[lower] = len(h.entries)
	h.entries = append(h.entries, entry{name: key, value: value})
}

// Del removes a header
func (h *Headers) Del(key string) {
	lower := strings.ToLower(key)
	i, ok := h.index[lower]
	if !ok {
		return
	}
	h.entries = append(h.entries[:i], h.entries[i+1:]...)
	delete(h.index, lower)
	for j := i; j < len(h.entries); j++ {
		h.index[strings.ToLower(h.entries[j].name)] = j
	}
}

func (h *Headers) Len() int {
	return len(h.entries)
}

// All yields every header in insertion order with its stored casing.
func (h *Headers) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, e := range h.entries {
			if !yield(e.name, e.value) {
				return
			}
		}
	}
}

// Clone returns a deep copy.
func (h *Headers) Clone() *Headers {
	c := &Headers{
		entries: make([]entry, len(h.entries)),
		index:   make(map[string]int, len(h.index)),
	}
	copy(c.entries, h.entries)
	for k, v := range h.index {
		c.index[k] = v
	}
	return c
}

// ParseLine parses a single "name: value" header line (without CRLF) and
// stores it. The line is split on the first colon; only leading whitespace
// is stripped from the value.
func (h *Headers) ParseLine(line string) error {
	name, value, ok := strings.Cut(line, ":")
	if !ok {
		return fmt.Errorf("%w: %q", ErrMissingColon, line)
	}
	h.Set(name, strings.TrimLeftFunc(value, unicode.IsSpace))
	return nil
}

// ContentLength returns the declared body length. A missing, unparseable or
// negative value counts as 0.
func (h *Headers) ContentLength() int64 {
	raw, ok := h.Get(ContentLength)
	if !ok {
		return 0
	}
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func (h *Headers) UserAgent() string {
	v, _ := h.Get(UserAgent)
	return v
}

func (h *Headers) Connection() string {
	v, _ := h.Get(Connection)
	return v
}

// AcceptEncoding splits the Accept-Encoding value into its coding tokens,
// in the order the client listed them.
func (h *Headers) AcceptEncoding() []string {
	raw, ok := h.Get(AcceptEncoding)
	if !ok {
		return nil
	}

	var tokens []string
	for _, part := range strings.Split(raw, ",") {
		if token := strings.TrimSpace(part); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
