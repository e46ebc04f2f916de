package response

import "strconv"

// StatusCode represents HTTP status codes
type StatusCode int

const (
	StatusOK       StatusCode = 200
	StatusCreated  StatusCode = 201
	StatusNotFound StatusCode = 404
)

// statusText maps status codes to reason phrases
var statusText = map[StatusCode]string{
	StatusOK:       "OK",
	StatusCreated:  "Created",
	StatusNotFound: "Not Found",
}

// Phrase returns the reason phrase for a status code
func (code StatusCode) Phrase() string {
	if text, ok := statusText[code]; ok {
		return text
	}
	return "Unknown"
}

// Line returns "<code> <phrase>", the part of the status line after the version.
func (code StatusCode) Line() string {
	return strconv.Itoa(int(code)) + " " + code.Phrase()
}

func (code StatusCode) String() string {
	return code.Line()
}

// IsSuccess returns true for 2xx status codes
func (code StatusCode) IsSuccess() bool {
	return code >= 200 && code < 300
}

// IsClientError returns true for 4xx status codes
func (code StatusCode) IsClientError() bool {
	return code >= 400 && code < 500
}

// IsServerError returns true for 5xx status codes
func (code StatusCode) IsServerError() bool {
	return code >= 500 && code < 600
}
