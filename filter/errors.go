package filter

import (
	"fmt"
	"io"
	"net/http"
	"strings"
)

// RuleError is the "rule rejection" error kind from the failure
// contract: a Map determined the request cannot proceed and carries a
// fully-prepared Response that the handler boundary should return
// verbatim, instead of treating the error as fatal or closing the
// connection.
type RuleError struct {
	Response *http.Response
	reason   string
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("rule rejected request: %s", e.reason)
}

// NoMatch builds the canonical rule-rejection error: a 404 response with
// body "No match: <reason>\n", as required for every built-in map
// failure (set_port, set_host, set_scheme, strip_path, resolve_uri, ...).
func NoMatch(reason string) error {
	body := "No match: " + reason + "\n"
	return &RuleError{
		reason: reason,
		Response: &http.Response{
			StatusCode: http.StatusNotFound,
			Status:     "404 Not Found",
			Proto:      "HTTP/1.1",
			ProtoMajor: 1,
			ProtoMinor: 1,
			Header:     http.Header{},
			Body:       io.NopCloser(strings.NewReader(body)),
		},
	}
}

// NoMatchingRoute is the canonical response synthesized when no route in
// the table matches the inbound request at all.
func NoMatchingRoute() *http.Response {
	const body = "No match: no matching route\n"
	return &http.Response{
		StatusCode: http.StatusNotFound,
		Status:     "404 Not Found",
		Proto:      "HTTP/1.1",
		ProtoMajor: 1,
		ProtoMinor: 1,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

// BadGateway is the canonical response synthesized when the upstream
// call fails with a connect-refused (or equivalent connect-phase)
// transport error.
func BadGateway() *http.Response {
	const body = "Bad Gateway\n"
	return &http.Response{
		StatusCode: http.StatusBadGateway,
		Status:     "502 Bad Gateway",
		Proto:      "HTTP/1.1",
		ProtoMajor: 1,
		ProtoMinor: 1,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}
