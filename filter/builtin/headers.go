package builtin

import (
	"fmt"
	"net/http"

	"golang.org/x/net/http/httpguts"

	"github.com/go-doorbell/doorbell/filter"
)

// SetHeader replaces any existing values of name with value. name must
// be a valid HTTP header field name; an invalid name is a programming
// error at rule construction and panics immediately, rather than
// failing on every request built from this rule.
func SetHeader(name, value string) filter.Rule {
	validateHeaderName(name)
	return filter.JustMap(filter.MapFunc(func(req *http.Request) (*http.Request, error) {
		req.Header.Set(name, value)
		return req, nil
	}))
}

// AddHeader appends value to name, preserving any values already
// present. Same header-name-validity precondition as SetHeader.
func AddHeader(name, value string) filter.Rule {
	validateHeaderName(name)
	return filter.JustMap(filter.MapFunc(func(req *http.Request) (*http.Request, error) {
		req.Header.Add(name, value)
		return req, nil
	}))
}

func validateHeaderName(name string) {
	if !httpguts.ValidHeaderFieldName(name) {
		panic(fmt.Sprintf("builtin: invalid header name %q", name))
	}
}
