package builtin

import (
	"net/http"

	"github.com/go-doorbell/doorbell/filter"
)

// HasHeader matches requests carrying a header with the given name.
func HasHeader(name string) filter.Rule {
	return filter.JustFilter(filter.FilterFunc(func(req *http.Request) bool {
		_, ok := req.Header[http.CanonicalHeaderKey(name)]
		return ok
	}))
}

// ByHeader matches requests where the named header is present, valid
// UTF-8, and equal to value exactly. Only the header's first value is
// compared. No separate UTF-8 check is made: when value is valid UTF-8,
// a header value equal to it is valid UTF-8 too.
func ByHeader(name, value string) filter.Rule {
	return filter.JustFilter(filter.FilterFunc(func(req *http.Request) bool {
		got, ok := req.Header[http.CanonicalHeaderKey(name)]
		if !ok || len(got) == 0 {
			return false
		}
		return got[0] == value
	}))
}
