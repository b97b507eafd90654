package builtin

import (
	"net/http"

	"github.com/go-doorbell/doorbell/filter"
)

// SetScheme rewrites the request URI's scheme. It fails with a
// "SetScheme" rule rejection when scheme is empty, the only transition
// this implementation treats as unacceptable.
func SetScheme(scheme string) filter.Rule {
	return filter.JustMap(filter.MapFunc(func(req *http.Request) (*http.Request, error) {
		if scheme == "" {
			return nil, filter.NoMatch("SetScheme: empty scheme")
		}
		req.URL.Scheme = scheme
		return req, nil
	}))
}
