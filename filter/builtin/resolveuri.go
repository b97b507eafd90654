package builtin

import (
	"net/http"

	"github.com/go-doorbell/doorbell/filter"
)

// ResolveURI ensures the request URI is absolute. If the URI already
// carries both a scheme and an authority, the request is returned
// unchanged (this makes ResolveURI idempotent). Otherwise it reads the
// Host header and synthesizes an absolute URI
// "defaultScheme://<host><path>?<query>". It fails with a "ResolveUri"
// rule rejection when the Host header is absent. Fragments are not
// handled.
func ResolveURI(defaultScheme string) filter.Rule {
	return filter.JustMap(filter.MapFunc(func(req *http.Request) (*http.Request, error) {
		if req.URL.Scheme != "" && req.URL.Host != "" {
			return req, nil
		}

		host := req.Header.Get("Host")
		if host == "" {
			host = req.Host
		}
		if host == "" {
			return nil, filter.NoMatch("ResolveUri: no host header")
		}

		req.URL.Scheme = defaultScheme
		req.URL.Host = host
		req.Host = host
		return req, nil
	}))
}
