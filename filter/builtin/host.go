package builtin

import (
	"net"
	"net/http"

	"github.com/go-doorbell/doorbell/filter"
)

// ByHost matches requests whose URI has an authority and whose host is
// exactly host (case-sensitive, as stored in the URI).
func ByHost(host string) filter.Rule {
	return filter.JustFilter(filter.FilterFunc(func(req *http.Request) bool {
		return req.URL.Host != "" && req.URL.Hostname() == host
	}))
}

// SetHost rewrites the request URI's host, preserving any port already
// set, and re-serializes the URI. It fails with a "SetHost" rule
// rejection if host is empty.
func SetHost(host string) filter.Rule {
	return filter.JustMap(filter.MapFunc(func(req *http.Request) (*http.Request, error) {
		if host == "" {
			return nil, filter.NoMatch("SetHost: empty host")
		}
		if port := req.URL.Port(); port != "" {
			req.URL.Host = net.JoinHostPort(host, port)
		} else {
			req.URL.Host = host
		}
		req.Host = req.URL.Host
		return req, nil
	}))
}
