package builtin

import (
	"net"
	"net/http"
	"strconv"

	"github.com/go-doorbell/doorbell/filter"
)

// SetPort rewrites the request URI's port, re-serializing the URI. It
// fails with a "SetPort" rule rejection if the URI has no authority to
// attach a port to.
func SetPort(port int) filter.Rule {
	p := strconv.Itoa(port)
	return filter.JustMap(filter.MapFunc(func(req *http.Request) (*http.Request, error) {
		if req.URL.Host == "" {
			return nil, filter.NoMatch("SetPort: request URI has no authority")
		}
		req.URL.Host = net.JoinHostPort(req.URL.Hostname(), p)
		req.Host = req.URL.Host
		return req, nil
	}))
}
