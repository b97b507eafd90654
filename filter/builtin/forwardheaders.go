package builtin

import (
	"net"
	"net/http"
	"strconv"

	"github.com/go-doorbell/doorbell/filter"
)

// AddForwardHeaders stamps the standard forwarding headers onto the
// request before it is relayed upstream:
//
//   - X-Forwarded-Proto is always set to proto.
//   - X-Forwarded-Port is always set to localPort.
//   - X-Forwarded-For is set to the peer's IP, when the acceptor
//     attached a peer address to the request's extensions.
//   - X-Forwarded-Host is set from the inbound Host header, then
//     overridden by the URI's host if the URI has one (URI wins).
func AddForwardHeaders(proto string, localPort int) filter.Rule {
	port := strconv.Itoa(localPort)
	return filter.JustMap(filter.MapFunc(func(req *http.Request) (*http.Request, error) {
		req.Header.Set("X-Forwarded-Proto", proto)
		req.Header.Set("X-Forwarded-Port", port)

		if addr, ok := filter.PeerAddr(req); ok {
			if ip := hostOf(addr.String()); ip != "" {
				req.Header.Set("X-Forwarded-For", ip)
			}
		}

		if host := req.Host; host != "" {
			req.Header.Set("X-Forwarded-Host", host)
		}
		if req.URL.Host != "" {
			req.Header.Set("X-Forwarded-Host", req.URL.Hostname())
		}

		return req, nil
	}))
}

func hostOf(hostport string) string {
	host, _, err := net.SplitHostPort(hostport)
	if err != nil {
		return hostport
	}
	return host
}
