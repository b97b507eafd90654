package filter

import (
	"context"
	"net"
	"net/http"
)

// contextKey is the well-known, closed set of keys used for the
// request-extensions side channel. Go's http.Request already carries a
// per-request context.Context, so that is the natural home for the
// extensions the acceptor threads through the pipeline, rather than a
// parallel map.
type contextKey int

const peerAddrKey contextKey = iota

// WithPeerAddr returns a shallow copy of req with the peer socket
// address attached to its extensions. The acceptor's handler calls this
// once per request, before the request reaches the routing table.
func WithPeerAddr(req *http.Request, addr net.Addr) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), peerAddrKey, addr))
}

// PeerAddr reads the peer socket address from a request's extensions, if
// the acceptor attached one.
func PeerAddr(req *http.Request) (net.Addr, bool) {
	addr, ok := req.Context().Value(peerAddrKey).(net.Addr)
	return addr, ok
}
