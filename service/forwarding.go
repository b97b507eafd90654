package service

import (
	"context"
	"crypto/tls"
	"errors"
	"net"
	"net/http"

	"github.com/go-doorbell/doorbell/filter"
	"github.com/go-doorbell/doorbell/metrics"
)

// ForwardingServiceMaker is the reference ServiceMaker: it holds a
// shared upstream HTTP/1.1 client and produces a service per request
// that simply relays the already-rewritten request and returns the
// response. A transport error classifiable as connect-refused (or
// equivalent connect-phase failure) is folded into a 502 "Bad Gateway"
// response returned as a success; any other transport error is
// surfaced as an error.
type ForwardingServiceMaker struct {
	Client  *http.Client
	Metrics metrics.Recorder
}

// NewForwardingServiceMaker builds a ForwardingServiceMaker. When client
// is nil it uses a pooled client with HTTP/2 disabled (the routing core
// is HTTP/1.1 only: client and server must agree).
func NewForwardingServiceMaker(client *http.Client, rec metrics.Recorder) *ForwardingServiceMaker {
	if client == nil {
		client = &http.Client{Transport: &http.Transport{
			// Disabling h2 on the outbound side too: a Transport with a
			// nil TLSNextProto enables h2 automatically for https
			// upstreams, and this proxy never negotiates anything but
			// HTTP/1.1 upstream or down.
			ForceAttemptHTTP2: false,
			TLSNextProto:      map[string]func(string, *tls.Conn) http.RoundTripper{},
		}}
	}
	if rec == nil {
		rec = metrics.Noop{}
	}
	return &ForwardingServiceMaker{Client: client, Metrics: rec}
}

func (m *ForwardingServiceMaker) Make() RouteService {
	return RouteServiceFunc(func(ctx context.Context, req *http.Request) (*http.Response, error) {
		req = req.WithContext(ctx)
		// An inbound server request carries RequestURI, which
		// http.Client refuses to send.
		req.RequestURI = ""
		resp, err := m.Client.Do(req)
		if err == nil {
			return resp, nil
		}

		if isConnectRefused(err) {
			m.Metrics.BackendBadGateway()
			return filter.BadGateway(), nil
		}
		return nil, err
	})
}

// isConnectRefused reports whether err represents a connect-phase
// failure (the upstream refused the connection, or it could never be
// reached), as opposed to a mid-request transport error.
func isConnectRefused(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return opErr.Op == "dial"
	}
	return errors.Is(err, net.ErrClosed)
}
