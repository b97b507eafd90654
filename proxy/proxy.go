// Package proxy provides the type-state acceptor builder: bind a
// socket, pick plaintext or TLS, attach a routing table, then serve.
// The type parameters track progress so that "bind without routes" or
// "serve without a protocol" are compile-time impossible, mirroring the
// original Rust crate's NeedsProtocol -> NeedsRules -> CanServe states.
package proxy

import (
	"crypto/tls"
	"net"

	"github.com/go-doorbell/doorbell/metrics"
	"github.com/go-doorbell/doorbell/route"
)

// protocol is the constraint every proxy type-state is generic over: it
// knows how to wrap a raw TCP listener into whatever the protocol needs
// (a no-op for plaintext, a TLS listener for HTTPS).
type protocol interface {
	wrap(ln net.Listener) net.Listener
}

// NeedsProtocol is the initial builder state, produced by On.
type NeedsProtocol struct {
	addr string
	opts options
}

// Plaintext marks the proxy as serving plain HTTP/1.1.
type Plaintext struct{}

func (Plaintext) wrap(ln net.Listener) net.Listener { return ln }

// TLSProto marks the proxy as serving HTTP/1.1 terminated over TLS.
type TLSProto struct {
	Config *tls.Config
}

func (t TLSProto) wrap(ln net.Listener) net.Listener {
	return tls.NewListener(ln, t.Config)
}

// NeedsRules is reached once a protocol has been selected; it still
// needs a routing table before it can serve.
type NeedsRules[Proto protocol] struct {
	addr  string
	proto Proto
	opts  options
}

// CanServe is reached once a routing table has been attached; Serve is
// only callable in this state.
type CanServe[Proto protocol] struct {
	addr   string
	proto  Proto
	routes route.Route
	opts   options
}

type options struct {
	metrics metrics.Recorder
}

// Option configures optional acceptor behavior.
type Option func(*options)

// WithMetrics attaches a metrics.Recorder; without it, metrics are
// discarded.
func WithMetrics(rec metrics.Recorder) Option {
	return func(o *options) { o.metrics = rec }
}

// On begins building a proxy bound to addr.
func On(addr string, opts ...Option) NeedsProtocol {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.metrics == nil {
		o.metrics = metrics.Noop{}
	}
	return NeedsProtocol{addr: addr, opts: o}
}

// HTTP selects plaintext HTTP/1.1.
func (p NeedsProtocol) HTTP() NeedsRules[Plaintext] {
	return NeedsRules[Plaintext]{addr: p.addr, proto: Plaintext{}, opts: p.opts}
}

// HTTPS selects HTTP/1.1 terminated over TLS using the given config.
// HTTP/2 negotiation is explicitly disabled: NextProtos is overwritten
// so the handshake never offers h2.
func (p NeedsProtocol) HTTPS(cfg *tls.Config) NeedsRules[TLSProto] {
	cfg = cfg.Clone()
	cfg.NextProtos = []string{"http/1.1"}
	return NeedsRules[TLSProto]{addr: p.addr, proto: TLSProto{Config: cfg}, opts: p.opts}
}

// WithRoutes attaches the routing table, making the proxy servable.
func (n NeedsRules[Proto]) WithRoutes(r route.Route) CanServe[Proto] {
	return CanServe[Proto]{addr: n.addr, proto: n.proto, routes: r, opts: n.opts}
}
