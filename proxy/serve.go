package proxy

import (
	"context"
	"crypto/tls"
	"errors"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/go-doorbell/doorbell/filter"
	"github.com/go-doorbell/doorbell/route"
)

// noDelayListener enables TCP_NODELAY on every accepted connection, the
// same low-latency default net/http's own server applies to its
// keep-alive listener.
type noDelayListener struct {
	net.Listener
}

func (l noDelayListener) Accept() (net.Conn, error) {
	conn, err := l.Listener.Accept()
	if err != nil {
		return nil, err
	}
	if tc, ok := conn.(*net.TCPConn); ok {
		_ = tc.SetNoDelay(true)
	}
	return conn, nil
}

// Listen binds the configured address and wraps it for the selected
// protocol (TLS for HTTPS, a no-op for plaintext), enabling
// TCP_NODELAY on every accepted connection. Split out from Serve so
// callers (and tests) can learn the bound address before the accept
// loop starts, which matters when addr uses an ephemeral port ("...:0").
func (c CanServe[Proto]) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", c.addr)
	if err != nil {
		return nil, err
	}
	var wrapped net.Listener = noDelayListener{ln}
	return c.proto.wrap(wrapped), nil
}

// Serve binds the configured address, accepts connections for the
// configured protocol, and serves HTTP/1.1 on each, dispatching every
// request through the attached routing table. It returns when ctx is
// canceled or a fatal error occurs; only listener bind failure is
// fatal.
func (c CanServe[Proto]) Serve(ctx context.Context) error {
	wrapped, err := c.Listen()
	if err != nil {
		return err
	}
	return c.ServeOn(ctx, wrapped)
}

// ServeOn runs the accept loop on an already-bound listener, dispatching
// every request through the attached routing table. It returns when ctx
// is canceled or a fatal error occurs.
func (c CanServe[Proto]) ServeOn(ctx context.Context, wrapped net.Listener) error {
	log.WithField("addr", wrapped.Addr().String()).Info("doorbell: listening")

	srv := &http.Server{
		Handler: &handler{routes: c.routes, opts: c.opts},
		// HTTP/1.1 only: an empty, non-nil TLSNextProto map disables
		// the server's automatic h2 upgrade over TLS; plaintext never
		// negotiates h2c in the first place.
		TLSNextProto: map[string]func(*http.Server, *tls.Conn, http.Handler){},
		// Routes per-connection failures (including TLS handshake
		// errors) through logrus instead of the stdlib default logger,
		// at warn level; the accept loop itself never crashes on them.
		ErrorLog: stdLogAdapter(),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-gctx.Done()
		return wrapped.Close()
	})
	g.Go(func() error {
		err := srv.Serve(wrapped)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		// The listener was closed because ctx was canceled: a normal stop.
		if gctx.Err() != nil && errors.Is(err, net.ErrClosed) {
			return nil
		}
		return err
	})

	return g.Wait()
}

type handler struct {
	routes route.Route
	opts   options
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() { h.opts.metrics.ObserveLatency(time.Since(start)) }()

	if addr := peerAddr(r); addr != nil {
		r = filter.WithPeerAddr(r, addr)
	}

	if !h.routes.Matches(r) {
		h.opts.metrics.RouteNotFound()
		writeResponse(w, filter.NoMatchingRoute())
		return
	}

	mapped, svc, err := h.routes.Route(r)
	if err != nil {
		var ruleErr *filter.RuleError
		if errors.As(err, &ruleErr) {
			h.opts.metrics.RuleRejected()
			writeResponse(w, ruleErr.Response)
			return
		}
		log.WithError(err).Warn("doorbell: routing failed")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	h.opts.metrics.RouteMatched()

	resp, err := svc.Call(r.Context(), mapped)
	if err != nil {
		log.WithError(err).Warn("doorbell: upstream call failed")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	writeResponse(w, resp)
}

// peerAddr extracts the immediate peer's socket address from the
// connection-level RemoteAddr net/http already threads onto the
// request, so the acceptor can attach it to the request's extensions
// for add_forward_headers to read back out.
func peerAddr(r *http.Request) net.Addr {
	host, portStr, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return nil
	}
	ip := net.ParseIP(host)
	if ip == nil {
		return nil
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil
	}
	return &net.TCPAddr{IP: ip, Port: port}
}

func writeResponse(w http.ResponseWriter, resp *http.Response) {
	for k, vs := range resp.Header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(resp.StatusCode)
	if resp.Body != nil {
		defer resp.Body.Close()
		_, _ = io.Copy(w, resp.Body)
	}
}
