// Command doorbell runs a reverse proxy, TLS-terminating when a
// certificate and key are configured, that rewrites requests under
// /test/ and /hello and forwards them to a single upstream on
// 127.0.0.1:3000, adding standard forwarding headers along the way.
// Requests matching neither prefix get the canonical 404. It mirrors
// the composition built in the original Rust crate's doorbell example.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/go-doorbell/doorbell/config"
	"github.com/go-doorbell/doorbell/filter"
	"github.com/go-doorbell/doorbell/filter/builtin"
	"github.com/go-doorbell/doorbell/metrics"
	"github.com/go-doorbell/doorbell/proxy"
	"github.com/go-doorbell/doorbell/route"
	"github.com/go-doorbell/doorbell/service"
)

func main() {
	cfg := config.NewConfig()
	if err := cfg.Parse(os.Args[1:]); err != nil {
		log.Fatalf("doorbell: invalid config: %s", err)
	}

	log.SetLevel(cfg.ParsedLogLevel)

	var rec metrics.Recorder = metrics.Noop{}
	if cfg.EnablePrometheus {
		reg := prometheus.NewRegistry()
		registry := metrics.NewRegistry(reg)
		rec = registry
		go serveMetrics(cfg.MetricsListener, reg)
	}

	routes := buildRoutes(rec, cfg.ForwardTimeout)

	builder := proxy.On(cfg.Address, proxy.WithMetrics(rec))

	var acceptor interface {
		Serve(ctx context.Context) error
	}
	if cfg.TLSEnabled() {
		tlsCfg, err := cfg.LoadTLSConfig()
		if err != nil {
			log.Fatalf("doorbell: %s", err)
		}
		acceptor = builder.HTTPS(tlsCfg).WithRoutes(routes)
	} else {
		acceptor = builder.HTTP().WithRoutes(routes)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := acceptor.Serve(ctx); err != nil {
		log.Fatalf("doorbell: %s", err)
	}
}

// buildRoutes assembles the same routing table as the Rust example:
// resolve the inbound URI against its Host header, then try a couple
// of rewrite branches greedily before forwarding to the fixed upstream
// with forwarding headers attached.
func buildRoutes(rec metrics.Recorder, forwardTimeout time.Duration) route.Route {
	stripTest := filter.NewStack(builtin.ByPath("/test/"), builtin.StripPath("/test/", false))
	helloToWorld := builtin.ChangePathPrefix("/hello", "/world")

	redirectToUpstream := filter.NewStack(
		filter.NewStack(builtin.SetHost("127.0.0.1"), builtin.SetHeader("host", "127.0.0.1")),
		filter.NewStack(builtin.SetPort(3000), builtin.SetScheme("http")),
	)

	resolveURI := builtin.ResolveURI("https")
	addForwardHeaders := builtin.AddForwardHeaders("https", 3001)

	var rules filter.Rule = filter.Either(stripTest, helloToWorld)
	rules = filter.NewStack(
		filter.NewStack(resolveURI, rules),
		filter.NewStack(redirectToUpstream, addForwardHeaders),
	)

	maker := service.NewForwardingServiceMaker(nil, rec)
	maker.Client.Timeout = forwardTimeout
	return route.MakeRoute(rules, maker)
}

func serveMetrics(addr string, reg *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.WithError(err).Warn("doorbell: metrics listener stopped")
	}
}
