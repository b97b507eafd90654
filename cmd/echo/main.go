// Command echo is a minimal upstream target for exercising doorbell
// locally: it listens on 127.0.0.1:3000 and replies to every request
// with a dump of the request line and headers it received, the same
// role the Rust crate's echo example plays in its own examples.
package main

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"time"

	log "github.com/sirupsen/logrus"
)

func main() {
	addr := "127.0.0.1:3000"

	srv := &http.Server{
		Addr:    addr,
		Handler: http.HandlerFunc(hello),
	}

	log.WithField("addr", addr).Info("echo: listening")
	if err := srv.ListenAndServe(); err != nil {
		log.WithError(err).Fatal("echo: server stopped")
	}
}

func hello(w http.ResponseWriter, r *http.Request) {
	log.WithField("method", r.Method).WithField("path", r.URL.Path).Info("echo: got a request")

	dump, err := httputil.DumpRequest(r, false)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Mirrors the artificial latency in the Rust example, useful for
	// exercising timeouts against a slow upstream.
	time.Sleep(time.Second)

	fmt.Fprintf(w, "%s\n", dump)
}
