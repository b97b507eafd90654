// Package route defines Route, the unit of dispatch: a Rule terminated
// by a service.ServiceMaker. Routes compose via Alternatives to form a
// routing table, exactly like rules do, but at the dispatch level where
// a concrete service.RouteService is produced per match.
package route

import (
	"net/http"

	"github.com/go-doorbell/doorbell/service"
)

// Route extends the routing algebra with service dispatch: Matches
// decides whether this route applies, and Route rewrites the request
// and hands back a freshly made service ready to call.
type Route interface {
	Matches(req *http.Request) bool
	Route(req *http.Request) (*http.Request, service.RouteService, error)
}
