package route

import (
	"net/http"

	"github.com/go-doorbell/doorbell/service"
)

// Alternatives is the route-level analogue of filter.Alternatives:
// greedy either/or composition of two routes, with identical
// greedy-left-wins semantics. Nesting Alternatives of Routed leaves is
// how a multi-branch routing table is built; there is no separate
// "routing table" type.
type Alternatives struct {
	a, b Route
}

// Either builds a greedy either/or composition of two routes.
func Either(a, b Route) Alternatives {
	return Alternatives{a: a, b: b}
}

func (alt Alternatives) Matches(req *http.Request) bool {
	return alt.a.Matches(req) || alt.b.Matches(req)
}

func (alt Alternatives) Route(req *http.Request) (*http.Request, service.RouteService, error) {
	if alt.a.Matches(req) {
		return alt.a.Route(req)
	}
	return alt.b.Route(req)
}

// PushFront adds a route before this one; alternatives are greedy, so
// ordering matters and the pushed route is tried first.
func (alt Alternatives) PushFront(other Route) Alternatives {
	return Either(other, alt)
}

// PushBack adds a route after this one.
func (alt Alternatives) PushBack(other Route) Alternatives {
	return Either(alt, other)
}
