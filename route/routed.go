package route

import (
	"net/http"

	"github.com/go-doorbell/doorbell/filter"
	"github.com/go-doorbell/doorbell/service"
)

// Routed is the canonical leaf of a routing table: a Rule paired with
// the ServiceMaker that terminates it.
type Routed struct {
	rule  filter.Rule
	maker service.ServiceMaker
}

// MakeRoute builds a Routed leaf from a rule and a service maker.
func MakeRoute(rule filter.Rule, maker service.ServiceMaker) Routed {
	return Routed{rule: rule, maker: maker}
}

func (r Routed) Matches(req *http.Request) bool {
	return r.rule.Matches(req)
}

func (r Routed) Route(req *http.Request) (*http.Request, service.RouteService, error) {
	mapped, err := r.rule.Apply(req)
	if err != nil {
		return nil, nil, err
	}
	return mapped, r.maker.Make(), nil
}
