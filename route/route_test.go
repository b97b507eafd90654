package route_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-doorbell/doorbell/filter"
	"github.com/go-doorbell/doorbell/filter/builtin"
	"github.com/go-doorbell/doorbell/route"
	"github.com/go-doorbell/doorbell/service"
)

func req(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

func echoMaker(tag string) service.ServiceMaker {
	return service.ServiceMakerFunc(func() service.RouteService {
		return service.RouteServiceFunc(func(_ context.Context, r *http.Request) (*http.Response, error) {
			resp := httptest.NewRecorder()
			resp.Header().Set("X-Handled-By", tag)
			resp.WriteHeader(http.StatusOK)
			return resp.Result(), nil
		})
	})
}

func TestRoutedDelegatesToRuleAndMaker(t *testing.T) {
	rule := builtin.ByPath("/a")
	r := route.MakeRoute(rule, echoMaker("a"))

	assert.True(t, r.Matches(req("GET", "/a/x")))
	assert.False(t, r.Matches(req("GET", "/b")))

	mapped, svc, err := r.Route(req("GET", "/a/x"))
	require.NoError(t, err)
	require.NotNil(t, mapped)
	resp, err := svc.Call(context.Background(), mapped)
	require.NoError(t, err)
	assert.Equal(t, "a", resp.Header.Get("X-Handled-By"))
}

func TestRoutedPropagatesRuleError(t *testing.T) {
	rule := builtin.StripPath("/required/", false)
	r := route.MakeRoute(rule, echoMaker("x"))

	assert.True(t, r.Matches(req("GET", "/other"))) // JustMap always matches

	_, _, err := r.Route(req("GET", "/other"))
	require.Error(t, err)
	var ruleErr *filter.RuleError
	require.ErrorAs(t, err, &ruleErr)
}

func TestAlternativesGreedyLeftWinsAtRouteLevel(t *testing.T) {
	a := route.MakeRoute(builtin.ByPath("/a"), echoMaker("a"))
	b := route.MakeRoute(builtin.ByPath("/"), echoMaker("b"))

	table := route.Either(a, b)

	// /a/x matches both, but a wins.
	assert.True(t, table.Matches(req("GET", "/a/x")))
	mapped, svc, err := table.Route(req("GET", "/a/x"))
	require.NoError(t, err)
	resp, err := svc.Call(context.Background(), mapped)
	require.NoError(t, err)
	assert.Equal(t, "a", resp.Header.Get("X-Handled-By"))

	// /other only matches b.
	mapped, svc, err = table.Route(req("GET", "/other"))
	require.NoError(t, err)
	resp, err = svc.Call(context.Background(), mapped)
	require.NoError(t, err)
	assert.Equal(t, "b", resp.Header.Get("X-Handled-By"))
}

func TestAlternativesNoMatch(t *testing.T) {
	a := route.MakeRoute(builtin.ByPath("/a"), echoMaker("a"))
	b := route.MakeRoute(builtin.ByPath("/b"), echoMaker("b"))
	table := route.Either(a, b)

	assert.False(t, table.Matches(req("GET", "/c")))
}
