package filter_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-doorbell/doorbell/filter"
)

func req(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

func TestJustFilterMapsIdentity(t *testing.T) {
	always := filter.FilterFunc(func(*http.Request) bool { return true })
	r := filter.JustFilter(always)

	in := req("GET", "/a")
	assert.True(t, r.Matches(in))

	out, err := r.Apply(in)
	require.NoError(t, err)
	assert.Same(t, in, out)
}

func TestJustMapAlwaysMatches(t *testing.T) {
	setHeader := filter.MapFunc(func(in *http.Request) (*http.Request, error) {
		in.Header.Set("X-Test", "1")
		return in, nil
	})
	r := filter.JustMap(setHeader)

	in := req("GET", "/anything")
	assert.True(t, r.Matches(in))

	out, err := r.Apply(in)
	require.NoError(t, err)
	assert.Equal(t, "1", out.Header.Get("X-Test"))
}

func TestStructuralRule(t *testing.T) {
	// any type with both Matches and Apply is already a Rule, with no
	// wrapper required.
	var _ filter.Rule = combinedFilterMap{}
}

type combinedFilterMap struct{}

func (combinedFilterMap) Matches(*http.Request) bool                     { return true }
func (combinedFilterMap) Apply(r *http.Request) (*http.Request, error)   { return r, nil }

func TestPeerAddrRoundTrip(t *testing.T) {
	in := req("GET", "/")
	_, ok := filter.PeerAddr(in)
	assert.False(t, ok)

	addr := &fakeAddr{s: "10.0.0.5:4444"}
	withAddr := filter.WithPeerAddr(in, addr)

	got, ok := filter.PeerAddr(withAddr)
	require.True(t, ok)
	assert.Equal(t, "10.0.0.5:4444", got.String())
}

type fakeAddr struct{ s string }

func (f *fakeAddr) Network() string { return "tcp" }
func (f *fakeAddr) String() string  { return f.s }

func TestNoMatchResponse(t *testing.T) {
	err := filter.NoMatch("SetPort: bad uri")
	var ruleErr *filter.RuleError
	require.ErrorAs(t, err, &ruleErr)
	assert.Equal(t, http.StatusNotFound, ruleErr.Response.StatusCode)
}
