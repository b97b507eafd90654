package filter_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-doorbell/doorbell/filter"
)

func TestAlternativesGreedyLeftWins(t *testing.T) {
	a := filter.JustMap(filter.MapFunc(func(r *http.Request) (*http.Request, error) {
		r.Header.Set("X-Branch", "a")
		return r, nil
	}))
	b := filter.JustMap(filter.MapFunc(func(r *http.Request) (*http.Request, error) {
		r.Header.Set("X-Branch", "b")
		return r, nil
	}))

	alt := filter.Either(a, b)
	assert.True(t, alt.Matches(req("GET", "/")))

	out, err := alt.Apply(req("GET", "/"))
	require.NoError(t, err)
	assert.Equal(t, "a", out.Header.Get("X-Branch"))
}

func TestAlternativesFallsThroughWhenFirstDoesNotMatch(t *testing.T) {
	noMatch := filter.JustFilter(filter.FilterFunc(func(*http.Request) bool { return false }))
	a := filter.NewStack(noMatch, filter.JustMap(filter.MapFunc(func(r *http.Request) (*http.Request, error) {
		t.Fatal("branch a must not be applied when its filter doesn't match")
		return r, nil
	})))
	b := filter.JustMap(filter.MapFunc(func(r *http.Request) (*http.Request, error) {
		r.Header.Set("X-Branch", "b")
		return r, nil
	}))

	alt := filter.Either(a, b)
	out, err := alt.Apply(req("GET", "/"))
	require.NoError(t, err)
	assert.Equal(t, "b", out.Header.Get("X-Branch"))
}

func TestAlternativesPushFrontTakesPriority(t *testing.T) {
	original := filter.Either(
		filter.JustFilter(filter.FilterFunc(func(*http.Request) bool { return true })),
		filter.JustFilter(filter.FilterFunc(func(*http.Request) bool { return true })),
	)

	pushed := filter.JustMap(filter.MapFunc(func(r *http.Request) (*http.Request, error) {
		r.Header.Set("X-Branch", "pushed")
		return r, nil
	}))

	withPushed := original.PushFront(pushed)
	out, err := withPushed.Apply(req("GET", "/"))
	require.NoError(t, err)
	assert.Equal(t, "pushed", out.Header.Get("X-Branch"))
}
