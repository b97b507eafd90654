package filter

import "net/http"

// Map is a stateless, immutable, fallible transform of a request. A Map
// only ever rewrites metadata (method, URI, headers, extensions); request
// bodies always flow through untouched.
type Map interface {
	Apply(req *http.Request) (*http.Request, error)
}

// MapFunc adapts a plain function to Map.
type MapFunc func(req *http.Request) (*http.Request, error)

func (f MapFunc) Apply(req *http.Request) (*http.Request, error) { return f(req) }

// justMap lifts a Map into a Rule that matches every request.
type justMap struct {
	Map
}

// JustMap wraps a Map as a Rule that always matches.
func JustMap(m Map) Rule {
	return justMap{m}
}

func (j justMap) Matches(req *http.Request) bool {
	return true
}
