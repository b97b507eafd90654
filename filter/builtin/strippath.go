package builtin

import (
	"net/http"
	"strings"

	"github.com/go-doorbell/doorbell/filter"
)

// StripPath removes prefix from the start of the request path. When the
// path doesn't begin with prefix, StripPath returns the request
// unchanged if permissive is true, or fails with a "StripPath" rule
// rejection if permissive is false.
func StripPath(prefix string, permissive bool) filter.Rule {
	return filter.JustMap(filter.MapFunc(func(req *http.Request) (*http.Request, error) {
		if !strings.HasPrefix(req.URL.Path, prefix) {
			if permissive {
				return req, nil
			}
			return nil, filter.NoMatch("StripPath: path doesn't match prefix")
		}
		req.URL.Path = req.URL.Path[len(prefix):]
		if req.URL.RawPath != "" {
			req.URL.RawPath = req.URL.RawPath[len(prefix):]
		}
		return req, nil
	}))
}

// AddPrefix prepends prefix to the request path.
func AddPrefix(prefix string) filter.Rule {
	return filter.JustMap(filter.MapFunc(func(req *http.Request) (*http.Request, error) {
		req.URL.Path = prefix + req.URL.Path
		if req.URL.RawPath != "" {
			req.URL.RawPath = prefix + req.URL.RawPath
		}
		return req, nil
	}))
}

// ChangePathPrefix is a convenience constructor matching the original
// helper of the same name: it strips "from" and adds "to" in its place,
// equivalent to Stack(ByPath(from), Stack(StripPath(from, false), AddPrefix(to))).
func ChangePathPrefix(from, to string) filter.Rule {
	return filter.NewStack(
		ByPath(from),
		filter.NewStack(StripPath(from, false), AddPrefix(to)),
	)
}
