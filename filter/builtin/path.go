package builtin

import (
	"net/http"
	"strings"

	"github.com/go-doorbell/doorbell/filter"
)

// ByPath matches requests whose URI path begins with prefix. This is a
// plain string prefix match, not segment-aware: ByPath("/test") also
// matches "/testing".
func ByPath(prefix string) filter.Rule {
	return filter.JustFilter(filter.FilterFunc(func(req *http.Request) bool {
		return strings.HasPrefix(req.URL.Path, prefix)
	}))
}
