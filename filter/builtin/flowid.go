package builtin

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/go-doorbell/doorbell/filter"
)

// FlowIDHeaderName is the header used to correlate a request across the
// proxy and its upstream, mirroring the reverse-proxy convention of
// stamping a per-request correlation id (skipper calls this "flowId").
const FlowIDHeaderName = "X-Flow-Id"

// AddFlowID stamps a generated request-correlation id onto the request
// if one isn't already present. Unlike skipper's hand-rolled alphabet
// sampler, ids here are standard UUIDs. This is not part of the
// required routing algebra; it's an optional map for callers who want
// request correlation across proxy and upstream logs.
func AddFlowID() filter.Rule {
	return filter.JustMap(filter.MapFunc(func(req *http.Request) (*http.Request, error) {
		if req.Header.Get(FlowIDHeaderName) != "" {
			return req, nil
		}
		req.Header.Set(FlowIDHeaderName, uuid.NewString())
		return req, nil
	}))
}
