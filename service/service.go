// Package service defines the service-dispatch boundary: ServiceMaker,
// the shared long-lived factory holding any pooled upstream resources,
// and RouteService, the single-shot per-request handler it produces.
package service

import (
	"context"
	"net/http"
)

// RouteService is produced fresh for every dispatched request; callers
// must not assume it is reused across requests. Call maps the
// already-rewritten request to a response.
type RouteService interface {
	Call(ctx context.Context, req *http.Request) (*http.Response, error)
}

// RouteServiceFunc adapts a plain function to RouteService.
type RouteServiceFunc func(ctx context.Context, req *http.Request) (*http.Response, error)

func (f RouteServiceFunc) Call(ctx context.Context, req *http.Request) (*http.Response, error) {
	return f(ctx, req)
}

// ServiceMaker is the shared, long-lived factory: Make is invoked once
// per incoming request and must be cheap (it may not itself perform
// I/O). Implementations hold any pooled upstream client and are safe
// for concurrent use by every connection goroutine.
type ServiceMaker interface {
	Make() RouteService
}

// ServiceMakerFunc adapts a plain function to ServiceMaker.
type ServiceMakerFunc func() RouteService

func (f ServiceMakerFunc) Make() RouteService { return f() }
