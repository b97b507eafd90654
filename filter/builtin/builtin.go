// Package builtin provides the stock filters and maps described in the
// routing algebra: host/path/header predicates and the URI, header,
// host, scheme, port and forwarding-header rewrites every proxy needs.
//
// Every constructor here returns a filter.Rule, wrapped with
// filter.JustFilter or filter.JustMap as appropriate (ChangePathPrefix
// returns a filter.Stack of such rules), ready to compose with
// filter.NewStack and filter.Either.
package builtin
