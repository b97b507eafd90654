package filter

import "net/http"

// Rule unifies Filter and Map: it decides whether a request may proceed
// and, if so, rewrites it. Rule authors may assume Apply is only ever
// invoked on a request for which Matches just returned true in the same
// routing decision; Matches itself must be pure and side-effect free.
//
// Any type that implements both Filter.Matches and Map.Apply already
// satisfies Rule — Go's structural typing gives this for free, so there
// is no trait-coherence question to resolve the way the original Rust
// source had to pick between a blanket impl and explicit wrappers. The
// explicit JustFilter and JustMap constructors exist only to lift a
// type that implements *one* of Filter or Map (not both) into a Rule.
type Rule interface {
	Filter
	Map
}
