// Package frp is a push-based functional reactive programming engine:
// sinks inject discrete occurrences, streams transform them through
// declarative combinators, and signals hold the latest value for lock-free
// sampling at any time.
//
// Propagation is synchronous on the sender's goroutine: Send walks the
// subscriber graph iteratively in dependency order and returns once every
// live descendant has been notified. Subscription edges are weak; a
// subtree whose handles are all gone stops being notified and is reclaimed.
package frp
