// Package goGrant resolves sets of cluster privilege tokens (predefined
// privilege names and/or literal action patterns) into compiled, immutable
// [Privilege] values whose Permits predicate answers authorization checks.
//
// The package is designed for concurrent server workloads: Engine methods are
// safe to call from multiple goroutines after initialization through
// [Builder.Build].
//
// # Architecture boundaries
//
// goGrant is the public surface. It exposes [Engine], [Builder], [Config],
// [Privilege], and the [AutomatonEngine] seam. Async audit dispatch is an
// unexported dispatcher behind [AuditSink]; the default pattern engine lives
// in the automaton subpackage and can be swapped without touching the resolver.
//
// # What this package must NOT do
//
//   - Perform I/O on the resolution path. Get is pure in-memory work; the
//     only goroutine handoff is the buffered audit dispatcher.
//   - Mutate a [Privilege] or a catalog entry after Build.
//   - Define role semantics or enforce requests — callers supply token sets
//     (typically derived from role definitions) and consume Permits.
//
// # Performance contract
//
// Get is the hot path. A cache hit takes one read-locked map lookup and must
// not allocate beyond the canonical key. A miss resolves at most once per
// distinct token set under concurrent callers (single-flight).
package goGrant
