// Package automaton implements the default pattern engine used for privilege
// matching: wildcard action patterns compiled into matchers that support
// union and difference.
//
// # Pattern syntax
//
// A pattern is a literal action identifier in which '*' matches any run of
// characters, including the empty run and '/' separators. "cluster:monitor/*"
// matches every action under the monitor namespace; "cluster:admin/snapshot/status*"
// matches the status action and its suffix-extended sub-actions.
//
// # Design
//
// Matchers form a small algebra: a pattern-set leaf, a union node, and a
// difference node. Union flattens nested unions and merges leaf pattern sets
// (the minimized form); membership testing is a map lookup for literal
// patterns plus a linear wildcard scan. There is no DFA construction — the
// catalog's pattern sets are small and fixed, and resolution results are
// cached upstream.
//
// # Architecture boundaries
//
// This package is a pure in-memory data structure with no I/O. It must not
// import goGrant or any sibling package.
package automaton
