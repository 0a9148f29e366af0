package goGrant

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyPrivilegeSet is returned when the resolver is invoked directly
	// with an empty token set. Engine.Get never returns it: the empty and
	// nil sets short-circuit to the NONE privilege before resolution.
	ErrEmptyPrivilegeSet = errors.New("empty privilege set")
	// ErrBuilderReused is returned when Build is called twice on one Builder.
	ErrBuilderReused = errors.New("builder already built")
	// ErrCacheMaxEntriesNegative is returned by Build for a negative cache bound.
	ErrCacheMaxEntriesNegative = errors.New("cache max entries cannot be negative")
	// ErrAuditBufferNegative is returned by Build for a negative audit buffer size.
	ErrAuditBufferNegative = errors.New("audit buffer size cannot be negative")
)

// UnknownPrivilegeError reports a token that is neither a predefined
// privilege name nor a pattern over the available cluster actions. It
// carries the complete requested set and the full list of valid catalog
// names so callers can surface an actionable configuration error without
// further lookups.
type UnknownPrivilegeError struct {
	// Requested is the full token set that was being resolved, sorted.
	Requested []string
	// Unknown is the token that failed classification and lookup.
	Unknown string
	// Valid is the sorted list of predefined privilege names.
	Valid []string
}

func (e *UnknownPrivilegeError) Error() string {
	return fmt.Sprintf(
		"unknown cluster privilege %q in [%s]: a privilege must be one of the predefined cluster privileges [%s] or a pattern over the available cluster actions",
		e.Unknown,
		strings.Join(e.Requested, ","),
		strings.Join(e.Valid, ","),
	)
}
