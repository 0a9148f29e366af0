package goGrant

import (
	"sort"
	"strings"
)

// Matcher is a compiled set of action patterns. Matches reports whether the
// given action identifier falls inside that set.
//
// Matcher values are immutable and safe for concurrent use.
type Matcher interface {
	Matches(action string) bool
}

// AutomatonEngine is the narrow seam to the pattern-matching engine. The
// resolver and catalog are written against this interface so the default
// implementation (the automaton subpackage) can be replaced by any engine
// that supports compilation, union, and difference over action patterns.
//
// Contract:
//
//   - Compile with an empty pattern list returns a matcher that matches
//     nothing, not an error.
//   - Union of zero matchers matches nothing; union of one matcher is
//     behaviorally that matcher. Implementations should minimize the result.
//   - Difference(include, exclude) matches actions matched by include and
//     not by exclude.
type AutomatonEngine interface {
	Compile(patterns []string) (Matcher, error)
	Union(matchers []Matcher) Matcher
	Difference(include, exclude Matcher) Matcher
}

// Privilege is one immutable permission grant: the requested token set and
// the compiled matcher that is the exact union of everything those tokens
// imply. Two Privilege values with equal name sets are behaviorally
// equivalent even when they are distinct objects.
type Privilege struct {
	names   []string // sorted, deduplicated
	matcher Matcher
}

func newPrivilege(names []string, matcher Matcher) *Privilege {
	return &Privilege{names: names, matcher: matcher}
}

// Permits reports whether the privilege grants the given action identifier.
func (p *Privilege) Permits(action string) bool {
	if p == nil || p.matcher == nil {
		return false
	}
	return p.matcher.Matches(action)
}

// Names returns the token set this privilege was resolved from, sorted.
// The returned slice is a copy.
func (p *Privilege) Names() []string {
	if p == nil {
		return nil
	}
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// String returns the name set in a stable, human-readable form.
func (p *Privilege) String() string {
	if p == nil {
		return "privilege{}"
	}
	return "privilege{" + strings.Join(p.names, ",") + "}"
}

// normalizeTokens deduplicates and sorts the raw token set. Case is
// preserved: lowercasing is a resolution concern, not a set-identity one,
// matching the cache keying policy.
func normalizeTokens(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
