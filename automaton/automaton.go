package automaton

import (
	"fmt"
	"strings"
)

// Matcher is a compiled set of action patterns.
type Matcher interface {
	Matches(action string) bool
}

type emptyMatcher struct{}

func (emptyMatcher) Matches(string) bool { return false }

// Empty returns a matcher that matches nothing.
func Empty() Matcher { return emptyMatcher{} }

// patternSet is the leaf matcher: literal patterns are tested with one map
// lookup, wildcard patterns with a linear scan.
type patternSet struct {
	literals  map[string]struct{}
	wildcards []string
}

func (p *patternSet) Matches(action string) bool {
	if _, ok := p.literals[action]; ok {
		return true
	}
	for _, w := range p.wildcards {
		if wildcardMatch(w, action) {
			return true
		}
	}
	return false
}

type unionMatcher struct {
	children []Matcher
}

func (u *unionMatcher) Matches(action string) bool {
	for _, c := range u.children {
		if c.Matches(action) {
			return true
		}
	}
	return false
}

type differenceMatcher struct {
	include Matcher
	exclude Matcher
}

func (d *differenceMatcher) Matches(action string) bool {
	return d.include.Matches(action) && !d.exclude.Matches(action)
}

// Compile builds a matcher from wildcard action patterns. An empty pattern
// list compiles to the empty matcher; an empty pattern string is an error.
func Compile(patterns ...string) (Matcher, error) {
	if len(patterns) == 0 {
		return Empty(), nil
	}

	set := &patternSet{literals: make(map[string]struct{}, len(patterns))}
	for _, p := range patterns {
		if p == "" {
			return nil, fmt.Errorf("empty pattern")
		}
		if strings.ContainsRune(p, '*') {
			set.wildcards = appendUnique(set.wildcards, p)
		} else {
			set.literals[p] = struct{}{}
		}
	}
	return set, nil
}

// Union combines matchers into one. Nested unions are flattened and adjacent
// pattern-set leaves merged, so a union of leaves stays a single leaf.
func Union(matchers ...Matcher) Matcher {
	var merged *patternSet
	children := make([]Matcher, 0, len(matchers))

	var add func(m Matcher)
	add = func(m Matcher) {
		switch v := m.(type) {
		case nil:
		case emptyMatcher:
		case *unionMatcher:
			for _, c := range v.children {
				add(c)
			}
		case *patternSet:
			if merged == nil {
				merged = &patternSet{literals: make(map[string]struct{})}
			}
			for lit := range v.literals {
				merged.literals[lit] = struct{}{}
			}
			for _, w := range v.wildcards {
				merged.wildcards = appendUnique(merged.wildcards, w)
			}
		default:
			children = append(children, m)
		}
	}
	for _, m := range matchers {
		add(m)
	}

	if merged != nil {
		children = append(children, merged)
	}
	switch len(children) {
	case 0:
		return Empty()
	case 1:
		return children[0]
	}
	return &unionMatcher{children: children}
}

// Difference returns a matcher for actions matched by include and not by
// exclude.
func Difference(include, exclude Matcher) Matcher {
	if include == nil {
		return Empty()
	}
	if exclude == nil {
		return include
	}
	if _, ok := exclude.(emptyMatcher); ok {
		return include
	}
	return &differenceMatcher{include: include, exclude: exclude}
}

func appendUnique(patterns []string, p string) []string {
	for _, existing := range patterns {
		if existing == p {
			return patterns
		}
	}
	return append(patterns, p)
}

// wildcardMatch tests s against a pattern where '*' matches any run of
// characters. Greedy two-pointer scan with backtracking to the last star.
func wildcardMatch(pattern, s string) bool {
	pi, si := 0, 0
	star, mark := -1, 0

	for si < len(s) {
		switch {
		case pi < len(pattern) && pattern[pi] == '*':
			star = pi
			mark = si
			pi++
		case pi < len(pattern) && pattern[pi] == s[si]:
			pi++
			si++
		case star >= 0:
			pi = star + 1
			mark++
			si = mark
		default:
			return false
		}
	}
	for pi < len(pattern) && pattern[pi] == '*' {
		pi++
	}
	return pi == len(pattern)
}
