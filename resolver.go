package goGrant

import (
	"fmt"
	"strings"
)

// resolver combines a token set into one Privilege. It is pure: the same
// set content always yields a behaviorally identical result, and a failed
// resolution leaves no state behind.
type resolver struct {
	catalog    *catalog
	classifier actionClassifier
	engine     AutomatonEngine
}

// resolve requires a non-empty, deduplicated, sorted token set — the cache
// owns the empty-set shortcut and the set canonicalization.
func (r *resolver) resolve(names []string) (*Privilege, error) {
	if len(names) == 0 {
		return nil, ErrEmptyPrivilegeSet
	}

	var actions []string
	matchers := make([]Matcher, 0, len(names))

	for _, raw := range names {
		token := strings.ToLower(raw)
		if r.classifier.isLiteralAction(token) {
			actions = append(actions, actionToPattern(token))
			continue
		}

		priv, ok := r.catalog.lookup(token)
		if !ok {
			valid := r.catalog.validNames()
			return nil, &UnknownPrivilegeError{
				Requested: names,
				Unknown:   raw,
				// Copied: the error fields are public and the catalog slice
				// is shared across resolutions.
				Valid: append(make([]string, 0, len(valid)), valid...),
			}
		}
		if len(names) == 1 {
			// Single symbolic name: hand back the catalog entry itself
			// instead of allocating an equivalent composite.
			return priv, nil
		}
		matchers = append(matchers, priv.matcher)
	}

	if len(actions) > 0 {
		m, err := r.engine.Compile(actions)
		if err != nil {
			return nil, fmt.Errorf("compile action patterns %v: %w", actions, err)
		}
		matchers = append(matchers, m)
	}

	return newPrivilege(names, r.engine.Union(matchers)), nil
}
