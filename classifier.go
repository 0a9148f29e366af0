package goGrant

// actionClassifier decides whether a lowercased token already denotes a
// concrete action identifier or pattern, as opposed to a symbolic privilege
// name that needs catalog lookup. A token is a literal action exactly when
// the catalog's maximal ("all") matcher accepts it: anything inside the
// space of real cluster actions needs no symbolic resolution.
type actionClassifier struct {
	actionMatcher Matcher
}

func (c actionClassifier) isLiteralAction(token string) bool {
	return c.actionMatcher.Matches(token)
}

// actionToPattern normalizes a literal action token into the pattern used
// for matching: the token with "*" appended.
//
// Rule: an action grants itself and every suffix-extension of itself. The
// cluster action naming convention derives sub-action names by extending
// the parent name ("cluster:admin/snapshot/status" has sub-actions
// "cluster:admin/snapshot/status[nodes]" etc.), so a bare trailing
// wildcard covers exactly the action plus its sub-actions. If the naming
// convention ever introduces sub-actions that are not suffix-extensions,
// this rule is the single place to change.
func actionToPattern(token string) string {
	return token + "*"
}
