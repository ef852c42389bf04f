package security

import (
	"sync"

	"github.com/gobwas/glob"
)

// AclEntry is one ordered rule in an AccessControlList: an identity, a
// resource pattern, one or more permission patterns, and a decision.
// Identity matching is exact only; wildcard identity matching is an
// explicitly deferred Open Question per spec.md §9.
type AclEntry struct {
	Identity           string
	ResourcePattern    string
	PermissionPatterns []string
	Allow              bool
}

// AccessControlList is an ordered sequence of entries plus a default
// decision, evaluated first-match-wins. NewACL sets Default to Deny per the
// deny-by-default invariant; the zero Decision is Allow, so a list built
// without NewACL has an Allow default unless Default is set.
type AccessControlList struct {
	Entries []AclEntry
	Default Decision

	mu    sync.Mutex
	cache map[string]glob.Glob
}

// NewACL builds an AccessControlList with entries and a Deny default.
// Use WithDefault to override.
func NewACL(entries ...AclEntry) *AccessControlList {
	return &AccessControlList{Entries: entries, Default: DenyDecision("no matching ACL entry")}
}

// WithDefault overrides the default decision and returns the receiver for
// chaining at construction time.
func (a *AccessControlList) WithDefault(d Decision) *AccessControlList {
	a.Default = d
	return a
}

func (a *AccessControlList) Description() string { return "acl" }
func (a *AccessControlList) Scope() Scope         { return ScopeGlobal }

// Evaluate implements Policy. Per §4.3: if acl.resource or acl.permission
// is absent, the ACL has nothing to check and returns Allow.
func (a *AccessControlList) Evaluate(sc SecurityContextView) Decision {
	resource, ok := sc.Attribute(AttrACLResource)
	if !ok {
		return AllowDecision()
	}
	permission, ok := sc.Attribute(AttrACLPermission)
	if !ok {
		return AllowDecision()
	}
	principal := sc.PrincipalName()

	for _, e := range a.Entries {
		if e.Identity != principal {
			continue
		}
		if !a.matchGlob(e.ResourcePattern, resource) {
			continue
		}
		matched := false
		for _, pp := range e.PermissionPatterns {
			if a.matchGlob(pp, permission) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		if e.Allow {
			return AllowDecision()
		}
		return DenyDecision("denied by acl entry for resource pattern " + e.ResourcePattern)
	}
	return a.Default
}

// matchGlob compiles (and caches) pattern, then matches val against it
// using conventional Unix-shell glob semantics: * any-chars, ? single
// char, [set] character class, no implicit anchoring (full-string match).
// Mirrors the teacher's client/types/cbac.go matchGlob helper.
func (a *AccessControlList) matchGlob(pattern, val string) bool {
	a.mu.Lock()
	if a.cache == nil {
		a.cache = make(map[string]glob.Glob)
	}
	g, ok := a.cache[pattern]
	if !ok {
		compiled, err := glob.Compile(pattern)
		if err != nil {
			a.mu.Unlock()
			return false
		}
		g = compiled
		a.cache[pattern] = g
	}
	a.mu.Unlock()
	return g.Match(val)
}
