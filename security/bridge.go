package security

import (
	"github.com/gravwell/osguard/execctx"
	"github.com/gravwell/osguard/op"
)

// Attribute key namespaces. No policy may read outside its own namespace —
// this is an architectural invariant, not a convention (spec.md §4.5).
const (
	AttrACLResource           = "acl.resource"
	AttrACLPermission         = "acl.permission"
	AttrRBACRequiredPermission = "rbac.required_permission"
)

// aclAttributes is the pure per-permission-kind mapping producing the
// (acl.resource, acl.permission) pair for the ACL domain.
func aclAttributes(p op.Permission) (resource, permission string) {
	return p.Resource, p.String()
}

// rbacAttribute is the pure per-permission-kind mapping producing the
// rbac.required_permission value for the RBAC domain.
func rbacAttribute(p op.Permission) string {
	return p.String()
}

// BuildSecurityContext constructs a SecurityContext for user by walking
// operation.RequiredPermissions() and invoking both the ACL and RBAC
// builders per permission. Multi-permission operations use the first
// declared permission for attribute population — every current operation
// declares exactly one, and the attribute map collapses duplicates, so
// this is forward-compatible; see spec.md §9 Open Questions.
func BuildSecurityContext(user string, operation op.Operation) *execctx.SecurityContext {
	sc := execctx.NewSecurityContext(user)
	perms := operation.RequiredPermissions()
	if len(perms) == 0 {
		return sc
	}
	first := perms[0]

	resource, permission := aclAttributes(first)
	sc.SetAttribute(AttrACLResource, resource)
	sc.SetAttribute(AttrACLPermission, permission)
	sc.SetAttribute(AttrRBACRequiredPermission, rbacAttribute(first))
	return sc
}
