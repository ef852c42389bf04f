// Package helpers implements the three-tier helper surface from spec.md
// §6.4: tier-1 simple functions, tier-2 *_with_middleware variants, and
// (in package compose) the tier-3 reusable builders these are thin
// wrappers over.
package helpers

import (
	"github.com/gravwell/osguard/audit"
	"github.com/gravwell/osguard/op"
	"github.com/gravwell/osguard/security"
)

// defaultACL allows principal "admin" everything and denies all else,
// matching spec.md §8 end-to-end scenario 1.
func defaultACL() *security.AccessControlList {
	return security.NewACL(security.AclEntry{
		Identity:           "admin",
		ResourcePattern:    "*",
		PermissionPatterns: []string{"*"},
		Allow:              true,
	})
}

// defaultRBAC grants role "admin" every permission in the vocabulary and
// assigns principal "admin" to it.
func defaultRBAC() *security.RoleBasedAccessControl {
	rbac := security.NewRBAC()
	rbac.AddRole(security.NewRole("admin", []string{
		"file:read", "file:write",
		"process:spawn", "process:manage",
		"network:connect", "network:socket",
	}, nil))
	rbac.Assign("admin", "admin")
	return rbac
}

// defaultSecurityMiddleware builds the admin-allows-all security
// middleware with a console audit sink used by every tier-1 helper.
func defaultSecurityMiddleware[O op.Operation]() *security.Middleware[O] {
	return security.NewMiddleware[O](audit.NewConsoleSink(nil), security.DefaultConfig(), defaultACL(), defaultRBAC())
}
