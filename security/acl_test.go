package security_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravwell/osguard/execctx"
	"github.com/gravwell/osguard/security"
)

func sc(principal string, attrs map[string]string) *execctx.SecurityContext {
	s := execctx.NewSecurityContext(principal)
	for k, v := range attrs {
		s.SetAttribute(k, v)
	}
	return s
}

func TestACL_NoMatchingAttributes_Allows(t *testing.T) {
	acl := security.NewACL()
	d := acl.Evaluate(sc("alice", nil))
	assert.Equal(t, security.Allow, d.Kind)
}

func TestACL_NoMatchingEntry_UsesDefault(t *testing.T) {
	acl := security.NewACL()
	ctx := sc("alice", map[string]string{security.AttrACLResource: "/x", security.AttrACLPermission: "file:read"})
	d := acl.Evaluate(ctx)
	require.Equal(t, security.Deny, d.Kind)
}

func TestACL_FirstMatchWins(t *testing.T) {
	acl := security.NewACL(
		security.AclEntry{Identity: "alice", ResourcePattern: "/secret/*", PermissionPatterns: []string{"*"}, Allow: false},
		security.AclEntry{Identity: "alice", ResourcePattern: "/secret/*", PermissionPatterns: []string{"*"}, Allow: true},
	)
	ctx := sc("alice", map[string]string{security.AttrACLResource: "/secret/file.txt", security.AttrACLPermission: "file:read"})
	d := acl.Evaluate(ctx)
	require.Equal(t, security.Deny, d.Kind)
}

func TestACL_GlobDenyThenAllow(t *testing.T) {
	acl := security.NewACL(
		security.AclEntry{Identity: "alice", ResourcePattern: "/secret/*", PermissionPatterns: []string{"*"}, Allow: false},
		security.AclEntry{Identity: "alice", ResourcePattern: "/data/*", PermissionPatterns: []string{"file:read"}, Allow: true},
	)

	deny := acl.Evaluate(sc("alice", map[string]string{security.AttrACLResource: "/secret/file.txt", security.AttrACLPermission: "file:read"}))
	require.Equal(t, security.Deny, deny.Kind)

	allow := acl.Evaluate(sc("alice", map[string]string{security.AttrACLResource: "/data/file.txt", security.AttrACLPermission: "file:read"}))
	require.Equal(t, security.Allow, allow.Kind)
}

func TestACL_ResourceMismatchDoesNotMatch(t *testing.T) {
	acl := security.NewACL(
		security.AclEntry{Identity: "alice", ResourcePattern: "/data/*", PermissionPatterns: []string{"file:read"}, Allow: true},
	)
	d := acl.Evaluate(sc("alice", map[string]string{security.AttrACLResource: "/other/file.txt", security.AttrACLPermission: "file:read"}))
	assert.Equal(t, security.Deny, d.Kind) // falls through to default deny
}

func TestACL_WildcardAllowsAnyOperation(t *testing.T) {
	acl := security.NewACL(security.AclEntry{Identity: "admin", ResourcePattern: "*", PermissionPatterns: []string{"*"}, Allow: true})
	d := acl.Evaluate(sc("admin", map[string]string{security.AttrACLResource: "/anything/at/all", security.AttrACLPermission: "process:spawn"}))
	assert.Equal(t, security.Allow, d.Kind)
}

func TestACL_EmptyPrincipalIdentityMatch(t *testing.T) {
	acl := security.NewACL(security.AclEntry{Identity: "", ResourcePattern: "*", PermissionPatterns: []string{"*"}, Allow: true})
	d := acl.Evaluate(sc("", map[string]string{security.AttrACLResource: "/x", security.AttrACLPermission: "file:read"}))
	assert.Equal(t, security.Allow, d.Kind)
}
