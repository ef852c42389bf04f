package security_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravwell/osguard/security"
)

func TestRBAC_NoRolesAssigned_Denies(t *testing.T) {
	rbac := security.NewRBAC()
	d := rbac.Evaluate(sc("nobody", map[string]string{security.AttrRBACRequiredPermission: "file:read"}))
	require.Equal(t, security.Deny, d.Kind)
}

func TestRBAC_NoRequiredPermissionAttribute_Allows(t *testing.T) {
	rbac := security.NewRBAC()
	d := rbac.Evaluate(sc("nobody", nil))
	assert.Equal(t, security.Allow, d.Kind)
}

func TestRBAC_RoleHierarchy_InheritsThroughParents(t *testing.T) {
	rbac := security.NewRBAC()
	rbac.AddRole(security.NewRole("reader", []string{"file:read"}, nil))
	rbac.AddRole(security.NewRole("editor", []string{"file:write"}, []string{"reader"}))
	rbac.AddRole(security.NewRole("admin", []string{"*"}, []string{"editor"}))
	rbac.Assign("bob", "editor")

	d := rbac.Evaluate(sc("bob", map[string]string{security.AttrRBACRequiredPermission: "file:read"}))
	require.Equal(t, security.Allow, d.Kind)
}

func TestRBAC_MissingPermission_Denies(t *testing.T) {
	rbac := security.NewRBAC()
	rbac.AddRole(security.NewRole("reader", []string{"file:read"}, nil))
	rbac.Assign("bob", "reader")

	d := rbac.Evaluate(sc("bob", map[string]string{security.AttrRBACRequiredPermission: "file:write"}))
	require.Equal(t, security.Deny, d.Kind)
}

func TestRBAC_CircularDependency_DeniesInBoundedTime(t *testing.T) {
	rbac := security.NewRBAC()
	rbac.AddRole(security.NewRole("r1", []string{"p"}, []string{"r2"}))
	rbac.AddRole(security.NewRole("r2", []string{"q"}, []string{"r1"}))
	rbac.Assign("carol", "r1")

	done := make(chan security.Decision, 1)
	go func() {
		done <- rbac.Evaluate(sc("carol", map[string]string{security.AttrRBACRequiredPermission: "p"}))
	}()

	select {
	case d := <-done:
		require.Equal(t, security.Deny, d.Kind)
		assert.Contains(t, d.Reason, "circular")
	case <-time.After(2 * time.Second):
		t.Fatal("RBAC evaluation did not return in bounded time — possible infinite loop")
	}
}

func TestRBAC_DiamondInheritance_NotMisclassifiedAsCycle(t *testing.T) {
	rbac := security.NewRBAC()
	rbac.AddRole(security.NewRole("d", []string{"base"}, nil))
	rbac.AddRole(security.NewRole("b", []string{"b-perm"}, []string{"d"}))
	rbac.AddRole(security.NewRole("c", []string{"c-perm"}, []string{"d"}))
	rbac.AddRole(security.NewRole("a", nil, []string{"b", "c"}))
	rbac.Assign("dave", "a")

	for _, perm := range []string{"base", "b-perm", "c-perm"} {
		d := rbac.Evaluate(sc("dave", map[string]string{security.AttrRBACRequiredPermission: perm}))
		require.Equal(t, security.Allow, d.Kind, "expected %s to be granted via diamond inheritance", perm)
	}
}

func TestRBAC_UnreachableRoleID_SkippedWithoutError(t *testing.T) {
	rbac := security.NewRBAC()
	rbac.Assign("eve", "does-not-exist")
	d := rbac.Evaluate(sc("eve", map[string]string{security.AttrRBACRequiredPermission: "file:read"}))
	assert.Equal(t, security.Deny, d.Kind)
	assert.NotContains(t, d.Reason, "circular")
}
