package op_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravwell/osguard/op"
)

func TestFilesystemOp_OperationIDIsStableAcrossCalls(t *testing.T) {
	o := op.NewFileReadOp("/etc/hosts")
	id1 := o.OperationID()
	id2 := o.OperationID()
	assert.Equal(t, id1, id2)
	assert.NotEmpty(t, id1)
}

func TestFilesystemOp_DistinctOperationsGetDistinctIDs(t *testing.T) {
	a := op.NewFileReadOp("/etc/hosts")
	b := op.NewFileReadOp("/etc/hosts")
	assert.NotEqual(t, a.OperationID(), b.OperationID())
}

func TestFilesystemOp_RequiredPermissionsIsPure(t *testing.T) {
	o := op.NewFileWriteOp("/data/out.txt", []byte("x"), false)
	first := o.RequiredPermissions()
	second := o.RequiredPermissions()
	require.Len(t, first, 1)
	assert.Equal(t, first, second)
	assert.Equal(t, "file:write", first[0].String())
}

func TestFilesystemOp_OperationType(t *testing.T) {
	o := op.NewFileReadOp("/etc/hosts")
	assert.Equal(t, op.TypeFilesystem, o.OperationType())
}

func TestProcessOp_SpawnRequiresProcessSpawnPermission(t *testing.T) {
	o := op.NewProcessSpawnOp("/bin/true", nil, nil, "")
	perms := o.RequiredPermissions()
	require.Len(t, perms, 1)
	assert.Equal(t, "process:spawn", perms[0].String())
	assert.Equal(t, op.TypeProcess, o.OperationType())
}

func TestNetworkOp_ConnectCarriesAddressAsResource(t *testing.T) {
	o := op.NewNetworkConnectOp("example.com:443", 5*time.Second)
	perms := o.RequiredPermissions()
	require.Len(t, perms, 1)
	assert.Equal(t, "example.com:443", perms[0].Resource)
}

func TestPermission_StringIsCanonicalColonForm(t *testing.T) {
	cases := []struct {
		p    op.Permission
		want string
	}{
		{op.FilesystemRead("/x"), "file:read"},
		{op.FilesystemWrite("/x"), "file:write"},
		{op.ProcessSpawn(), "process:spawn"},
		{op.ProcessManage(), "process:manage"},
		{op.NetworkConnect("a:1"), "network:connect"},
		{op.NetworkSocket(), "network:socket"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.p.String())
	}
}

func TestType_StringNamesEveryDomain(t *testing.T) {
	assert.Equal(t, "filesystem", op.TypeFilesystem.String())
	assert.Equal(t, "process", op.TypeProcess.String())
	assert.Equal(t, "network", op.TypeNetwork.String())
	assert.Equal(t, "utility", op.TypeUtility.String())
}

func TestFilesystemOp_CreatedAtIsSetAtConstruction(t *testing.T) {
	o := op.NewFileReadOp("/etc/hosts")
	assert.False(t, o.CreatedAt().IsZero())
}
