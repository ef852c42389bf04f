package oserr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravwell/osguard/oserr"
)

func TestError_StringIncludesResourceAndPolicy(t *testing.T) {
	err := oserr.SecurityViolation("acl", "denied by default")
	msg := err.Error()
	assert.Contains(t, msg, "security_violation")
	assert.Contains(t, msg, "denied by default")
	assert.Contains(t, msg, "policy=acl")
}

func TestError_UnwrapReturnsWrappedCause(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := oserr.ExecutionFailed("spawn failed", cause)
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestError_IsMatchesByKindViaSentinel(t *testing.T) {
	err := oserr.NotFound("/etc/hosts")
	assert.True(t, errors.Is(err, oserr.Sentinel(oserr.KindNotFound)))
	assert.False(t, errors.Is(err, oserr.Sentinel(oserr.KindPermissionDenied)))
}

func TestError_NilErrorStringDoesNotPanic(t *testing.T) {
	var err *oserr.Error
	assert.Equal(t, "<nil osguard error>", err.Error())
}

func TestWithContext_AttachesOperationIDAndPrincipal(t *testing.T) {
	err := oserr.InvalidOperation("bad path")
	result := oserr.WithContext(err, "op-123", "alice")

	var e *oserr.Error
	require.True(t, errors.As(result, &e))
	assert.Equal(t, "op-123", e.OperationID)
	assert.Equal(t, "alice", e.Principal)
}

func TestWithContext_NoopOnNonOserrError(t *testing.T) {
	err := fmt.Errorf("plain error")
	result := oserr.WithContext(err, "op-123", "alice")
	assert.Equal(t, err, result)
}

func TestPermissionDenied_WrapsCauseInMessage(t *testing.T) {
	cause := fmt.Errorf("EACCES")
	err := oserr.PermissionDenied("/data/secret", cause)
	assert.Contains(t, err.Error(), "EACCES")
	assert.Contains(t, err.Error(), "/data/secret")
}
