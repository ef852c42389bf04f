package audit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravwell/osguard/audit"
)

func TestNewRecord_StampsTimestampAndCopiesMetadata(t *testing.T) {
	meta := map[string]string{"resource": "/etc/hosts"}
	record := audit.NewRecord(audit.AccessGranted, "op-1", "alice", nil, "allow", "acl", meta)

	meta["resource"] = "mutated"
	assert.Equal(t, "/etc/hosts", record.Metadata["resource"], "NewRecord must copy the metadata map")
	assert.False(t, record.Timestamp.IsZero())
}

func TestEventKind_StringNamesEveryKind(t *testing.T) {
	cases := map[audit.EventKind]string{
		audit.AccessGranted:          "access_granted",
		audit.AccessDenied:           "access_denied",
		audit.SecurityViolation:      "security_violation",
		audit.AuthenticationRequired: "authentication_required",
		audit.PolicyEvaluated:        "policy_evaluated",
	}
	for kind, want := range cases {
		assert.Equal(t, want, kind.String())
	}
}

func TestNullSink_RetainsRecordsOnlyWhenKeepTrue(t *testing.T) {
	discarding := audit.NewNullSink(false)
	require.NoError(t, discarding.LogEvent(context.Background(), audit.NewRecord(audit.AccessGranted, "op-1", "alice", nil, "allow", "", nil)))
	assert.Empty(t, discarding.Records())

	keeping := audit.NewNullSink(true)
	require.NoError(t, keeping.LogEvent(context.Background(), audit.NewRecord(audit.AccessGranted, "op-1", "alice", nil, "allow", "", nil)))
	require.Len(t, keeping.Records(), 1)
}

func TestFailingSink_BumpsFailureCounterOnEveryCall(t *testing.T) {
	sink := &audit.FailingSink{}
	require.Error(t, sink.LogEvent(context.Background(), audit.Record{}))
	require.Error(t, sink.Flush(context.Background()))
	assert.Equal(t, uint64(2), sink.AuditFailures())
}

func TestConsoleSink_LogEventNeverErrors(t *testing.T) {
	var buf writerStub
	sink := audit.NewConsoleSink(&buf)
	err := sink.LogEvent(context.Background(), audit.NewRecord(audit.AccessDenied, "op-2", "bob", nil, "deny", "rbac", nil))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "op-2")
}

type writerStub struct {
	data []byte
}

func (w *writerStub) Write(p []byte) (int, error) {
	w.data = append(w.data, p...)
	return len(p), nil
}

func (w *writerStub) String() string { return string(w.data) }
