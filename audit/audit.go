// Package audit defines the security audit record and the pluggable sink
// behavior the security middleware emits records to. Persistent storage is
// out of scope per spec.md Non-goals; sinks here are console, null and an
// always-failing test sink only, the
// way the spec's §6.2 leaves room for deployment-specific backends.
package audit

import (
	"context"
	"sync"
	"time"
)

// EventKind enumerates the audit record categories the security middleware
// emits.
type EventKind int

const (
	AccessGranted EventKind = iota
	AccessDenied
	SecurityViolation
	AuthenticationRequired
	PolicyEvaluated
)

func (k EventKind) String() string {
	switch k {
	case AccessGranted:
		return "access_granted"
	case AccessDenied:
		return "access_denied"
	case SecurityViolation:
		return "security_violation"
	case AuthenticationRequired:
		return "authentication_required"
	case PolicyEvaluated:
		return "policy_evaluated"
	default:
		return "unknown"
	}
}

// Record is an immutable post-construction audit entry.
type Record struct {
	Timestamp   time.Time
	Event       EventKind
	OperationID string
	Principal   string
	SessionID   *string
	Decision    string
	PolicyName  string
	Metadata    map[string]string
}

// NewRecord stamps Timestamp and returns an immutable Record. Metadata is
// copied so the caller's map may be reused or mutated afterward.
func NewRecord(event EventKind, operationID, principal string, sessionID *string, decision, policyName string, metadata map[string]string) Record {
	m := make(map[string]string, len(metadata))
	for k, v := range metadata {
		m[k] = v
	}
	return Record{
		Timestamp:   time.Now().UTC(),
		Event:       event,
		OperationID: operationID,
		Principal:   principal,
		SessionID:   sessionID,
		Decision:    decision,
		PolicyName:  policyName,
		Metadata:    m,
	}
}

// Sink is the asynchronous audit-logging behavior injected into the
// security middleware. Implementations must be thread-safe; the security
// middleware does not block its own return on LogEvent completing when the
// sink itself does not block (ConsoleSink below is synchronous and cheap
// enough not to matter in practice).
type Sink interface {
	LogEvent(ctx context.Context, record Record) error
	Flush(ctx context.Context) error
}

// FailureCounter is optional telemetry a Sink may additionally expose.
type FailureCounter interface {
	AuditFailures() uint64
}

// counting embeds a shared failure counter for sinks that want it without
// duplicating the bookkeeping.
type counting struct {
	failures uint64
	mu       sync.Mutex
}

func (c *counting) bump() {
	c.mu.Lock()
	c.failures++
	c.mu.Unlock()
}

func (c *counting) AuditFailures() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.failures
}
