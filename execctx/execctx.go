// Package execctx holds the per-call context types: the security-relevant
// principal/attribute bundle (SecurityContext) and the owning per-execution
// envelope (ExecutionContext).
package execctx

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// SecurityContext carries the identity an operation executes on behalf of,
// plus the namespaced attribute map policies read from. Attribute keys are
// namespaced by domain (acl.*, rbac.*); no policy may read outside its own
// namespace — see package security.
type SecurityContext struct {
	Principal string
	SessionID *string

	mu         sync.RWMutex
	attributes map[string]string

	// additionalAuthRequired records step-up auth requirements pushed by
	// RequireAdditionalAuth policy decisions; composition treats the
	// decision as Allow but preserves this for downstream inspection.
	additionalAuthRequired []string
}

// NewSecurityContext builds a SecurityContext for principal.
func NewSecurityContext(principal string) *SecurityContext {
	return &SecurityContext{Principal: principal, attributes: make(map[string]string)}
}

// WithSessionID sets the optional session identifier and returns sc for
// chaining at construction time.
func (sc *SecurityContext) WithSessionID(sessionID string) *SecurityContext {
	sc.SessionID = &sessionID
	return sc
}

// SetAttribute writes a namespaced key/value pair. Safe for concurrent use,
// though within one execute call access is serial per §5.
func (sc *SecurityContext) SetAttribute(key, value string) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.attributes[key] = value
}

// PrincipalName satisfies security.SecurityContextView.
func (sc *SecurityContext) PrincipalName() string { return sc.Principal }

// Attribute reads a namespaced key, returning ("", false) if absent.
func (sc *SecurityContext) Attribute(key string) (string, bool) {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	v, ok := sc.attributes[key]
	return v, ok
}

// Attributes returns a snapshot copy of the attribute map.
func (sc *SecurityContext) Attributes() map[string]string {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	out := make(map[string]string, len(sc.attributes))
	for k, v := range sc.attributes {
		out[k] = v
	}
	return out
}

// RequireAdditionalAuth records a step-up authentication requirement
// pushed by a PolicyDecision without denying the operation.
func (sc *SecurityContext) RequireAdditionalAuth(kind string) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.additionalAuthRequired = append(sc.additionalAuthRequired, kind)
}

// PendingAdditionalAuth returns the step-up requirements recorded so far.
func (sc *SecurityContext) PendingAdditionalAuth() []string {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	out := make([]string, len(sc.additionalAuthRequired))
	copy(out, sc.additionalAuthRequired)
	return out
}

// ExecutionContext owns a SecurityContext for the lifetime of exactly one
// operation execution. It is never shared across operations.
type ExecutionContext struct {
	Security      *SecurityContext
	CorrelationID string
	CreatedAt     time.Time
}

// New builds an ExecutionContext wrapping sc, stamping a fresh correlation
// id and creation timestamp.
func New(sc *SecurityContext) *ExecutionContext {
	return &ExecutionContext{
		Security:      sc,
		CorrelationID: uuid.NewString(),
		CreatedAt:     time.Now().UTC(),
	}
}
