package security

import (
	"context"
	"fmt"

	"github.com/gravwell/osguard/audit"
	"github.com/gravwell/osguard/engine"
	"github.com/gravwell/osguard/execctx"
	"github.com/gravwell/osguard/obslog"
	"github.com/gravwell/osguard/op"
)

// Config tunes the security middleware's behavior beyond policy
// evaluation.
type Config struct {
	// FailOpen is carried as configuration only: no code in this package
	// reads it, and an audit-sink failure never changes a policy decision
	// whatever its value. Default false.
	FailOpen bool
	// Logging enables the PolicyEvaluated outcome audit record emitted
	// from AfterExecution/OnError. Default true.
	Logging bool
}

// DefaultConfig returns the spec-mandated defaults: fail-open false,
// logging true.
func DefaultConfig() Config { return Config{FailOpen: false, Logging: true} }

// Middleware is the security-enforcement layer. Policies are stored as
// trait-object-equivalent Policy interface values — the one intentional
// dynamic-dispatch site in the core, since the policy set is
// runtime-configured and heterogeneous (spec.md §9); the outer middleware
// chain built by package compose remains fully monomorphic.
type Middleware[O op.Operation] struct {
	policies []Policy
	sink     audit.Sink
	cfg      Config
}

// NewMiddleware builds a security middleware with the given policies
// (insertion order matters: ANY-deny-wins short-circuits on first deny,
// in list order) and audit sink.
func NewMiddleware[O op.Operation](sink audit.Sink, cfg Config, policies ...Policy) *Middleware[O] {
	return &Middleware[O]{policies: policies, sink: sink, cfg: cfg}
}

func (m *Middleware[O]) Priority() uint32 { return engine.PrioritySecurity }
func (m *Middleware[O]) Name() string     { return "security" }

// BeforeExecution implements engine.Middleware. It unconditionally
// populates security attributes (other layers may want them even absent
// policies), then enforces deny-by-default and ANY-deny-wins.
func (m *Middleware[O]) BeforeExecution(goCtx context.Context, operation O, ectx *execctx.ExecutionContext) (*O, error) {
	for _, perm := range operation.RequiredPermissions() {
		resource, permission := aclAttributes(perm)
		ectx.Security.SetAttribute(AttrACLResource, resource)
		ectx.Security.SetAttribute(AttrACLPermission, permission)
		ectx.Security.SetAttribute(AttrRBACRequiredPermission, rbacAttribute(perm))
		break // first declared permission wins; see bridge.go.
	}

	if len(m.policies) == 0 {
		m.audit(goCtx, audit.AccessDenied, operation, ectx, "deny", "", "no policies configured")
		return nil, engine.NewSecurityViolation("no policies configured")
	}

	for _, p := range m.policies {
		decision := p.Evaluate(ectx.Security)
		switch decision.Kind {
		case Deny:
			m.audit(goCtx, audit.AccessDenied, operation, ectx, "deny", p.Description(), decision.Reason)
			return nil, engine.NewSecurityViolation(fmt.Sprintf("%s: %s", p.Description(), decision.Reason))
		case RequireAdditionalAuth:
			ectx.Security.RequireAdditionalAuth(decision.AuthKind)
			m.audit(goCtx, audit.AuthenticationRequired, operation, ectx, "require_additional_auth", p.Description(), decision.AuthKind)
		}
	}

	m.audit(goCtx, audit.AccessGranted, operation, ectx, "allow", "", "")
	return nil, nil
}

// AfterExecution emits a PolicyEvaluated outcome record when Logging is
// enabled; it never replaces the result.
func (m *Middleware[O]) AfterExecution(goCtx context.Context, operation O, result *engine.ExecutionResult, ectx *execctx.ExecutionContext) (*engine.ExecutionResult, error) {
	if m.cfg.Logging {
		m.audit(goCtx, audit.PolicyEvaluated, operation, ectx, "success", "", "")
	}
	return nil, nil
}

// OnError emits a PolicyEvaluated outcome record on failure and always
// continues propagation — the security middleware does not second-guess
// executor failures.
func (m *Middleware[O]) OnError(goCtx context.Context, operation O, cause error, ectx *execctx.ExecutionContext) (engine.ErrorAction, error) {
	if m.cfg.Logging {
		m.audit(goCtx, audit.PolicyEvaluated, operation, ectx, "error: "+cause.Error(), "", "")
	}
	return engine.ErrorAction{Kind: engine.Continue}, nil
}

func (m *Middleware[O]) audit(goCtx context.Context, event audit.EventKind, operation O, ectx *execctx.ExecutionContext, decision, policyName, reason string) {
	if m.sink == nil {
		return
	}
	meta := map[string]string{"correlation_id": ectx.CorrelationID}
	if reason != "" {
		meta["reason"] = reason
	}
	record := audit.NewRecord(event, operation.OperationID(), ectx.Security.Principal, ectx.Security.SessionID, decision, policyName, meta)
	if err := m.sink.LogEvent(goCtx, record); err != nil {
		// Audit failures are logged here (and counted by sinks that
		// implement audit.FailureCounter) but never surfaced to the
		// caller — see oserr.KindAuditFailure and spec.md §7.
		obslog.Logger().WithFields(obslog.Fields{
			"middleware":   m.Name(),
			"operation_id": operation.OperationID(),
			"error":        err.Error(),
		}).Warn("audit sink failed")
	}
}
