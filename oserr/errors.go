// Package oserr defines the canonical error taxonomy shared by every layer
// of the middleware core. The platform executors, the composition layer and
// the tier-3 helpers report failures as an *Error with one of the Kind
// values below; an error from a custom executor or an ErrorAction
// replacement passes through unchanged. Packages outside the executor
// chain (authreq, config, the audit sinks) return ordinary errors.
package oserr

import (
	"errors"
	"fmt"
)

// Kind identifies the category of a failure. Callers that need to branch on
// failure category should compare Kind, not the error string.
type Kind int

const (
	// KindSecurityViolation means a policy denied the operation.
	KindSecurityViolation Kind = iota
	// KindPermissionDenied means the OS itself refused the operation.
	KindPermissionDenied
	// KindNotFound means the target resource does not exist.
	KindNotFound
	// KindExecutionFailed means the OS call failed for some other reason.
	KindExecutionFailed
	// KindMiddlewareFailed means a middleware hook returned Fatal or an
	// unhandled NonFatal.
	KindMiddlewareFailed
	// KindAuditFailure means the audit sink failed. Never surfaced to a
	// helper caller; logged and counted only.
	KindAuditFailure
	// KindInvalidOperation means operation construction or validation failed.
	KindInvalidOperation
	// KindTimeout means an operation-specific timeout elapsed.
	KindTimeout
)

func (k Kind) String() string {
	switch k {
	case KindSecurityViolation:
		return "security_violation"
	case KindPermissionDenied:
		return "permission_denied"
	case KindNotFound:
		return "not_found"
	case KindExecutionFailed:
		return "execution_failed"
	case KindMiddlewareFailed:
		return "middleware_failed"
	case KindAuditFailure:
		return "audit_failure"
	case KindInvalidOperation:
		return "invalid_operation"
	case KindTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Error is the single structured error type returned from any layer of the
// core. Fields beyond Kind/Message are populated as the failure context
// allows; zero values are not mistaken for "unset" anywhere in this module.
type Error struct {
	Kind Kind
	// Message is a human-readable description.
	Message string
	// Resource is the path, address, or other resource name implicated,
	// when applicable (PermissionDenied, NotFound).
	Resource string
	// Policy names the source of a denial, when Kind is
	// KindSecurityViolation. When package compose builds the error from a
	// middleware hook's SecurityViolation, Policy holds that middleware's
	// Name() (e.g. "security"), not the name of an individual policy;
	// security.Middleware puts the denying policy's description at the
	// start of its reason, which becomes Message.
	Policy string
	// MiddlewareName names the offending middleware, when Kind is
	// KindMiddlewareFailed.
	MiddlewareName string
	// OperationID and Principal are attached by the orchestrator so that
	// every surfaced error carries call context, per spec.
	OperationID string
	Principal   string
	// Wrapped is the underlying cause, if any.
	Wrapped error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil osguard error>"
	}
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Message)
	if e.Resource != "" {
		msg += fmt.Sprintf(" (resource=%s)", e.Resource)
	}
	if e.Policy != "" {
		msg += fmt.Sprintf(" (policy=%s)", e.Policy)
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Wrapped
}

// Is supports errors.Is(err, oserr.Sentinel(oserr.KindX)) style checks by
// matching against a sentinel *Error carrying only a Kind.
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) && other.Message == "" && other.Wrapped == nil {
		return e.Kind == other.Kind
	}
	return false
}

// Sentinel returns a comparison target for errors.Is(err, oserr.Sentinel(KindX)).
func Sentinel(k Kind) error {
	return &Error{Kind: k}
}

// SecurityViolation constructs a policy-denial error.
func SecurityViolation(policy, reason string) *Error {
	return &Error{Kind: KindSecurityViolation, Message: reason, Policy: policy}
}

// PermissionDenied constructs an OS-level permission error.
func PermissionDenied(resource string, cause error) *Error {
	return &Error{Kind: KindPermissionDenied, Message: "permission denied", Resource: resource, Wrapped: cause}
}

// NotFound constructs a missing-resource error.
func NotFound(resource string) *Error {
	return &Error{Kind: KindNotFound, Message: "resource not found", Resource: resource}
}

// ExecutionFailed constructs a generic OS-call failure.
func ExecutionFailed(reason string, cause error) *Error {
	return &Error{Kind: KindExecutionFailed, Message: reason, Wrapped: cause}
}

// MiddlewareFailed constructs a middleware-hook failure.
func MiddlewareFailed(name, reason string) *Error {
	return &Error{Kind: KindMiddlewareFailed, Message: reason, MiddlewareName: name}
}

// AuditFailure constructs an audit-sink failure. Never returned to a helper
// caller; see package audit.
func AuditFailure(reason string, cause error) *Error {
	return &Error{Kind: KindAuditFailure, Message: reason, Wrapped: cause}
}

// InvalidOperation constructs an operation-construction/validation failure.
func InvalidOperation(reason string) *Error {
	return &Error{Kind: KindInvalidOperation, Message: reason}
}

// Timeout constructs a timeout failure.
func Timeout(kind string) *Error {
	return &Error{Kind: KindTimeout, Message: "timed out", Resource: kind}
}

// WithContext attaches orchestrator-level call context to err in place,
// returning the same error for chaining. No-op for non-*Error values.
func WithContext(err error, operationID, principal string) error {
	var e *Error
	if errors.As(err, &e) {
		e.OperationID = operationID
		e.Principal = principal
	}
	return err
}
