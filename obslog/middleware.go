package obslog

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/gravwell/osguard/engine"
	"github.com/gravwell/osguard/execctx"
	"github.com/gravwell/osguard/op"
)

// Middleware is the tier-3 "logger" layer: it traces the before/after
// hooks at debug level and failures at warn level, and never vetoes or
// replaces anything. Priority 200 per convention (logging sits outside
// security); as for every middleware, its place in a chain is set by the
// order of wrapping, not by Priority.
type Middleware[O op.Operation] struct {
	log *logrus.Logger
}

// NewMiddleware builds a logging middleware against the package-global
// logger. Pass a scoped *logrus.Logger via NewMiddlewareWith for isolation.
func NewMiddleware[O op.Operation]() *Middleware[O] {
	return &Middleware[O]{log: Logger()}
}

func NewMiddlewareWith[O op.Operation](log *logrus.Logger) *Middleware[O] {
	return &Middleware[O]{log: log}
}

func (m *Middleware[O]) Priority() uint32 { return engine.PriorityLogger }
func (m *Middleware[O]) Name() string     { return "logger" }

func (m *Middleware[O]) BeforeExecution(_ context.Context, operation O, ectx *execctx.ExecutionContext) (*O, error) {
	m.log.WithFields(Fields{
		"operation_id":   operation.OperationID(),
		"operation_type": operation.OperationType().String(),
		"correlation_id": ectx.CorrelationID,
		"principal":      ectx.Security.Principal,
	}).Debug("executing operation")
	return nil, nil
}

func (m *Middleware[O]) AfterExecution(_ context.Context, operation O, result *engine.ExecutionResult, ectx *execctx.ExecutionContext) (*engine.ExecutionResult, error) {
	m.log.WithFields(Fields{
		"operation_id":   operation.OperationID(),
		"correlation_id": ectx.CorrelationID,
		"exit_code":      result.ExitCode,
	}).Debug("operation completed")
	return nil, nil
}

func (m *Middleware[O]) OnError(_ context.Context, operation O, cause error, ectx *execctx.ExecutionContext) (engine.ErrorAction, error) {
	m.log.WithFields(Fields{
		"operation_id":   operation.OperationID(),
		"correlation_id": ectx.CorrelationID,
		"error":          cause.Error(),
	}).Warn("operation failed")
	return engine.ErrorAction{Kind: engine.Continue}, nil
}
