// Package engine defines the core generic contracts: Executor, Middleware,
// and the result/error vocabulary the composition layer (package compose)
// wires them together with. Every type here is parameterized over a
// concrete op.Operation type so the outer middleware chain dispatches
// statically — see package compose for the zero-overhead wrapping.
package engine

import (
	"context"
	"time"

	"github.com/gravwell/osguard/execctx"
	"github.com/gravwell/osguard/op"
)

// ExecutionResult is produced by the innermost executor and may be
// replaced by any enclosing middleware's AfterExecution hook.
type ExecutionResult struct {
	Output    []byte
	ExitCode  int
	StartedAt time.Time
	EndedAt   time.Time
	Metadata  map[string]string
}

// Executor performs a concrete operation. Implementations are long-lived,
// cheap to share, and safe to hold by reference across many calls.
type Executor[O op.Operation] interface {
	Execute(ctx context.Context, operation O, ectx *execctx.ExecutionContext) (*ExecutionResult, error)
	Name() string
	SupportedOperationTypes() []op.Type
}

// Validator is an optional capability an Executor may additionally
// implement for pre-flight checks.
type Validator[O op.Operation] interface {
	ValidateOperation(operation O, ectx *execctx.ExecutionContext) error
}

// Cleaner is an optional capability an Executor may additionally implement
// to release per-context resources after execution.
type Cleaner[O op.Operation] interface {
	Cleanup(ectx *execctx.ExecutionContext) error
}
