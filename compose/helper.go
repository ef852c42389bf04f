package compose

import (
	"github.com/gravwell/osguard/engine"
	"github.com/gravwell/osguard/op"
)

// ComposedHelper pairs an Executor with the operation type it serves. It is
// the generic backbone tier-3 builders (FileHelper, ProcessHelper,
// NetworkHelper) are built from; Go has no generic methods, so the
// `.with_middleware<M>(m)` variant from spec.md §4.2 is expressed as the
// free function WithMiddleware below rather than a method.
type ComposedHelper[O op.Operation, E engine.Executor[O]] struct {
	Exec E
}

// NewComposedHelper wraps an already-built executor.
func NewComposedHelper[O op.Operation, E engine.Executor[O]](exec E) ComposedHelper[O, E] {
	return ComposedHelper[O, E]{Exec: exec}
}

// WithMiddleware composes mw around h's executor, returning a new
// ComposedHelper whose type captures the resulting Wrap instantiation.
// Builders are consuming: the previous Exec value is moved into the Wrap.
func WithMiddleware[O op.Operation, E engine.Executor[O], M engine.Middleware[O]](h ComposedHelper[O, E], mw M) ComposedHelper[O, Wrap[O, E, M]] {
	return ComposedHelper[O, Wrap[O, E, M]]{Exec: With[O](h.Exec, mw)}
}
