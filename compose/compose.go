// Package compose implements the composition layer: the extension
// operation that wraps any Executor with any Middleware to produce a new
// Executor, and the tier-3 reusable-pipeline builders on top of it. This
// is the sole intentional generic-heavy package in the core; every type
// parameter here specializes at compile time, so the outer middleware
// chain carries no runtime dispatch (spec.md §4.2).
package compose

import (
	"context"

	"github.com/gravwell/osguard/engine"
	"github.com/gravwell/osguard/execctx"
	"github.com/gravwell/osguard/obslog"
	"github.com/gravwell/osguard/oserr"
	"github.com/gravwell/osguard/op"
)

// Wrap decorates Inner with MW, itself implementing engine.Executor[O] so
// it can be wrapped again. Wrapping is left-to-right and one-way: the
// inner executor is consumed by value into Wrap, never mutated in place.
type Wrap[O op.Operation, E engine.Executor[O], M engine.Middleware[O]] struct {
	Inner E
	MW    M
}

// With wraps inner with mw. base.With(M1).With(M2) produces a value whose
// outermost layer is M2 and innermost is base: on Execute, M2.Before runs
// first, then M1.Before, then base.Execute, then M1.After, then M2.After.
func With[O op.Operation, E engine.Executor[O], M engine.Middleware[O]](inner E, mw M) Wrap[O, E, M] {
	return Wrap[O, E, M]{Inner: inner, MW: mw}
}

func (w Wrap[O, E, M]) Name() string {
	return w.MW.Name() + "(" + w.Inner.Name() + ")"
}

func (w Wrap[O, E, M]) SupportedOperationTypes() []op.Type {
	return w.Inner.SupportedOperationTypes()
}

// Execute runs, in order: MW.BeforeExecution (possibly replacing the
// operation), Inner.Execute, MW.AfterExecution (possibly replacing the
// result), routing an Inner.Execute error through MW.OnError. A Fatal or
// SecurityViolation error from MW's own before/after hooks is returned
// directly, without calling MW.OnError, so it reaches the OnError hooks
// of the enclosing layers only. See spec.md §4.4 for the full error-flow
// contract this implements.
func (w Wrap[O, E, M]) Execute(goCtx context.Context, operation O, ectx *execctx.ExecutionContext) (*engine.ExecutionResult, error) {
	current := operation

	replacement, err := w.MW.BeforeExecution(goCtx, current, ectx)
	if err != nil {
		if res, ok := handleHookError(w.MW.Name(), err); !ok {
			return nil, res
		}
		// NonFatal: logged by handleHookError, chain continues unchanged.
	} else if replacement != nil {
		current = *replacement
	}

	result, err := w.Inner.Execute(goCtx, current, ectx)
	if err != nil {
		action, hookErr := w.MW.OnError(goCtx, current, err, ectx)
		if hookErr != nil {
			if res, ok := handleHookError(w.MW.Name(), hookErr); !ok {
				return nil, res
			}
			// NonFatal from OnError itself: fall through to the
			// original executor error via Continue semantics below.
			action = engine.ErrorAction{Kind: engine.Continue}
		}
		switch action.Kind {
		case engine.Continue:
			return nil, err
		case engine.ReplaceError:
			return nil, action.Replacement
		case engine.Suppress:
			sr := action.SuppressedResult
			if sr == nil {
				sr = &engine.ExecutionResult{}
			}
			result = sr
		}
	}

	after, err := w.MW.AfterExecution(goCtx, current, result, ectx)
	if err != nil {
		if res, ok := handleHookError(w.MW.Name(), err); !ok {
			return nil, res
		}
		return result, nil
	}
	if after != nil {
		result = after
	}
	return result, nil
}

// handleHookError classifies a hook-returned error. ok is true when the
// chain should continue (NonFatal, logged); when ok is false, res is the
// *oserr.Error the caller should return immediately.
func handleHookError(middlewareName string, err error) (res error, ok bool) {
	merr, isMiddlewareErr := err.(*engine.MiddlewareError)
	if !isMiddlewareErr {
		return oserr.MiddlewareFailed(middlewareName, err.Error()), false
	}
	switch merr.Kind {
	case engine.Fatal:
		return oserr.MiddlewareFailed(middlewareName, merr.Reason), false
	case engine.SecurityViolation:
		return oserr.SecurityViolation(middlewareName, merr.Reason), false
	case engine.NonFatal:
		obslog.Logger().WithFields(obslog.Fields{"middleware": middlewareName}).Warn(merr.Reason)
		return nil, true
	default:
		return oserr.MiddlewareFailed(middlewareName, merr.Reason), false
	}
}
