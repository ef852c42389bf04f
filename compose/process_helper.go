package compose

import (
	"context"
	"strconv"

	"github.com/gravwell/osguard/engine"
	"github.com/gravwell/osguard/execctx"
	"github.com/gravwell/osguard/obslog"
	"github.com/gravwell/osguard/op"
	"github.com/gravwell/osguard/oserr"
	"github.com/gravwell/osguard/platform"
	"github.com/gravwell/osguard/security"
)

// ProcessHelper is the tier-3 reusable pipeline for process operations.
type ProcessHelper[E engine.Executor[op.ProcessOp]] struct {
	Composed ComposedHelper[op.ProcessOp, E]
}

func NewProcessHelper() ProcessHelper[platform.ProcessExecutor] {
	return ProcessHelper[platform.ProcessExecutor]{Composed: NewComposedHelper[op.ProcessOp](platform.NewProcessExecutor())}
}

func (h ProcessHelper[E]) WithSecurity(sm *security.Middleware[op.ProcessOp]) ProcessHelper[Wrap[op.ProcessOp, E, *security.Middleware[op.ProcessOp]]] {
	return ProcessHelper[Wrap[op.ProcessOp, E, *security.Middleware[op.ProcessOp]]]{Composed: WithMiddleware(h.Composed, sm)}
}

func (h ProcessHelper[E]) WithLogger(lm *obslog.Middleware[op.ProcessOp]) ProcessHelper[Wrap[op.ProcessOp, E, *obslog.Middleware[op.ProcessOp]]] {
	return ProcessHelper[Wrap[op.ProcessOp, E, *obslog.Middleware[op.ProcessOp]]]{Composed: WithMiddleware(h.Composed, lm)}
}

func ProcessHelperWithMiddleware[E engine.Executor[op.ProcessOp], M engine.Middleware[op.ProcessOp]](h ProcessHelper[E], mw M) ProcessHelper[Wrap[op.ProcessOp, E, M]] {
	return ProcessHelper[Wrap[op.ProcessOp, E, M]]{Composed: WithMiddleware(h.Composed, mw)}
}

func (h ProcessHelper[E]) execute(ctx context.Context, operation op.ProcessOp, user string) (*engine.ExecutionResult, error) {
	sc := security.BuildSecurityContext(user, operation)
	ectx := execctx.New(sc)
	result, err := h.Composed.Exec.Execute(ctx, operation, ectx)
	if err != nil {
		return nil, oserr.WithContext(err, operation.OperationID(), user)
	}
	return result, nil
}

// Spawn performs a process-spawn operation, returning the spawned pid.
func (h ProcessHelper[E]) Spawn(ctx context.Context, cmd string, args []string, env map[string]string, workingDir, user string) (int, error) {
	result, err := h.execute(ctx, op.NewProcessSpawnOp(cmd, args, env, workingDir), user)
	if err != nil {
		return 0, err
	}
	pid, convErr := strconv.Atoi(string(result.Output))
	if convErr != nil {
		return 0, oserr.ExecutionFailed("could not parse spawned pid", convErr)
	}
	return pid, nil
}

// Kill performs a process-kill operation.
func (h ProcessHelper[E]) Kill(ctx context.Context, pid int, user string) error {
	_, err := h.execute(ctx, op.NewProcessKillOp(pid), user)
	return err
}

// Signal performs a process-signal operation.
func (h ProcessHelper[E]) Signal(ctx context.Context, pid int, sig op.SignalKind, user string) error {
	_, err := h.execute(ctx, op.NewProcessSignalOp(pid, sig), user)
	return err
}
