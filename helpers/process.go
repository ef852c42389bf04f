package helpers

import (
	"context"

	"github.com/gravwell/osguard/compose"
	"github.com/gravwell/osguard/engine"
	"github.com/gravwell/osguard/op"
)

// SpawnProcess is the tier-1 helper for a process-spawn operation.
func SpawnProcess(ctx context.Context, cmd string, args []string, user string) (int, error) {
	h := compose.NewProcessHelper().WithSecurity(defaultSecurityMiddleware[op.ProcessOp]())
	return h.Spawn(ctx, cmd, args, nil, "", user)
}

// SpawnProcessWithMiddleware is the tier-2 variant accepting custom
// middleware.
func SpawnProcessWithMiddleware[M engine.Middleware[op.ProcessOp]](ctx context.Context, cmd string, args []string, user string, mw M) (int, error) {
	h := compose.ProcessHelperWithMiddleware(compose.NewProcessHelper(), mw)
	return h.Spawn(ctx, cmd, args, nil, "", user)
}

// KillProcess is the tier-1 helper for a process-kill operation.
func KillProcess(ctx context.Context, pid int, user string) error {
	h := compose.NewProcessHelper().WithSecurity(defaultSecurityMiddleware[op.ProcessOp]())
	return h.Kill(ctx, pid, user)
}

// KillProcessWithMiddleware is the tier-2 variant accepting custom
// middleware.
func KillProcessWithMiddleware[M engine.Middleware[op.ProcessOp]](ctx context.Context, pid int, user string, mw M) error {
	h := compose.ProcessHelperWithMiddleware(compose.NewProcessHelper(), mw)
	return h.Kill(ctx, pid, user)
}

// SendSignal is the tier-1 helper for a process-signal operation.
func SendSignal(ctx context.Context, pid int, sig op.SignalKind, user string) error {
	h := compose.NewProcessHelper().WithSecurity(defaultSecurityMiddleware[op.ProcessOp]())
	return h.Signal(ctx, pid, sig, user)
}

// SendSignalWithMiddleware is the tier-2 variant accepting custom
// middleware.
func SendSignalWithMiddleware[M engine.Middleware[op.ProcessOp]](ctx context.Context, pid int, sig op.SignalKind, user string, mw M) error {
	h := compose.ProcessHelperWithMiddleware(compose.NewProcessHelper(), mw)
	return h.Signal(ctx, pid, sig, user)
}
