package platform

import (
	"context"
	"fmt"
	"os/exec"
	"syscall"
	"time"

	"github.com/gravwell/osguard/engine"
	"github.com/gravwell/osguard/execctx"
	"github.com/gravwell/osguard/op"
	"github.com/gravwell/osguard/oserr"
)

// ProcessExecutor is the default Executor[op.ProcessOp].
type ProcessExecutor struct{}

func NewProcessExecutor() ProcessExecutor { return ProcessExecutor{} }

func (ProcessExecutor) Name() string { return "platform.process" }

func (ProcessExecutor) SupportedOperationTypes() []op.Type { return []op.Type{op.TypeProcess} }

func (e ProcessExecutor) Execute(goCtx context.Context, operation op.ProcessOp, _ *execctx.ExecutionContext) (*engine.ExecutionResult, error) {
	started := time.Now().UTC()
	result := &engine.ExecutionResult{StartedAt: started, Metadata: map[string]string{}}

	switch operation.Kind {
	case op.ProcessSpawnOp:
		cmd := exec.CommandContext(goCtx, operation.Command, operation.Args...)
		cmd.Dir = operation.WorkingDir
		for k, v := range operation.Env {
			cmd.Env = append(cmd.Env, k+"="+v)
		}
		if err := cmd.Start(); err != nil {
			return nil, oserr.ExecutionFailed("spawn failed", err)
		}
		result.Output = []byte(fmt.Sprintf("%d", cmd.Process.Pid))
		result.Metadata["pid"] = fmt.Sprintf("%d", cmd.Process.Pid)

	case op.ProcessKillOp:
		proc, err := findProcess(operation.PID)
		if err != nil {
			return nil, err
		}
		if err := proc.Kill(); err != nil {
			return nil, oserr.ExecutionFailed("kill failed", err)
		}

	case op.ProcessSignalOp:
		proc, err := findProcess(operation.PID)
		if err != nil {
			return nil, err
		}
		sig, err := translateSignal(operation.Signal)
		if err != nil {
			return nil, err
		}
		if err := proc.Signal(sig); err != nil {
			return nil, oserr.ExecutionFailed("signal failed", err)
		}

	default:
		return nil, oserr.InvalidOperation("unknown process operation kind")
	}

	result.EndedAt = time.Now().UTC()
	return result, nil
}

func translateSignal(k op.SignalKind) (syscall.Signal, error) {
	switch k {
	case op.SignalTerm:
		return syscall.SIGTERM, nil
	case op.SignalKill:
		return syscall.SIGKILL, nil
	case op.SignalHup:
		return syscall.SIGHUP, nil
	case op.SignalInt:
		return syscall.SIGINT, nil
	case op.SignalUsr1:
		return syscall.SIGUSR1, nil
	case op.SignalUsr2:
		return syscall.SIGUSR2, nil
	default:
		return 0, oserr.InvalidOperation("unknown signal kind")
	}
}
