package compose

import (
	"context"
	"time"

	"github.com/gravwell/osguard/engine"
	"github.com/gravwell/osguard/execctx"
	"github.com/gravwell/osguard/obslog"
	"github.com/gravwell/osguard/op"
	"github.com/gravwell/osguard/oserr"
	"github.com/gravwell/osguard/platform"
	"github.com/gravwell/osguard/security"
)

// NetworkHelper is the tier-3 reusable pipeline for network operations.
type NetworkHelper[E engine.Executor[op.NetworkOp]] struct {
	Composed ComposedHelper[op.NetworkOp, E]
}

func NewNetworkHelper() NetworkHelper[platform.NetworkExecutor] {
	return NetworkHelper[platform.NetworkExecutor]{Composed: NewComposedHelper[op.NetworkOp](platform.NewNetworkExecutor())}
}

func (h NetworkHelper[E]) WithSecurity(sm *security.Middleware[op.NetworkOp]) NetworkHelper[Wrap[op.NetworkOp, E, *security.Middleware[op.NetworkOp]]] {
	return NetworkHelper[Wrap[op.NetworkOp, E, *security.Middleware[op.NetworkOp]]]{Composed: WithMiddleware(h.Composed, sm)}
}

func (h NetworkHelper[E]) WithLogger(lm *obslog.Middleware[op.NetworkOp]) NetworkHelper[Wrap[op.NetworkOp, E, *obslog.Middleware[op.NetworkOp]]] {
	return NetworkHelper[Wrap[op.NetworkOp, E, *obslog.Middleware[op.NetworkOp]]]{Composed: WithMiddleware(h.Composed, lm)}
}

func NetworkHelperWithMiddleware[E engine.Executor[op.NetworkOp], M engine.Middleware[op.NetworkOp]](h NetworkHelper[E], mw M) NetworkHelper[Wrap[op.NetworkOp, E, M]] {
	return NetworkHelper[Wrap[op.NetworkOp, E, M]]{Composed: WithMiddleware(h.Composed, mw)}
}

func (h NetworkHelper[E]) execute(ctx context.Context, operation op.NetworkOp, user string) (*engine.ExecutionResult, error) {
	sc := security.BuildSecurityContext(user, operation)
	ectx := execctx.New(sc)
	result, err := h.Composed.Exec.Execute(ctx, operation, ectx)
	if err != nil {
		return nil, oserr.WithContext(err, operation.OperationID(), user)
	}
	return result, nil
}

// Connect performs a network-connect operation.
func (h NetworkHelper[E]) Connect(ctx context.Context, addr string, timeout time.Duration, user string) ([]byte, error) {
	result, err := h.execute(ctx, op.NewNetworkConnectOp(addr, timeout), user)
	if err != nil {
		return nil, err
	}
	return result.Output, nil
}

// Listen performs a network-listen operation.
func (h NetworkHelper[E]) Listen(ctx context.Context, addr string, backlog int, unixSocketPath, user string) ([]byte, error) {
	result, err := h.execute(ctx, op.NewNetworkListenOp(addr, backlog, unixSocketPath), user)
	if err != nil {
		return nil, err
	}
	return result.Output, nil
}

// Socket performs a network-socket operation.
func (h NetworkHelper[E]) Socket(ctx context.Context, kind op.SocketKind, user string) error {
	_, err := h.execute(ctx, op.NewNetworkSocketOp(kind), user)
	return err
}
