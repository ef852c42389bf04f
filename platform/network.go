package platform

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/gravwell/osguard/engine"
	"github.com/gravwell/osguard/execctx"
	"github.com/gravwell/osguard/op"
	"github.com/gravwell/osguard/oserr"
)

// NetworkExecutor is the default Executor[op.NetworkOp].
type NetworkExecutor struct{}

func NewNetworkExecutor() NetworkExecutor { return NetworkExecutor{} }

func (NetworkExecutor) Name() string { return "platform.network" }

func (NetworkExecutor) SupportedOperationTypes() []op.Type { return []op.Type{op.TypeNetwork} }

func (e NetworkExecutor) Execute(goCtx context.Context, operation op.NetworkOp, _ *execctx.ExecutionContext) (*engine.ExecutionResult, error) {
	started := time.Now().UTC()
	result := &engine.ExecutionResult{StartedAt: started, Metadata: map[string]string{}}

	switch operation.Kind {
	case op.NetworkConnectOp:
		dialer := net.Dialer{}
		if operation.Timeout > 0 {
			dialer.Timeout = operation.Timeout
		}
		conn, err := dialer.DialContext(goCtx, "tcp", operation.Address)
		if err != nil {
			return nil, translateNetError(operation.Address, err)
		}
		defer conn.Close()
		result.Output = []byte(conn.RemoteAddr().String())
		result.Metadata["local_addr"] = conn.LocalAddr().String()

	case op.NetworkListenOp:
		network := "tcp"
		addr := operation.Address
		if operation.UnixSocketPath != "" {
			network = "unix"
			addr = operation.UnixSocketPath
		}
		lc := net.ListenConfig{}
		ln, err := lc.Listen(goCtx, network, addr)
		if err != nil {
			return nil, translateNetError(addr, err)
		}
		defer ln.Close()
		result.Output = []byte(ln.Addr().String())
		if operation.Backlog > 0 {
			result.Metadata["backlog"] = fmt.Sprintf("%d", operation.Backlog)
		}

	case op.NetworkSocketOp:
		network := socketNetwork(operation.Socket)
		result.Metadata["socket_kind"] = network

	default:
		return nil, oserr.InvalidOperation("unknown network operation kind")
	}

	result.EndedAt = time.Now().UTC()
	return result, nil
}

func socketNetwork(k op.SocketKind) string {
	switch k {
	case op.SocketTCP:
		return "tcp"
	case op.SocketUDP:
		return "udp"
	case op.SocketUnix:
		return "unix"
	default:
		return "unknown"
	}
}

func translateNetError(resource string, err error) error {
	if ne, ok := err.(net.Error); ok && ne.Timeout() {
		return oserr.Timeout("network")
	}
	return oserr.ExecutionFailed("network operation failed", err)
}
