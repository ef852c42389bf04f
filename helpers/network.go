package helpers

import (
	"context"
	"time"

	"github.com/gravwell/osguard/compose"
	"github.com/gravwell/osguard/engine"
	"github.com/gravwell/osguard/op"
)

// TCPConnect is the tier-1 helper for a network-connect operation.
func TCPConnect(ctx context.Context, addr, user string) ([]byte, error) {
	h := compose.NewNetworkHelper().WithSecurity(defaultSecurityMiddleware[op.NetworkOp]())
	return h.Connect(ctx, addr, 0, user)
}

// TCPConnectWithMiddleware is the tier-2 variant accepting custom
// middleware.
func TCPConnectWithMiddleware[M engine.Middleware[op.NetworkOp]](ctx context.Context, addr, user string, timeout time.Duration, mw M) ([]byte, error) {
	h := compose.NetworkHelperWithMiddleware(compose.NewNetworkHelper(), mw)
	return h.Connect(ctx, addr, timeout, user)
}

// TCPListen is the tier-1 helper for a network-listen operation.
func TCPListen(ctx context.Context, addr, user string) ([]byte, error) {
	h := compose.NewNetworkHelper().WithSecurity(defaultSecurityMiddleware[op.NetworkOp]())
	return h.Listen(ctx, addr, 0, "", user)
}

// TCPListenWithMiddleware is the tier-2 variant accepting custom
// middleware.
func TCPListenWithMiddleware[M engine.Middleware[op.NetworkOp]](ctx context.Context, addr, user string, backlog int, mw M) ([]byte, error) {
	h := compose.NetworkHelperWithMiddleware(compose.NewNetworkHelper(), mw)
	return h.Listen(ctx, addr, backlog, "", user)
}

// UDPSocket is the tier-1 helper for a network-socket operation.
func UDPSocket(ctx context.Context, user string) error {
	h := compose.NewNetworkHelper().WithSecurity(defaultSecurityMiddleware[op.NetworkOp]())
	return h.Socket(ctx, op.SocketUDP, user)
}

// UDPSocketWithMiddleware is the tier-2 variant accepting custom
// middleware.
func UDPSocketWithMiddleware[M engine.Middleware[op.NetworkOp]](ctx context.Context, user string, kind op.SocketKind, mw M) error {
	h := compose.NetworkHelperWithMiddleware(compose.NewNetworkHelper(), mw)
	return h.Socket(ctx, kind, user)
}
