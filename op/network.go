package op

import "time"

// NetworkKind discriminates the variant packed into NetworkOp.
type NetworkKind int

const (
	NetworkConnectOp NetworkKind = iota
	NetworkListenOp
	NetworkSocketOp
)

// SocketKind enumerates the socket families NetworkSocketOp may request.
type SocketKind int

const (
	SocketTCP SocketKind = iota
	SocketUDP
	SocketUnix
)

// NetworkOp is the concrete Operation value for every network variant
// named in the spec.
type NetworkOp struct {
	base
	Kind NetworkKind

	Address string

	// NetworkConnectOp.
	Timeout time.Duration // zero means "no timeout specified"

	// NetworkListenOp.
	Backlog        int  // zero means "not specified"
	UnixSocketPath string

	// NetworkSocketOp.
	Socket SocketKind
}

func (o NetworkOp) OperationType() Type { return TypeNetwork }

func (o NetworkOp) RequiresElevatedPrivileges() bool { return true }

func (o NetworkOp) RequiredPermissions() []Permission {
	switch o.Kind {
	case NetworkConnectOp:
		return []Permission{NetworkConnect(o.Address)}
	case NetworkListenOp, NetworkSocketOp:
		return []Permission{NetworkSocket()}
	default:
		return nil
	}
}

func NewNetworkConnectOp(address string, timeout time.Duration) NetworkOp {
	return NetworkOp{base: newBase(), Kind: NetworkConnectOp, Address: address, Timeout: timeout}
}

func NewNetworkListenOp(address string, backlog int, unixSocketPath string) NetworkOp {
	return NetworkOp{base: newBase(), Kind: NetworkListenOp, Address: address, Backlog: backlog, UnixSocketPath: unixSocketPath}
}

func NewNetworkSocketOp(socket SocketKind) NetworkOp {
	return NetworkOp{base: newBase(), Kind: NetworkSocketOp, Socket: socket}
}
