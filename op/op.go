// Package op defines the Operation contract and the concrete filesystem,
// process, and network operation values that flow through the executor and
// middleware chain.
package op

import (
	"time"

	"github.com/google/uuid"
)

// Type tags the domain an Operation belongs to.
type Type int

const (
	TypeFilesystem Type = iota
	TypeProcess
	TypeNetwork
	TypeUtility
)

func (t Type) String() string {
	switch t {
	case TypeFilesystem:
		return "filesystem"
	case TypeProcess:
		return "process"
	case TypeNetwork:
		return "network"
	case TypeUtility:
		return "utility"
	default:
		return "unknown"
	}
}

// Operation is the read-only capability contract every executable value
// must satisfy. Implementations are plain values: copyable, safe to
// share across goroutines, and carry no borrowed state.
type Operation interface {
	OperationType() Type
	RequiredPermissions() []Permission
	CreatedAt() time.Time
	OperationID() string
	RequiresElevatedPrivileges() bool
}

// base is embedded by every concrete operation to provide the identity and
// timestamp fields common to all of them.
type base struct {
	id        string
	createdAt time.Time
}

func newBase() base {
	return base{id: uuid.NewString(), createdAt: time.Now().UTC()}
}

func (b base) OperationID() string   { return b.id }
func (b base) CreatedAt() time.Time  { return b.createdAt }

// PermissionKind is the sum tag over the Permission vocabulary.
type PermissionKind int

const (
	PermFilesystemRead PermissionKind = iota
	PermFilesystemWrite
	PermProcessSpawn
	PermProcessManage
	PermNetworkConnect
	PermNetworkSocket
)

// Permission is a declared capability requirement. Filesystem permissions
// carry a resource path; the others are bare tags (Resource is empty).
type Permission struct {
	Kind     PermissionKind
	Resource string
}

// String renders the canonical attribute-value form, e.g. "file:read".
func (p Permission) String() string {
	switch p.Kind {
	case PermFilesystemRead:
		return "file:read"
	case PermFilesystemWrite:
		return "file:write"
	case PermProcessSpawn:
		return "process:spawn"
	case PermProcessManage:
		return "process:manage"
	case PermNetworkConnect:
		return "network:connect"
	case PermNetworkSocket:
		return "network:socket"
	default:
		return "unknown"
	}
}

func FilesystemRead(path string) Permission  { return Permission{Kind: PermFilesystemRead, Resource: path} }
func FilesystemWrite(path string) Permission { return Permission{Kind: PermFilesystemWrite, Resource: path} }
func ProcessSpawn() Permission                { return Permission{Kind: PermProcessSpawn} }
func ProcessManage() Permission                { return Permission{Kind: PermProcessManage} }
func NetworkConnect(addr string) Permission {
	return Permission{Kind: PermNetworkConnect, Resource: addr}
}
func NetworkSocket() Permission { return Permission{Kind: PermNetworkSocket} }
