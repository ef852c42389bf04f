package compose

import (
	"context"

	"github.com/gravwell/osguard/engine"
	"github.com/gravwell/osguard/execctx"
	"github.com/gravwell/osguard/obslog"
	"github.com/gravwell/osguard/op"
	"github.com/gravwell/osguard/oserr"
	"github.com/gravwell/osguard/platform"
	"github.com/gravwell/osguard/security"
)

// FileHelper is the tier-3 reusable pipeline for filesystem operations.
// O is fixed to op.FilesystemOp; E is the (possibly wrapped) executor type
// assembled by With*.
type FileHelper[E engine.Executor[op.FilesystemOp]] struct {
	Composed ComposedHelper[op.FilesystemOp, E]
}

// NewFileHelper returns an initial composed helper over the default local
// filesystem executor, unwrapped by any middleware.
func NewFileHelper() FileHelper[platform.FileExecutor] {
	return FileHelper[platform.FileExecutor]{Composed: NewComposedHelper[op.FilesystemOp](platform.NewFileExecutor())}
}

// WithSecurity wraps the security middleware around the current executor.
func (h FileHelper[E]) WithSecurity(sm *security.Middleware[op.FilesystemOp]) FileHelper[Wrap[op.FilesystemOp, E, *security.Middleware[op.FilesystemOp]]] {
	return FileHelper[Wrap[op.FilesystemOp, E, *security.Middleware[op.FilesystemOp]]]{Composed: WithMiddleware(h.Composed, sm)}
}

// WithLogger wraps the logging middleware around the current executor.
func (h FileHelper[E]) WithLogger(lm *obslog.Middleware[op.FilesystemOp]) FileHelper[Wrap[op.FilesystemOp, E, *obslog.Middleware[op.FilesystemOp]]] {
	return FileHelper[Wrap[op.FilesystemOp, E, *obslog.Middleware[op.FilesystemOp]]]{Composed: WithMiddleware(h.Composed, lm)}
}

// FileHelperWithMiddleware is the generic `.with_middleware<M>(m)` variant;
// expressed as a free function since Go methods cannot add type
// parameters.
func FileHelperWithMiddleware[E engine.Executor[op.FilesystemOp], M engine.Middleware[op.FilesystemOp]](h FileHelper[E], mw M) FileHelper[Wrap[op.FilesystemOp, E, M]] {
	return FileHelper[Wrap[op.FilesystemOp, E, M]]{Composed: WithMiddleware(h.Composed, mw)}
}

func (h FileHelper[E]) execute(ctx context.Context, operation op.FilesystemOp, user string) (*engine.ExecutionResult, error) {
	sc := security.BuildSecurityContext(user, operation)
	ectx := execctx.New(sc)
	result, err := h.Composed.Exec.Execute(ctx, operation, ectx)
	if err != nil {
		return nil, oserr.WithContext(err, operation.OperationID(), user)
	}
	return result, nil
}

// Read performs a file-read operation and returns its contents.
func (h FileHelper[E]) Read(ctx context.Context, path, user string) ([]byte, error) {
	result, err := h.execute(ctx, op.NewFileReadOp(path), user)
	if err != nil {
		return nil, err
	}
	return result.Output, nil
}

// Write performs a file-write operation.
func (h FileHelper[E]) Write(ctx context.Context, path string, data []byte, append bool, user string) error {
	_, err := h.execute(ctx, op.NewFileWriteOp(path, data, append), user)
	return err
}

// CreateDirectory performs a directory-create operation.
func (h FileHelper[E]) CreateDirectory(ctx context.Context, path string, recursive bool, user string) error {
	_, err := h.execute(ctx, op.NewDirectoryCreateOp(path, recursive), user)
	return err
}

// ListDirectory performs a directory-list operation, returning entry names
// newline-joined.
func (h FileHelper[E]) ListDirectory(ctx context.Context, path, user string) ([]byte, error) {
	result, err := h.execute(ctx, op.NewDirectoryListOp(path), user)
	if err != nil {
		return nil, err
	}
	return result.Output, nil
}

// Delete performs a file-delete operation.
func (h FileHelper[E]) Delete(ctx context.Context, path, user string) error {
	_, err := h.execute(ctx, op.NewFileDeleteOp(path), user)
	return err
}
