package helpers

import (
	"context"

	"github.com/gravwell/osguard/compose"
	"github.com/gravwell/osguard/engine"
	"github.com/gravwell/osguard/op"
)

// ReadFile is the tier-1 helper for a file-read operation.
func ReadFile(ctx context.Context, path, user string) ([]byte, error) {
	h := compose.NewFileHelper().WithSecurity(defaultSecurityMiddleware[op.FilesystemOp]())
	return h.Read(ctx, path, user)
}

// ReadFileWithMiddleware is the tier-2 variant accepting custom middleware.
func ReadFileWithMiddleware[M engine.Middleware[op.FilesystemOp]](ctx context.Context, path, user string, mw M) ([]byte, error) {
	h := compose.FileHelperWithMiddleware(compose.NewFileHelper(), mw)
	return h.Read(ctx, path, user)
}

// WriteFile is the tier-1 helper for a file-write operation.
func WriteFile(ctx context.Context, path string, data []byte, user string) error {
	h := compose.NewFileHelper().WithSecurity(defaultSecurityMiddleware[op.FilesystemOp]())
	return h.Write(ctx, path, data, false, user)
}

// WriteFileWithMiddleware is the tier-2 variant accepting custom middleware.
func WriteFileWithMiddleware[M engine.Middleware[op.FilesystemOp]](ctx context.Context, path string, data []byte, user string, mw M) error {
	h := compose.FileHelperWithMiddleware(compose.NewFileHelper(), mw)
	return h.Write(ctx, path, data, false, user)
}

// CreateDirectory is the tier-1 helper for a directory-create operation.
func CreateDirectory(ctx context.Context, path, user string) error {
	h := compose.NewFileHelper().WithSecurity(defaultSecurityMiddleware[op.FilesystemOp]())
	return h.CreateDirectory(ctx, path, true, user)
}

// CreateDirectoryWithMiddleware is the tier-2 variant accepting custom
// middleware.
func CreateDirectoryWithMiddleware[M engine.Middleware[op.FilesystemOp]](ctx context.Context, path, user string, mw M) error {
	h := compose.FileHelperWithMiddleware(compose.NewFileHelper(), mw)
	return h.CreateDirectory(ctx, path, true, user)
}

// DeleteFile is the tier-1 helper for a file-delete operation.
func DeleteFile(ctx context.Context, path, user string) error {
	h := compose.NewFileHelper().WithSecurity(defaultSecurityMiddleware[op.FilesystemOp]())
	return h.Delete(ctx, path, user)
}

// DeleteFileWithMiddleware is the tier-2 variant accepting custom
// middleware.
func DeleteFileWithMiddleware[M engine.Middleware[op.FilesystemOp]](ctx context.Context, path, user string, mw M) error {
	h := compose.FileHelperWithMiddleware(compose.NewFileHelper(), mw)
	return h.Delete(ctx, path, user)
}
