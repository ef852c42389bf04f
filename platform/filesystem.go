// Package platform implements the default local-OS executors for each
// operation domain. These are the "platform executor" collaborators
// spec.md §6.1 treats as external and permits stubbing; they are
// implemented here against the real OS so the helper surface is runnable
// end to end, but are intentionally thin — security enforcement is never
// their job.
package platform

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dchest/safefile"

	"github.com/gravwell/osguard/engine"
	"github.com/gravwell/osguard/execctx"
	"github.com/gravwell/osguard/op"
	"github.com/gravwell/osguard/oserr"
)

// FileExecutor is the default Executor[op.FilesystemOp], performing real
// local filesystem I/O.
type FileExecutor struct{}

func NewFileExecutor() FileExecutor { return FileExecutor{} }

func (FileExecutor) Name() string { return "platform.file" }

func (FileExecutor) SupportedOperationTypes() []op.Type { return []op.Type{op.TypeFilesystem} }

// ValidateOperation performs pre-flight checks: path existence for reads,
// parent directory existence for writes.
func (FileExecutor) ValidateOperation(operation op.FilesystemOp, _ *execctx.ExecutionContext) error {
	switch operation.Kind {
	case op.FileRead, op.FileDelete, op.DirectoryList:
		if _, err := os.Stat(operation.Path); err != nil {
			if os.IsNotExist(err) {
				return oserr.NotFound(operation.Path)
			}
			return oserr.ExecutionFailed("stat failed", err)
		}
	case op.FileWrite:
		dir := filepath.Dir(operation.Path)
		if _, err := os.Stat(dir); err != nil {
			return oserr.NotFound(dir)
		}
	case op.DirectoryCreate:
		// Parent existence only matters when non-recursive; MkdirAll
		// handles the recursive case itself.
		if !operation.Recursive {
			dir := filepath.Dir(operation.Path)
			if _, err := os.Stat(dir); err != nil {
				return oserr.NotFound(dir)
			}
		}
	}
	return nil
}

func (e FileExecutor) Execute(_ context.Context, operation op.FilesystemOp, _ *execctx.ExecutionContext) (*engine.ExecutionResult, error) {
	started := time.Now().UTC()
	result := &engine.ExecutionResult{StartedAt: started, Metadata: map[string]string{}}

	switch operation.Kind {
	case op.FileRead:
		data, err := os.ReadFile(operation.Path)
		if err != nil {
			return nil, translateOSError(operation.Path, err)
		}
		result.Output = data

	case op.FileWrite:
		// safefile writes to a temp file and renames it into place on
		// Commit, so a failure partway through never leaves a truncated
		// file at operation.Path; mirrors ingesters/utils/state.go's use
		// of the same library for state-file writes.
		content := operation.Content
		if operation.Append {
			existing, err := os.ReadFile(operation.Path)
			if err != nil && !os.IsNotExist(err) {
				return nil, translateOSError(operation.Path, err)
			}
			content = append(existing, operation.Content...)
		}
		if err := safefile.WriteFile(operation.Path, content, 0o644); err != nil {
			return nil, translateOSError(operation.Path, err)
		}

	case op.DirectoryCreate:
		var err error
		if operation.Recursive {
			err = os.MkdirAll(operation.Path, 0o755)
		} else {
			err = os.Mkdir(operation.Path, 0o755)
		}
		if err != nil {
			return nil, translateOSError(operation.Path, err)
		}

	case op.DirectoryList:
		entries, err := os.ReadDir(operation.Path)
		if err != nil {
			return nil, translateOSError(operation.Path, err)
		}
		names := make([]byte, 0, 256)
		for i, entry := range entries {
			if i > 0 {
				names = append(names, '\n')
			}
			names = append(names, []byte(entry.Name())...)
		}
		result.Output = names
		result.Metadata["count"] = fmt.Sprintf("%d", len(entries))

	case op.FileDelete:
		if err := os.Remove(operation.Path); err != nil {
			return nil, translateOSError(operation.Path, err)
		}

	default:
		return nil, oserr.InvalidOperation("unknown filesystem operation kind")
	}

	result.EndedAt = time.Now().UTC()
	return result, nil
}

func translateOSError(resource string, err error) error {
	switch {
	case os.IsNotExist(err):
		return oserr.NotFound(resource)
	case os.IsPermission(err):
		return oserr.PermissionDenied(resource, err)
	default:
		return oserr.ExecutionFailed("filesystem operation failed", err)
	}
}
