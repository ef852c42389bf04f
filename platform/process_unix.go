//go:build unix

package platform

import (
	"os"
	"strconv"
	"syscall"

	"github.com/gravwell/osguard/oserr"
)

// findProcess resolves pid to an *os.Process, translating the OS-level
// existence/permission errors into the canonical error taxonomy per
// spec.md §6.1 ("translating OS-level permission errors into
// PermissionDenied").
func findProcess(pid int) (*os.Process, error) {
	if err := syscall.Kill(pid, 0); err != nil {
		switch err {
		case syscall.ESRCH:
			return nil, oserr.NotFound("pid " + strconv.Itoa(pid))
		case syscall.EPERM:
			return nil, oserr.PermissionDenied("pid "+strconv.Itoa(pid), err)
		}
	}
	return os.FindProcess(pid)
}
