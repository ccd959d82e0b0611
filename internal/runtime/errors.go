package runtime

import (
	"errors"
	"strings"
	"syscall"

	zerrors "github.com/manav03panchal/zenith/internal/errors"
)

// DiskFullError is a write that failed for lack of space. It matches
// zerrors.ErrDiskFull and still unwraps to the underlying error.
type DiskFullError struct {
	Op   string
	Path string
	Err  error
}

func (e *DiskFullError) Error() string {
	where := e.Op
	if e.Path != "" {
		where += " on " + e.Path
	}
	return "disk full during " + where + ": " + e.Err.Error()
}

func (e *DiskFullError) Unwrap() error { return e.Err }

func (e *DiskFullError) Is(target error) bool { return target == zerrors.ErrDiskFull }

// diskFullText are lowercase fragments that storage engines put in
// out-of-space messages without exposing the errno.
var diskFullText = []string{"no space left on device", "disk full", "not enough space"}

// IsDiskFull reports whether err means the device ran out of space.
func IsDiskFull(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, zerrors.ErrDiskFull) || errors.Is(err, syscall.ENOSPC) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, s := range diskFullText {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}

// AsDiskFull wraps err in a DiskFullError when it means out of space and
// returns it unchanged otherwise.
func AsDiskFull(err error, op, path string) error {
	if !IsDiskFull(err) {
		return err
	}
	return &DiskFullError{Op: op, Path: path, Err: err}
}
