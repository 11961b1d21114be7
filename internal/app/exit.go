package app

import (
	"errors"

	"go.trai.ch/zerr"
)

// ExitCode returns the exit code attached to err, or 1 when there is none.
// A nil error is 0.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	for e := err; e != nil; e = errors.Unwrap(e) {
		zErr, ok := e.(*zerr.Error)
		if !ok {
			continue
		}
		if code, ok := zErr.Metadata()["exit_code"].(int); ok {
			return code
		}
	}
	return 1
}
