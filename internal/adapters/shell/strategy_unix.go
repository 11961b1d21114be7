//go:build unix

package shell

import (
	"context"

	"go.trai.ch/rscript/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sys/unix"
)

// ReplaceProcess replaces the current process image with the binary.
type ReplaceProcess struct{}

// NewReplaceProcess creates the exec strategy.
func NewReplaceProcess() *ReplaceProcess {
	return &ReplaceProcess{}
}

// Execute does not return on success.
func (*ReplaceProcess) Execute(_ context.Context, binary string, args, env []string) (int, error) {
	argv := append([]string{binary}, args...)
	if err := unix.Exec(binary, argv, env); err != nil {
		return 1, zerr.With(zerr.Wrap(err, domain.ErrExecFailed.Error()), "binary", binary)
	}
	return 0, nil
}
