package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"time"

	"go.trai.ch/rscript/internal/core/domain"
	"go.trai.ch/zerr"
)

// interruptGrace is how long a cancelled child gets to exit after SIGINT before it is killed.
const interruptGrace = 5 * time.Second

// SpawnAndForwardExit runs the binary as a child with inherited stdio and reports its exit code.
type SpawnAndForwardExit struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewSpawnAndForwardExit creates a strategy wired to the given stdio.
func NewSpawnAndForwardExit(stdin io.Reader, stdout, stderr io.Writer) *SpawnAndForwardExit {
	return &SpawnAndForwardExit{stdin: stdin, stdout: stdout, stderr: stderr}
}

// Execute starts binary and waits for it.
// A non-zero exit is not an error: the code is returned for the caller to forward.
func (s *SpawnAndForwardExit) Execute(ctx context.Context, binary string, args, env []string) (int, error) {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec // binary was built from the user's script
	cmd.Env = env
	cmd.Stdin = s.stdin
	cmd.Stdout = s.stdout
	cmd.Stderr = s.stderr
	cmd.Cancel = func() error {
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = interruptGrace

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 1, zerr.With(zerr.Wrap(err, domain.ErrExecFailed.Error()), "binary", binary)
	}
	return 0, nil
}
