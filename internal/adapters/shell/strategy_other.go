//go:build !unix

package shell

import (
	"context"
	"os"
)

// ReplaceProcess falls back to spawning where the process image cannot be replaced.
type ReplaceProcess struct {
	spawn *SpawnAndForwardExit
}

// NewReplaceProcess creates the exec strategy.
func NewReplaceProcess() *ReplaceProcess {
	return &ReplaceProcess{spawn: NewSpawnAndForwardExit(os.Stdin, os.Stdout, os.Stderr)}
}

// Execute runs the binary as a child.
func (r *ReplaceProcess) Execute(ctx context.Context, binary string, args, env []string) (int, error) {
	return r.spawn.Execute(ctx, binary, args, env)
}
