// Package shell provides the cargo toolchain adapter and the strategies for running built binaries.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/rscript/internal/core/domain"
	"go.trai.ch/rscript/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultProgram is the toolchain driver looked up on PATH.
const DefaultProgram = "cargo"

// Cargo implements ports.Toolchain by running cargo as a subprocess.
type Cargo struct {
	logger  ports.Logger
	program string
	environ func() []string
	stdout  io.Writer
	stderr  io.Writer
}

// Option configures a Cargo.
type Option func(*Cargo)

// WithProgram replaces the cargo executable name or path.
func WithProgram(program string) Option {
	return func(c *Cargo) {
		c.program = program
	}
}

// WithEnviron replaces the base environment, os.Environ by default.
func WithEnviron(environ func() []string) Option {
	return func(c *Cargo) {
		c.environ = environ
	}
}

// WithOutput redirects cargo's stdout and stderr.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(c *Cargo) {
		c.stdout = stdout
		c.stderr = stderr
	}
}

// NewCargo creates a new Cargo toolchain.
func NewCargo(logger ports.Logger, opts ...Option) *Cargo {
	c := &Cargo{
		logger:  logger,
		program: DefaultProgram,
		environ: os.Environ,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Args returns the cargo arguments for an invocation, without the program name.
func Args(inv domain.Invocation) []string {
	args := make([]string, 0, 12+len(inv.Args))
	if inv.Toolchain != "" {
		args = append(args, "+"+inv.Toolchain)
	}
	args = append(args, inv.Kind.Subcommand())
	if inv.Quiet {
		args = append(args, "-q")
	}
	args = append(args, "--manifest-path", inv.ManifestPath)
	if inv.Color {
		args = append(args, "--color", "always")
	}
	args = append(args, "--target-dir", inv.TargetDir)
	if inv.Profile == domain.ProfileRelease && inv.Kind != domain.BuildBench {
		args = append(args, "--release")
	}
	if len(inv.Features) > 0 {
		args = append(args, "--features", strings.Join(inv.Features, ","))
	}
	if inv.Kind != domain.BuildNormal && len(inv.Args) > 0 {
		args = append(args, "--")
		args = append(args, inv.Args...)
	}
	return args
}

// Invoke runs cargo and waits for it to exit.
// The script variables are added to the child environment only.
func (c *Cargo) Invoke(ctx context.Context, inv domain.Invocation) error {
	env := inv.Env.Merge(c.environ())
	args := Args(inv)

	executable := c.program
	if !filepath.IsAbs(executable) {
		if lp, err := lookPath(executable, env); err == nil {
			executable = lp
		}
	}

	c.logger.Debug("running " + c.program + " " + strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, executable, args...) //nolint:gosec // program is cargo or a configured path
	if len(cmd.Args) > 0 {
		cmd.Args[0] = c.program
	}
	cmd.Env = env
	cmd.Stdout = c.stdout
	cmd.Stderr = c.stderr

	sub := inv.Kind.Subcommand()
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return zerr.With(zerr.Wrap(err, domain.ErrToolchainStartFailed.Error()), "program", c.program)
		}
		return zerr.With(
			zerr.Wrap(domain.ErrToolchainFailed, "cargo "+sub+" failed"),
			"exit_code", exitErr.ExitCode(),
		)
	}
	return nil
}

// lookPath searches for an executable in the directories named by the PATH entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if v, ok := strings.CutPrefix(e, "PATH="); ok {
			path = v
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
