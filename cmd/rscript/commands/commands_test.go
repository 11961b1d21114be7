package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rscript/cmd/rscript/commands"
	"go.trai.ch/rscript/internal/app"
	"go.trai.ch/rscript/internal/build"
)

type mockApp struct {
	runFunc func(ctx context.Context, opts app.RunOptions) (int, error)
}

func (m *mockApp) Run(ctx context.Context, opts app.RunOptions) (int, error) {
	if m.runFunc != nil {
		return m.runFunc(ctx, opts)
	}
	return 0, nil
}

type verboseLogger struct {
	verbose bool
}

func (l *verboseLogger) Debug(string) {}
func (l *verboseLogger) Info(string) {}
func (l *verboseLogger) Warn(string) {}
func (l *verboseLogger) Error(error) {}
func (l *verboseLogger) SetVerbose(enable bool) { l.verbose = enable }

func capture(t *testing.T, args ...string) (app.RunOptions, int, error) {
	t.Helper()

	var captured app.RunOptions
	mock := &mockApp{
		runFunc: func(_ context.Context, opts app.RunOptions) (int, error) {
			captured = opts
			return 0, nil
		},
	}

	cli := commands.New(mock, nil)
	cli.SetArgs(args)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

	code, err := cli.Execute(context.Background())
	return captured, code, err
}

func TestCommands_Flags(t *testing.T) {
	t.Run("script and args", func(t *testing.T) {
		opts, code, err := capture(t, "hello.rs", "a", "b")
		require.NoError(t, err)
		assert.Equal(t, 0, code)
		assert.Equal(t, "hello.rs", opts.Script)
		assert.Equal(t, []string{"a", "b"}, opts.Args)
	})

	t.Run("flags after the script go to the script", func(t *testing.T) {
		opts, _, err := capture(t, "--release", "hello.rs", "--force", "-e")
		require.NoError(t, err)
		assert.True(t, opts.Release)
		assert.False(t, opts.Force)
		assert.False(t, opts.Expr)
		assert.Equal(t, []string{"--force", "-e"}, opts.Args)
	})

	t.Run("expression with template", func(t *testing.T) {
		opts, _, err := capture(t, "-e", "-t", "math", "1 + 2")
		require.NoError(t, err)
		assert.True(t, opts.Expr)
		assert.Equal(t, "math", opts.Template)
		assert.Equal(t, "1 + 2", opts.Script)
	})

	t.Run("loop with count and unstable features", func(t *testing.T) {
		opts, _, err := capture(t, "-l", "--count", "-u", "never_type", "--unstable-feature", "a,b", "|l, n| n")
		require.NoError(t, err)
		assert.True(t, opts.Loop)
		assert.True(t, opts.Count)
		assert.Equal(t, []string{"never_type", "a,b"}, opts.UnstableFeatures)
		assert.Equal(t, "|l, n| n", opts.Script)
	})

	t.Run("build options", func(t *testing.T) {
		opts, _, err := capture(t,
			"-c", "beta", "-F", "a,b", "--features", "c", "-o", "--force", "--pkg-path", "out", "hello.rs")
		require.NoError(t, err)
		assert.Equal(t, "beta", opts.Toolchain)
		assert.Equal(t, []string{"a", "b", "c"}, opts.Features)
		assert.True(t, opts.CargoOutput)
		assert.True(t, opts.Force)
		assert.Equal(t, "out", opts.PkgPath)
	})

	t.Run("test and bench", func(t *testing.T) {
		opts, _, err := capture(t, "--test", "hello.rs")
		require.NoError(t, err)
		assert.True(t, opts.Test)

		opts, _, err = capture(t, "--bench", "hello.rs")
		require.NoError(t, err)
		assert.True(t, opts.Bench)
	})

	t.Run("cache actions without script", func(t *testing.T) {
		opts, _, err := capture(t, "--clear-cache")
		require.NoError(t, err)
		assert.True(t, opts.ClearCache)
		assert.Empty(t, opts.Script)

		opts, _, err = capture(t, "--list-templates")
		require.NoError(t, err)
		assert.True(t, opts.ListTemplates)
	})

	t.Run("gen pkg only", func(t *testing.T) {
		opts, _, err := capture(t, "--gen-pkg-only", "hello.rs")
		require.NoError(t, err)
		assert.True(t, opts.GenPkgOnly)
	})
}

func TestCommands_ExitCode(t *testing.T) {
	t.Run("script exit code is returned", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ app.RunOptions) (int, error) {
				return 42, nil
			},
		}

		cli := commands.New(mock, nil)
		cli.SetArgs([]string{"hello.rs"})

		code, err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 42, code)
	})

	t.Run("error keeps the application exit code", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ app.RunOptions) (int, error) {
				return 101, errors.New("simulated error")
			},
		}

		cli := commands.New(mock, nil)
		cli.SetArgs([]string{"hello.rs"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		code, err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
		assert.Equal(t, 101, code)
	})

	t.Run("unknown flag exits with one", func(t *testing.T) {
		cli := commands.New(&mockApp{}, nil)
		cli.SetArgs([]string{"--no-such-flag"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		code, err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Equal(t, 1, code)
	})
}

func TestCommands_NoScriptShowsHelp(t *testing.T) {
	mock := &mockApp{
		runFunc: func(_ context.Context, _ app.RunOptions) (int, error) {
			panic("should not be called")
		},
	}

	cli := commands.New(mock, nil)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)

	cli.SetArgs([]string{})
	code, err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Contains(t, buf.String(), "Usage:")
	assert.Contains(t, buf.String(), "--gen-pkg-only")
}

func TestCommands_Verbose(t *testing.T) {
	log := &verboseLogger{}
	cli := commands.New(&mockApp{}, log)
	cli.SetArgs([]string{"--verbose", "hello.rs"})

	_, err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.True(t, log.verbose)
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{}, nil)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"--version"})

	code, err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Contains(t, buf.String(), "version "+build.Version)
	assert.Contains(t, buf.String(), "commit: "+build.Commit)
}
