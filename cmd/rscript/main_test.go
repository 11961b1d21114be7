package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/rscript/internal/adapters/detector"
	"go.trai.ch/rscript/internal/app"
	"go.trai.ch/rscript/internal/core/domain"
	"go.trai.ch/rscript/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"rscript": main,
	})
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   filepath.Join("testdata", "script"),
		Setup: setupScript,
	})
}

// setupScript puts the fake cargo from the archive on PATH and keeps every
// per-user directory inside the work directory.
func setupScript(env *testscript.Env) error {
	env.Setenv("NO_COLOR", "1")

	binDir := filepath.Join(env.WorkDir, "bin")
	if err := os.MkdirAll(binDir, 0o750); err != nil {
		return err
	}
	cargo := filepath.Join(binDir, "cargo")
	if _, err := os.Stat(cargo); err == nil {
		//nolint:gosec // The fake toolchain has to be executable
		if err := os.Chmod(cargo, 0o755); err != nil {
			return err
		}
	}
	env.Setenv("PATH", binDir+string(os.PathListSeparator)+env.Getenv("PATH"))

	homeDir := filepath.Join(env.WorkDir, ".home")
	if err := os.MkdirAll(homeDir, 0o750); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	env.Setenv("XDG_CONFIG_HOME", filepath.Join(homeDir, ".config"))
	env.Setenv(domain.CacheDirEnvVar, filepath.Join(env.WorkDir, ".cache"))
	env.Setenv(domain.ConfigPathEnvVar, filepath.Join(env.WorkDir, "rscript.yaml"))

	return nil
}

// TestRun_Version verifies that run returns 0 when the command succeeds.
func TestRun_Version(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{Logger: mockLogger}, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"--version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"hello.rs"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that application errors are logged and end with exit code 1.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	loadErr := errors.New("config broken")
	mockLoader.EXPECT().Load().Return(nil, loadErr)
	mockLogger.EXPECT().Error(loadErr)

	application := app.New(
		mockLoader, mockLogger, nil, nil, nil, nil, nil, nil, nil, nil, nil, detector.Environment{},
	)
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: mockLogger}, func() {}, nil
	}

	exitCode := run(context.Background(), []string{"hello.rs"}, new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_OptionsApplied verifies that options are applied to the app before execution.
func TestRun_OptionsApplied(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	mockLoader.EXPECT().Load().Return(nil, errors.New("stop"))
	mockLogger.EXPECT().Error(gomock.Any())

	application := app.New(
		mockLoader, mockLogger, nil, nil, nil, nil, nil, nil, nil, nil, nil, detector.Environment{},
	)
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: mockLogger}, func() {}, nil
	}

	applied := false
	run(context.Background(), []string{"hello.rs"}, new(bytes.Buffer), provider, func(*app.App) {
		applied = true
	})
	assert.True(t, applied)
}
