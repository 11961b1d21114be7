// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/rscript/internal/core/domain"
)

// Toolchain defines the interface for driving cargo.
//
//go:generate go run go.uber.org/mock/mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type Toolchain interface {
	// Invoke runs cargo for the invocation and blocks until it exits.
	//
	// A non-zero exit is returned as an error carrying "exit_code" metadata.
	Invoke(ctx context.Context, inv domain.Invocation) error
}

// ExecutionStrategy defines how control is handed to a built binary.
type ExecutionStrategy interface {
	// Execute runs binary with args and env and returns its exit code.
	// Implementations that replace the current process do not return on success.
	Execute(ctx context.Context, binary string, args, env []string) (int, error)
}
