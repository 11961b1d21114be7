package ports

import "go.trai.ch/rscript/internal/core/domain"

// InputResolver defines the interface for turning a command-line target into an Input.
//
//go:generate mockgen -destination=mocks/resolver_mock.go -package=mocks -source=resolver.go
type InputResolver interface {
	// Resolve locates and reads a script, or wraps a literal when expression is set.
	Resolve(target string, expression bool, template string) (domain.Input, error)

	// ResolveLoop wraps closure source that runs once per line of standard input.
	ResolveLoop(closure string, count bool) (domain.Input, error)
}
