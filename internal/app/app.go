// Package app implements the application layer for rscript.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/rscript/internal/adapters/cas"      //nolint:depguard // Fingerprints are part of the metadata format
	"go.trai.ch/rscript/internal/adapters/detector" //nolint:depguard // Detected once at startup
	"go.trai.ch/rscript/internal/adapters/hasher"   //nolint:depguard // Identity derivation
	"go.trai.ch/rscript/internal/core/domain"
	"go.trai.ch/rscript/internal/core/ports"
	"go.trai.ch/rscript/internal/engine/freshness"
	"go.trai.ch/rscript/internal/engine/gc"
	"go.trai.ch/rscript/internal/engine/synth"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	hasher       ports.Hasher
	resolver     ports.InputResolver
	writer       ports.PackageWriter
	store        ports.MetadataStore
	templates    ports.TemplateStore
	synth        *synth.Synthesizer
	freshness    *freshness.Orchestrator
	collector    *gc.Collector
	strategy     ports.ExecutionStrategy
	env          detector.Environment

	out     io.Writer
	getwd   func() (string, error)
	environ func() []string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	h ports.Hasher,
	resolver ports.InputResolver,
	writer ports.PackageWriter,
	store ports.MetadataStore,
	templates ports.TemplateStore,
	synthesizer *synth.Synthesizer,
	orchestrator *freshness.Orchestrator,
	collector *gc.Collector,
	strategy ports.ExecutionStrategy,
	env detector.Environment,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		hasher:       h,
		resolver:     resolver,
		writer:       writer,
		store:        store,
		templates:    templates,
		synth:        synthesizer,
		freshness:    orchestrator,
		collector:    collector,
		strategy:     strategy,
		env:          env,
		out:          os.Stdout,
		getwd:        os.Getwd,
		environ:      os.Environ,
	}
}

// WithOutput redirects user-facing messages.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// WithGetwd replaces the working directory lookup.
func (a *App) WithGetwd(getwd func() (string, error)) *App {
	a.getwd = getwd
	return a
}

// WithEnviron replaces the base environment handed to the script.
func (a *App) WithEnviron(environ func() []string) *App {
	a.environ = environ
	return a
}

// Run performs the requested action and returns the process exit code.
func (a *App) Run(ctx context.Context, opts RunOptions) (int, error) {
	if err := opts.Validate(); err != nil {
		return 1, err
	}

	cfg, err := a.configLoader.Load()
	if err != nil {
		return 1, err
	}

	layout, err := cacheLayout(cfg)
	if err != nil {
		return 1, err
	}

	if opts.ClearCache {
		if err := a.collector.ClearAll(layout); err != nil {
			return 1, err
		}
		if opts.Script == "" {
			_, _ = fmt.Fprintln(a.out, domain.ProgramName+" cache cleared.")
			return 0, nil
		}
	}

	if opts.ListTemplates {
		return a.listTemplates()
	}

	if opts.Script == "" {
		return 1, domain.ErrNoScriptSpecified
	}

	// Stale packages are collected after the action on every path, unless
	// everything was just cleared.
	cleanup := &finally{}
	if !opts.ClearCache {
		cleanup.fn = func() { a.collector.Collect(layout) }
	}
	defer cleanup.run()

	code, err := a.runScript(ctx, cfg, layout, opts, cleanup)
	if err != nil {
		return ExitCode(err), err
	}
	return code, nil
}

func (a *App) listTemplates() (int, error) {
	dir, names, err := a.templates.List()
	_, _ = fmt.Fprintln(a.out, "Listing templates in "+dir)
	if err != nil {
		return 1, err
	}
	for _, name := range names {
		_, _ = fmt.Fprintln(a.out, name)
	}
	return 0, nil
}

//nolint:cyclop // orchestration function
func (a *App) runScript(
	ctx context.Context,
	cfg *domain.Config,
	layout domain.CacheLayout,
	opts RunOptions,
	cleanup *finally,
) (int, error) {
	cwd, err := a.getwd()
	if err != nil {
		return 1, zerr.Wrap(err, "failed to get working directory")
	}

	// 1. Classify the input
	input, err := a.resolve(opts)
	if err != nil {
		return 1, err
	}
	identity := hasher.Identity(a.hasher, input)
	a.logger.Debug("identity: " + identity.String())

	// 2. Synthesize the package
	prelude := domain.PreludeItems(opts.UnstableFeatures)
	pkg, err := a.synth.Synthesize(synth.Request{
		Input:    input,
		Identity: identity,
		Cwd:      cwd,
		Profile:  opts.Profile(),
		Features: opts.Features,
		Prelude:  prelude,
	})
	if err != nil {
		return 1, err
	}

	explicit := opts.PkgPath
	if explicit != "" && !filepath.IsAbs(explicit) {
		explicit = filepath.Join(cwd, explicit)
	}
	pkg.Dir, pkg.Owned = layout.ResolvePackageDir(identity, explicit)
	a.logger.Debug("package dir: " + pkg.Dir)

	// 3. Write it out
	if err := a.writePackage(pkg, opts.Force); err != nil {
		return 1, err
	}

	kind := opts.Kind()
	toolchain := selectToolchain(cfg, opts)
	meta := domain.PackageMetadata{
		Path:         input.Path,
		Modified:     input.ModTime,
		Template:     input.Template,
		Debug:        pkg.Profile == domain.ProfileDebug,
		Prelude:      prelude,
		Features:     opts.Features,
		Toolchain:    toolchain,
		ManifestHash: cas.Fingerprint(pkg.Manifest),
		ScriptHash:   cas.Fingerprint(pkg.Source),
	}

	if opts.GenPkgOnly {
		if err := a.store.Put(pkg.Dir, meta); err != nil {
			return 1, err
		}
		_, _ = fmt.Fprintln(a.out, pkg.Dir)
		return 0, nil
	}

	inv := domain.Invocation{
		Kind:         kind,
		Toolchain:    toolchain,
		ManifestPath: pkg.ManifestPath(),
		TargetDir:    layout.BinariesDir(),
		Profile:      pkg.Profile,
		Features:     opts.Features,
		Quiet:        !opts.CargoOutput && !cfg.CargoOutput,
		Color:        a.env.ColorStderr,
		Args:         opts.Args,
		Env: domain.ChildEnv{
			ScriptPath:  input.Path,
			SafeName:    input.SafeName(),
			PackageName: input.PackageName(),
			BasePath:    input.BasePath(cwd),
		},
	}

	// 4. Test and bench runs are driven entirely by cargo
	if kind != domain.BuildNormal {
		if err := a.freshness.Run(ctx, inv); err != nil {
			return 1, err
		}
		return 0, nil
	}

	// 5. Build if stale
	binary, _, err := a.freshness.Ensure(ctx, pkg, inv, &meta, opts.Force)
	if err != nil {
		return 1, err
	}
	if err := a.store.Put(pkg.Dir, meta); err != nil {
		a.logger.Warn("failed to record package metadata: " + err.Error())
	}

	// 6. Hand over to the binary. Collection must happen first since a
	// replaced process never returns here.
	cleanup.run()
	a.logger.Debug("executing " + binary)
	return a.strategy.Execute(ctx, binary, opts.Args, inv.Env.Merge(a.environ()))
}

// resolve classifies the command line target.
func (a *App) resolve(opts RunOptions) (domain.Input, error) {
	if opts.Loop {
		return a.resolver.ResolveLoop(opts.Script, opts.Count)
	}
	return a.resolver.Resolve(opts.Script, opts.Expr, opts.Template)
}

// writePackage creates the package directory and its files. A directory
// created here under the cache root is removed again if writing fails.
func (a *App) writePackage(pkg *domain.SynthesizedPackage, force bool) error {
	created, err := a.writer.EnsureDir(pkg.Dir)
	if err != nil {
		return err
	}

	guard := newPackageGuard(a.writer, a.logger, pkg.Dir, created && pkg.Owned)
	defer guard.release()

	if _, err := a.writer.WriteIfChanged(pkg.ManifestPath(), []byte(pkg.Manifest)); err != nil {
		return err
	}

	if force {
		if err := a.writer.Overwrite(pkg.SourcePath(), []byte(pkg.Source)); err != nil {
			return err
		}
	} else {
		res, err := a.writer.WriteIfChanged(pkg.SourcePath(), []byte(pkg.Source))
		if err != nil {
			return err
		}
		a.logger.Debug("source " + res.String())
	}

	guard.disarm()
	return nil
}

func selectToolchain(cfg *domain.Config, opts RunOptions) string {
	switch {
	case opts.Toolchain != "":
		return opts.Toolchain
	case opts.Bench:
		return domain.BenchToolchain
	case cfg.Toolchain != "":
		return cfg.Toolchain
	default:
		return domain.DefaultToolchain
	}
}

// cacheLayout resolves the cache root: environment, then config, then the
// per-user cache directory.
func cacheLayout(cfg *domain.Config) (domain.CacheLayout, error) {
	root := os.Getenv(domain.CacheDirEnvVar)
	if root == "" {
		root = cfg.CacheDir
	}
	if root == "" {
		root = domain.DefaultCacheRoot()
	}
	if root == "" {
		return domain.CacheLayout{}, domain.ErrCacheDirUnavailable
	}
	return domain.CacheLayout{Root: root}, nil
}
