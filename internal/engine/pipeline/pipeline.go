// Package pipeline turns a cell's build configuration into loaded extension module symbols.
package pipeline

import (
	"context"
	"io"
	"os"
	"time"

	"go.trai.ch/dcell/internal/core/domain"
	"go.trai.ch/dcell/internal/core/ports"
	"go.trai.ch/zerr"
)

// Plan is the cache decision for a cell, made before anything is built.
type Plan struct {
	Interpreter  domain.InterpreterIdentity
	Fingerprint  domain.Fingerprint
	ModuleName   string
	BuildDir     string
	ArtifactPath string
	// Cached reports whether the shared library already exists on disk.
	Cached bool
	// Recorded reports whether this process already built the fingerprint.
	Recorded bool
}

// Result describes one executed cell.
type Result struct {
	Plan
	Outcome domain.BuildOutcome
	// Symbols are the module attributes that are merged into the session.
	Symbols map[string]any
	// Output is the build tool's combined output, empty for cache hits.
	Output []byte
}

// Pipeline runs fingerprinting, cache lookup, generation, build and load for one cell at a time.
type Pipeline struct {
	probe     ports.InterpreterProbe
	hasher    ports.Fingerprinter
	cache     ports.BuildCache
	generator ports.ManifestGenerator
	tool      ports.BuildTool
	loader    ports.Loader
	telemetry ports.Telemetry

	out io.Writer
	now func() time.Time
}

// NewPipeline creates a new Pipeline. Build output is written to stdout.
func NewPipeline(
	probe ports.InterpreterProbe,
	hasher ports.Fingerprinter,
	cache ports.BuildCache,
	generator ports.ManifestGenerator,
	tool ports.BuildTool,
	loader ports.Loader,
	telemetry ports.Telemetry,
) *Pipeline {
	return &Pipeline{
		probe:     probe,
		hasher:    hasher,
		cache:     cache,
		generator: generator,
		tool:      tool,
		loader:    loader,
		telemetry: telemetry,
		out:       os.Stdout,
		now:       time.Now,
	}
}

// SetOutput sets where build output is echoed.
func (p *Pipeline) SetOutput(w io.Writer) {
	p.out = w
}

// Plan fingerprints cfg and reports where its module lives and whether it is already built.
// It has no side effects on disk.
func (p *Pipeline) Plan(ctx context.Context, cfg domain.BuildConfig) (Plan, error) {
	ctx, vertex := p.telemetry.Record(ctx, "fingerprint", ports.WithInternal())

	plan, err := p.plan(ctx, cfg)
	vertex.Complete(err)
	return plan, err
}

func (p *Pipeline) plan(ctx context.Context, cfg domain.BuildConfig) (Plan, error) {
	id, err := p.probe.Probe(ctx)
	if err != nil {
		return Plan{}, err
	}

	fp, err := p.hasher.Fingerprint(cfg, id)
	if err != nil {
		return Plan{}, err
	}

	name, err := domain.ResolveModuleName(cfg, fp)
	if err != nil {
		return Plan{}, err
	}

	cached, err := p.cache.HasArtifact(name)
	if err != nil {
		return Plan{}, zerr.With(zerr.Wrap(err, "failed to check build artifact"), "module", name)
	}
	_, recorded := p.cache.Lookup(fp)

	return Plan{
		Interpreter:  id,
		Fingerprint:  fp,
		ModuleName:   name,
		BuildDir:     p.cache.Dir(name),
		ArtifactPath: p.cache.ArtifactPath(name),
		Cached:       cached,
		Recorded:     recorded,
	}, nil
}

// Run executes one cell: an existing artifact is reused unless cfg.Force is set,
// otherwise the build directory is generated and built. The module is then loaded
// and its exportable symbols returned. Nothing is loaded when the build fails.
func (p *Pipeline) Run(ctx context.Context, cfg domain.BuildConfig) (*Result, error) {
	plan, err := p.Plan(ctx, cfg)
	if err != nil {
		return nil, err
	}

	res := &Result{Plan: plan, Outcome: domain.OutcomeCached}
	if !plan.Cached || cfg.Force {
		output, err := p.build(ctx, cfg, plan)
		res.Output = output
		if err != nil {
			return res, err
		}
		res.Outcome = domain.OutcomeBuilt
	} else {
		_, vertex := p.telemetry.Record(ctx, "build "+plan.ModuleName)
		vertex.Cached()
		vertex.Complete(nil)
	}

	symbols, err := p.load(ctx, plan)
	if err != nil {
		return res, err
	}
	res.Symbols = symbols
	return res, nil
}

func (p *Pipeline) build(ctx context.Context, cfg domain.BuildConfig, plan Plan) (output []byte, err error) {
	ctx, vertex := p.telemetry.Record(ctx, "build "+plan.ModuleName)
	defer func() { vertex.Complete(err) }()

	dir, err := p.cache.Prepare(plan.ModuleName)
	if err != nil {
		return nil, err
	}

	if _, err := p.generator.Generate(ctx, domain.ManifestRequest{
		ModuleName:  plan.ModuleName,
		BuildDir:    dir,
		Config:      cfg,
		Interpreter: plan.Interpreter,
	}); err != nil {
		// Describe and C shim failures carry the tool output.
		if out := domain.CommandOutput(err); out != "" {
			_, _ = io.WriteString(p.out, out)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to generate build files"), "module", plan.ModuleName)
	}

	output, err = p.tool.Build(ctx, dir, cfg)
	if err != nil {
		_, _ = p.out.Write(output)
		return output, zerr.With(zerr.Wrap(err, "failed to build module"), "module", plan.ModuleName)
	}
	if cfg.PrintOutput {
		_, _ = p.out.Write(output)
	}

	built, err := p.cache.HasArtifact(plan.ModuleName)
	if err != nil {
		return output, zerr.With(zerr.Wrap(err, "failed to check build artifact"), "module", plan.ModuleName)
	}
	if !built {
		return output, zerr.With(zerr.Wrap(domain.ErrBuildFailed, "build produced no shared library"),
			"path", plan.ArtifactPath)
	}

	if !plan.Recorded {
		p.cache.Record(domain.CacheEntry{
			Fingerprint: plan.Fingerprint,
			ModuleName:  plan.ModuleName,
			BuildDir:    dir,
			Timestamp:   p.now(),
		})
	}
	return output, nil
}

func (p *Pipeline) load(ctx context.Context, plan Plan) (symbols map[string]any, err error) {
	ctx, vertex := p.telemetry.Record(ctx, "load "+plan.ModuleName)
	defer func() { vertex.Complete(err) }()

	mod, err := p.loader.Load(ctx, plan.ArtifactPath, plan.ModuleName)
	if err != nil {
		return nil, err
	}

	attrs, err := mod.Attributes()
	if err != nil {
		return nil, err
	}
	return domain.ExportableSymbols(attrs), nil
}
