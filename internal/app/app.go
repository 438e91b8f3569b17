// Package app implements the application layer for dcell.
package app

import (
	"context"
	"fmt"
	"os"

	"go.trai.ch/dcell/internal/core/ports"
	"go.trai.ch/dcell/internal/engine/pipeline"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	parser    ports.CellParser
	pipeline  *pipeline.Pipeline
	cache     ports.BuildCache
	session   ports.Session
	telemetry ports.Telemetry
	logger    ports.Logger
}

// New creates a new App instance.
func New(
	parser ports.CellParser,
	pipe *pipeline.Pipeline,
	cache ports.BuildCache,
	session ports.Session,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		parser:    parser,
		pipeline:  pipe,
		cache:     cache,
		session:   session,
		telemetry: telemetry,
		logger:    logger,
	}
}

// CellResult is the outcome of one executed cell file.
type CellResult struct {
	File string
	*pipeline.Result
}

// RunCell executes a single magic invocation and merges the module's symbols into the session.
// The session is left untouched when any step fails.
func (a *App) RunCell(ctx context.Context, line, cell string) (*pipeline.Result, error) {
	cfg, err := a.parser.Parse(line, cell)
	if err != nil {
		return nil, err
	}

	res, err := a.pipeline.Run(ctx, cfg)
	if err != nil {
		return res, err
	}

	if err := a.session.Push(res.Symbols); err != nil {
		return res, zerr.With(zerr.Wrap(err, "failed to merge symbols"), "module", res.ModuleName)
	}

	a.logger.Info(fmt.Sprintf("%s %s: %d symbols", res.Outcome, res.ModuleName, len(res.Symbols)))
	return res, nil
}

// Run executes the cell files in order in one session and stops at the first failure.
// Files are read concurrently up front so a missing file fails the run before anything is built.
func (a *App) Run(ctx context.Context, files []string) ([]CellResult, error) {
	texts, err := readAll(ctx, files)
	if err != nil {
		return nil, err
	}

	results := make([]CellResult, 0, len(files))
	for i, file := range files {
		line, body, err := a.parser.Split(texts[i])
		if err != nil {
			return results, zerr.With(err, "file", file)
		}

		res, err := a.RunCell(ctx, line, body)
		if err != nil {
			return results, zerr.With(zerr.Wrap(err, "cell failed"), "file", file)
		}
		results = append(results, CellResult{File: file, Result: res})
	}
	return results, nil
}

// Inspect reports the cache decision for a cell file without building or loading anything.
func (a *App) Inspect(ctx context.Context, file string) (pipeline.Plan, error) {
	texts, err := readAll(ctx, []string{file})
	if err != nil {
		return pipeline.Plan{}, err
	}

	line, body, err := a.parser.Split(texts[0])
	if err != nil {
		return pipeline.Plan{}, zerr.With(err, "file", file)
	}

	cfg, err := a.parser.Parse(line, body)
	if err != nil {
		return pipeline.Plan{}, zerr.With(zerr.Wrap(err, "invalid cell"), "file", file)
	}
	return a.pipeline.Plan(ctx, cfg)
}

// ModuleStatus describes a build directory in the cache.
type ModuleStatus struct {
	Name     string
	Dir      string
	Artifact bool
}

// Modules lists the build directories in the cache and whether each holds a shared library.
func (a *App) Modules() ([]ModuleStatus, error) {
	names, err := a.cache.Modules()
	if err != nil {
		return nil, err
	}

	out := make([]ModuleStatus, 0, len(names))
	for _, name := range names {
		ok, err := a.cache.HasArtifact(name)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to check build artifact"), "module", name)
		}
		out = append(out, ModuleStatus{Name: name, Dir: a.cache.Dir(name), Artifact: ok})
	}
	return out, nil
}

// Close flushes the telemetry recording.
func (a *App) Close() error {
	return a.telemetry.Close()
}

func readAll(ctx context.Context, files []string) ([]string, error) {
	texts := make([]string, len(files))
	g, ctx := errgroup.WithContext(ctx)
	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(file)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to read cell file"), "file", file)
			}
			texts[i] = string(data)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return texts, nil
}
