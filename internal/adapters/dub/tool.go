// Package dub drives the D package manager and generates its project files.
package dub

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"go.trai.ch/dcell/internal/core/domain"
	"go.trai.ch/dcell/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildTool = (*Tool)(nil)

// Tool implements ports.BuildTool by invoking the dub executable.
type Tool struct {
	runner     ports.CommandRunner
	executable string
}

// NewTool creates a new Tool running executable through runner.
func NewTool(runner ports.CommandRunner, executable string) *Tool {
	if executable == "" {
		executable = domain.DefaultDubExecutable
	}
	return &Tool{runner: runner, executable: executable}
}

// BuildArgs returns the arguments of the build invocation for the project in dir.
func BuildArgs(dir string, cfg domain.BuildConfig) []string {
	args := []string{"build", "--root=" + dir, "--compiler=" + cfg.Compiler}
	if cfg.Force {
		args = append(args, "--force")
	}
	return append(args, cfg.DubArgs...)
}

// Build runs the build tool on the project in dir and returns its combined output.
func (t *Tool) Build(ctx context.Context, dir string, cfg domain.BuildConfig) ([]byte, error) {
	out, err := t.runner.Run(ctx, domain.Command{
		Name: t.executable,
		Args: BuildArgs(dir, cfg),
		Dir:  dir,
	})
	if err != nil {
		return out, zerr.With(errors.Join(domain.ErrBuildFailed, err), "path", dir)
	}
	return out, nil
}

// Describe resolves the project in dir and returns the root path of package pkg.
func (t *Tool) Describe(ctx context.Context, dir, pkg string) (string, error) {
	out, err := t.runner.Run(ctx, domain.Command{
		Name: t.executable,
		Args: []string{"describe", "--root=" + dir},
		Dir:  dir,
	})
	if err != nil {
		return "", zerr.With(errors.Join(domain.ErrDescribeFailed, err), "path", dir)
	}
	return PackagePath(out, pkg)
}

type description struct {
	RootPackage string `json:"rootPackage"`
	Packages    []struct {
		Name string `json:"name"`
		Path string `json:"path"`
	} `json:"packages"`
}

// PackagePath extracts the path of package pkg from describe output.
// Progress lines printed before the JSON document are skipped.
func PackagePath(out []byte, pkg string) (string, error) {
	start := jsonStart(out)
	if start < 0 {
		return "", zerr.With(zerr.Wrap(domain.ErrDescribeFailed, "no JSON document in describe output"), domain.OutputKey, string(out))
	}

	var desc description
	if err := json.NewDecoder(bytes.NewReader(out[start:])).Decode(&desc); err != nil {
		return "", zerr.With(errors.Join(domain.ErrDescribeFailed, err), domain.OutputKey, string(out))
	}

	for _, p := range desc.Packages {
		if p.Name == pkg && p.Path != "" {
			return p.Path, nil
		}
	}
	return "", zerr.With(zerr.Wrap(domain.ErrBindingNotFound, "package missing from describe output"), "package", pkg)
}

// jsonStart returns the offset of the first line that opens a JSON object.
func jsonStart(out []byte) int {
	offset := 0
	for line := range bytes.Lines(out) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("{")) {
			return offset
		}
		offset += len(line)
	}
	return -1
}
