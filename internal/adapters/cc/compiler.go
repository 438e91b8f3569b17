// Package cc compiles the C shim of extension modules with the system C compiler.
package cc

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"github.com/google/shlex"
	"go.trai.ch/dcell/internal/core/domain"
	"go.trai.ch/dcell/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CCompiler = (*Compiler)(nil)

// candidates are tried in order when neither the settings nor $CC name a compiler.
var candidates = []string{"cc", "gcc", "clang"}

// Compiler implements ports.CCompiler.
type Compiler struct {
	runner     ports.CommandRunner
	configured string
	getenv     func(string) string
	lookPath   func(string) (string, error)
}

// NewCompiler creates a new Compiler. configured may be empty, in which case
// $CC and then the usual compiler names on PATH are used.
func NewCompiler(runner ports.CommandRunner, configured string) *Compiler {
	return &Compiler{
		runner:     runner,
		configured: configured,
		getenv:     os.Getenv,
		lookPath:   exec.LookPath,
	}
}

// Resolve returns the compiler command line, split shell-style so that values like "ccache gcc" work.
func (c *Compiler) Resolve() ([]string, error) {
	for _, command := range []string{c.configured, c.getenv("CC")} {
		if command == "" {
			continue
		}
		argv, err := shlex.Split(command)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to split C compiler command"), "cc", command)
		}
		if len(argv) > 0 {
			return argv, nil
		}
	}

	for _, name := range candidates {
		if path, err := c.lookPath(name); err == nil {
			return []string{path}, nil
		}
	}
	return nil, zerr.With(zerr.Wrap(domain.ErrCCompilerNotFound, "cannot compile C shim"), "candidates", candidates)
}

// CompileObject compiles src into the position independent object file out.
func (c *Compiler) CompileObject(ctx context.Context, src, out string) error {
	argv, err := c.Resolve()
	if err != nil {
		return err
	}

	args := append(argv[1:len(argv):len(argv)], "-c", "-fPIC", src, "-o", out)
	if _, err := c.runner.Run(ctx, domain.Command{Name: argv[0], Args: args}); err != nil {
		return zerr.With(errors.Join(domain.ErrCCompileFailed, err), "source", src)
	}
	return nil
}
