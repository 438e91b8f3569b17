// Package shell runs external tools and captures their output.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"

	"go.trai.ch/dcell/internal/core/domain"
	"go.trai.ch/dcell/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CommandRunner = (*Runner)(nil)

// Runner implements ports.CommandRunner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run executes the command and returns its combined output.
// The environment is the process environment with cmd.Env layered on top; a PATH in
// cmd.Env is prepended to the system PATH. When ctx carries a vertex the output is
// also streamed to it.
func (r *Runner) Run(ctx context.Context, cmd domain.Command) ([]byte, error) {
	if cmd.Name == "" {
		return nil, zerr.New("empty command")
	}

	cmdEnv := resolveEnvironment(os.Environ(), cmd.Env)

	executable := cmd.Name
	if !filepath.IsAbs(executable) && !strings.ContainsRune(executable, filepath.Separator) {
		if lp, err := lookPath(executable, cmdEnv); err == nil {
			executable = lp
		}
	}

	c := exec.CommandContext(ctx, executable, cmd.Args...) //nolint:gosec // tool paths come from settings
	if len(c.Args) > 0 {
		c.Args[0] = cmd.Name
	}
	c.Dir = cmd.Dir
	c.Env = cmdEnv

	out := &lockedBuffer{}
	if v, ok := ports.VertexFromContext(ctx); ok {
		c.Stdout = io.MultiWriter(out, v.Stdout())
		c.Stderr = io.MultiWriter(out, v.Stderr())
	} else {
		c.Stdout = out
		c.Stderr = out
	}

	if err := c.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		r.logger.Warn("command exited with status " + strconv.Itoa(exitCode) + ": " + strings.Join(cmd.Argv(), " "))

		output := out.Bytes()
		runErr := zerr.With(zerr.Wrap(err, "command failed"), "command", strings.Join(cmd.Argv(), " "))
		runErr = zerr.With(runErr, "exit_code", exitCode)
		return output, zerr.With(runErr, domain.OutputKey, string(output))
	}

	return out.Bytes(), nil
}

// lockedBuffer serializes writes from the stdout and stderr copiers.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.buf.Bytes())
}

// resolveEnvironment layers extra over the system environment.
// PATH from extra is prepended to the system PATH instead of replacing it.
func resolveEnvironment(sysEnv, extra []string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(extra))
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}

	for _, entry := range extra {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if k == "PATH" {
			if sysPath := envMap["PATH"]; sysPath != "" {
				v = v + string(os.PathListSeparator) + sysPath
			}
		}
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	slices.Sort(result)
	return result
}

// lookPath searches for an executable in the directories named by the PATH entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if p, ok := strings.CutPrefix(e, "PATH="); ok {
			path = p
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
