// Package python embeds the host CPython interpreter, loads extension modules into it
// and merges their symbols into its __main__ namespace.
package python

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sync"

	"go.trai.ch/dcell/internal/core/domain"
	"go.trai.ch/dcell/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.InterpreterProbe = (*Probe)(nil)

// probeScript prints the interpreter identity as a single JSON line.
const probeScript = `import json, os, sys, sysconfig
v = sys.version_info
var = sysconfig.get_config_var
lib = ""
if sys.platform == "win32":
    lib = os.path.join(sys.base_prefix, "python%d%d.dll" % (v[0], v[1]))
elif var("PYTHONFRAMEWORK"):
    lib = os.path.join(var("PYTHONFRAMEWORKPREFIX") or "", var("LDLIBRARY") or "")
elif var("LIBDIR") and var("LDLIBRARY"):
    lib = os.path.join(var("LIBDIR"), var("INSTSONAME") or var("LDLIBRARY"))
print(json.dumps({
    "major": v[0], "minor": v[1], "micro": v[2],
    "executable": sys.executable,
    "ext_suffix": var("EXT_SUFFIX") or "",
    "library": lib,
}))
`

// Probe implements ports.InterpreterProbe by asking the configured interpreter about itself.
// The first successful answer is reused for the lifetime of the process.
type Probe struct {
	runner     ports.CommandRunner
	executable string

	mu       sync.Mutex
	identity *domain.InterpreterIdentity
}

// NewProbe creates a new Probe for the interpreter executable.
func NewProbe(runner ports.CommandRunner, executable string) *Probe {
	if executable == "" {
		executable = domain.DefaultPythonExecutable
	}
	return &Probe{runner: runner, executable: executable}
}

// Probe returns the interpreter identity.
func (p *Probe) Probe(ctx context.Context) (domain.InterpreterIdentity, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.identity != nil {
		return *p.identity, nil
	}

	out, err := p.runner.Run(ctx, domain.Command{Name: p.executable, Args: []string{"-c", probeScript}})
	if err != nil {
		return domain.InterpreterIdentity{}, zerr.With(errors.Join(domain.ErrInterpreterProbeFailed, err), "python", p.executable)
	}

	id, err := ParseIdentity(out)
	if err != nil {
		return domain.InterpreterIdentity{}, zerr.With(err, "python", p.executable)
	}
	p.identity = &id
	return id, nil
}

// ParseIdentity decodes the last JSON line of the probe output.
func ParseIdentity(out []byte) (domain.InterpreterIdentity, error) {
	lines := bytes.Split(bytes.TrimSpace(out), []byte("\n"))
	last := bytes.TrimSpace(lines[len(lines)-1])

	var id domain.InterpreterIdentity
	if err := json.Unmarshal(last, &id); err != nil {
		return id, zerr.With(errors.Join(domain.ErrInterpreterProbeFailed, err), domain.OutputKey, string(out))
	}
	if id.Major == 0 || id.Executable == "" {
		return id, zerr.With(zerr.Wrap(domain.ErrInterpreterProbeFailed, "incomplete interpreter identity"), domain.OutputKey, string(out))
	}
	return id, nil
}
