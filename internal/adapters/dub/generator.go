package dub

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"go.trai.ch/dcell/internal/core/domain"
	"go.trai.ch/dcell/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestGenerator = (*Generator)(nil)

// Preamble is prepended to every cell. It exposes the cell's public symbols through PydMain.
const Preamble = `import pyd.pyd, pyd.embedded;
import ppyd;

extern(C) void PydMain()
{
    registerAll!(__traits(parent, PydMain))();
}

`

// ModuleNamePlaceholder is replaced by the module name in the entry template.
const ModuleNamePlaceholder = "%(modulename)s"

// Paths inside the binding package's infrastructure directory.
var (
	linuxBoilerplate   = filepath.Join("d", "python_so_linux_boilerplate.d")
	windowsBoilerplate = filepath.Join("d", "python_dll_windows_boilerplate.d")
	shimSource         = filepath.Join("d", "so_ctor.c")
	entryTemplate      = filepath.Join("d", "pydmain_template.d")
)

// Generator implements ports.ManifestGenerator for pyd extension modules.
type Generator struct {
	tool        ports.BuildTool
	cc          ports.CCompiler
	ppydVersion string
	goos        string
}

// NewGenerator creates a new Generator for the running platform.
func NewGenerator(tool ports.BuildTool, cc ports.CCompiler, ppydVersion string) *Generator {
	return NewGeneratorForOS(tool, cc, ppydVersion, runtime.GOOS)
}

// NewGeneratorForOS creates a new Generator emitting the boilerplate for goos.
func NewGeneratorForOS(tool ports.BuildTool, cc ports.CCompiler, ppydVersion, goos string) *Generator {
	if ppydVersion == "" {
		ppydVersion = domain.DefaultPpydVersion
	}
	return &Generator{tool: tool, cc: cc, ppydVersion: ppydVersion, goos: goos}
}

// Generate writes the cell source, the entry point, the C shim object and the manifest into req.BuildDir.
func (g *Generator) Generate(ctx context.Context, req domain.ManifestRequest) (domain.Manifest, error) {
	dir := req.BuildDir
	sourcePath := filepath.Join(dir, domain.SourceFileName(req.ModuleName))
	if err := writeFile(sourcePath, Preamble+req.Config.NormalizedSource()); err != nil {
		return nil, err
	}

	base := g.BaseManifest(req)

	if err := removeStaleLock(dir); err != nil {
		return nil, err
	}
	if err := writeManifest(dir, domain.MergeManifest(base, req.Config.Overrides)); err != nil {
		return nil, err
	}

	pydPath, err := g.tool.Describe(ctx, dir, domain.BindingPackage)
	if err != nil {
		return nil, err
	}
	infra := filepath.Join(pydPath, "infrastructure")

	boilerplate := filepath.Join(infra, linuxBoilerplate)
	if g.goos == "windows" {
		boilerplate = filepath.Join(infra, windowsBoilerplate)
	}

	shim := filepath.Join(dir, domain.ShimObjectName)
	if err := g.cc.CompileObject(ctx, filepath.Join(infra, shimSource), shim); err != nil {
		return nil, err
	}

	entry, err := g.writeEntry(filepath.Join(infra, entryTemplate), dir, req.ModuleName)
	if err != nil {
		return nil, err
	}

	base.AppendSourceFiles(boilerplate, shim, entry)

	manifest := domain.MergeManifest(base, req.Config.Overrides)
	if err := writeManifest(dir, manifest); err != nil {
		return nil, err
	}
	return manifest, nil
}

// BaseManifest returns the manifest derived from the request before overrides and infrastructure sources.
func (g *Generator) BaseManifest(req domain.ManifestRequest) domain.Manifest {
	cfg := req.Config
	m := domain.Manifest{
		domain.ManifestKeyName: req.ModuleName,
		domain.ManifestKeyDependencies: map[string]any{
			domain.BindingPackage: cfg.PydVersion,
			domain.HelperPackage:  g.ppydVersion,
		},
		domain.ManifestKeySubConfigurations: map[string]any{
			domain.BindingPackage: req.Interpreter.SubConfiguration(),
		},
		domain.ManifestKeySourceFiles: []any{domain.SourceFileName(req.ModuleName)},
		domain.ManifestKeyTargetType:  domain.TargetTypeDynamicLibrary,
		domain.ManifestKeyLibs:        toList(cfg.Libraries),
		domain.ManifestKeyVersions:    []any{domain.ExtensionVersion},
	}

	if len(cfg.IncludeDirs) > 0 {
		m[domain.ManifestKeyImportPaths] = toList(cfg.IncludeDirs)
	}
	if len(cfg.CompileArgs) > 0 {
		m[domain.ManifestKeyDFlags] = toList(cfg.CompileArgs)
	}

	lflags := make([]string, 0, len(cfg.LibraryDirs)+len(cfg.LinkArgs))
	for _, dir := range cfg.LibraryDirs {
		lflags = append(lflags, "-L"+dir)
	}
	lflags = append(lflags, cfg.LinkArgs...)
	if len(lflags) > 0 {
		m[domain.ManifestKeyLFlags] = toList(lflags)
	}
	return m
}

func (g *Generator) writeEntry(template, dir, name string) (string, error) {
	//nolint:gosec // Template path comes from the build tool's package resolution
	data, err := os.ReadFile(template)
	if err != nil {
		return "", zerr.With(errors.Join(domain.ErrManifestWriteFailed, err), "path", template)
	}

	path := filepath.Join(dir, domain.EntryFileName)
	if err := writeFile(path, strings.ReplaceAll(string(data), ModuleNamePlaceholder, name)); err != nil {
		return "", err
	}
	return path, nil
}

func removeStaleLock(dir string) error {
	path := filepath.Join(dir, domain.LockFileName)
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return zerr.With(errors.Join(domain.ErrManifestWriteFailed, err), "path", path)
	}
	return nil
}

func writeManifest(dir string, m domain.Manifest) error {
	path := filepath.Join(dir, domain.ManifestFileName)
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return zerr.With(errors.Join(domain.ErrManifestWriteFailed, err), "path", path)
	}
	return writeFile(path, string(data)+"\n")
}

func writeFile(path, content string) error {
	//nolint:gosec // Path is inside the build directory
	if err := os.WriteFile(path, []byte(content), domain.FilePerm); err != nil {
		return zerr.With(errors.Join(domain.ErrManifestWriteFailed, err), "path", path)
	}
	return nil
}

func toList(values []string) []any {
	out := make([]any, 0, len(values))
	for _, v := range values {
		out = append(out, v)
	}
	return out
}
