// Package magic parses %%pyd cells: the magic flag line and the D snippet below it.
package magic

import (
	"errors"
	"io"
	"strings"

	"github.com/google/shlex"
	"github.com/spf13/pflag"
	"go.trai.ch/dcell/internal/core/domain"
	"go.trai.ch/dcell/internal/core/ports"
	"go.trai.ch/zerr"
)

// Marker opens every cell handled by this package.
const Marker = "%%pyd"

var _ ports.CellParser = (*Parser)(nil)

// Parser implements ports.CellParser.
type Parser struct {
	compiler   string
	pydVersion string
}

// NewParser creates a Parser whose defaults for --compiler and --pyd_version come from settings.
func NewParser(settings domain.Settings) *Parser {
	return &Parser{compiler: settings.Compiler, pydVersion: settings.PydVersion}
}

// Split separates a cell document into the flag line following the marker and the body.
func (p *Parser) Split(text string) (line, body string, err error) {
	first, rest, _ := strings.Cut(text, "\n")
	first = strings.TrimRight(first, "\r")

	flags, ok := strings.CutPrefix(strings.TrimSpace(first), Marker)
	if !ok || (flags != "" && flags[0] != ' ' && flags[0] != '\t') {
		return "", "", zerr.With(zerr.Wrap(domain.ErrInvalidFlags, "cell must start with "+Marker), "line", first)
	}
	return strings.TrimSpace(flags), rest, nil
}

// Parse builds the configuration for one invocation.
// Flag parsing, override decoding and module name validation all happen here,
// before any file I/O.
func (p *Parser) Parse(line, body string) (domain.BuildConfig, error) {
	args, err := shlex.Split(line)
	if err != nil {
		return domain.BuildConfig{}, zerr.With(errors.Join(domain.ErrInvalidFlags, err), "line", line)
	}

	cfg := domain.BuildConfig{Source: body, FlagLine: line}
	var dubConfig, dubArgs string

	fs := pflag.NewFlagSet(Marker, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVarP(&cfg.ModuleName, "name", "n", "", "name of the extension module")
	fs.StringArrayVarP(&cfg.IncludeDirs, "include", "I", nil, "add an import path (repeatable)")
	fs.StringArrayVarP(&cfg.LibraryDirs, "library-dir", "L", nil, "add a library search path (repeatable)")
	fs.StringArrayVarP(&cfg.Libraries, "lib", "l", nil, "link against a library (repeatable)")
	fs.StringArrayVarP(&cfg.CompileArgs, "compile-args", "c", nil, "extra D compiler flag (repeatable)")
	fs.StringArrayVar(&cfg.LinkArgs, "link-args", nil, "extra linker flag (repeatable)")
	fs.BoolVarP(&cfg.Force, "force", "f", false, "rebuild even if a cached module exists")
	fs.StringVar(&cfg.Compiler, "compiler", p.compiler, "D compiler handed to dub")
	fs.StringVar(&cfg.PydVersion, "pyd_version", p.pydVersion, "pyd version constraint")
	fs.StringVar(&dubConfig, "dub_config", "", "JSON or YAML mapping merged into dub.json")
	fs.StringVar(&dubArgs, "dub_args", "", "extra arguments for dub build")
	fs.BoolVar(&cfg.PrintOutput, "print_compiler_output", false, "echo the build output on success")

	if err := fs.Parse(args); err != nil {
		return domain.BuildConfig{}, zerr.With(errors.Join(domain.ErrInvalidFlags, err), "line", line)
	}
	if fs.NArg() > 0 {
		return domain.BuildConfig{}, zerr.With(
			zerr.Wrap(domain.ErrInvalidFlags, "unexpected positional arguments"), "args", fs.Args())
	}

	if cfg.ModuleName != "" {
		if err := domain.ValidateModuleName(cfg.ModuleName); err != nil {
			return domain.BuildConfig{}, err
		}
	}

	if dubConfig != "" {
		if cfg.Overrides, err = ParseOverrides(dubConfig); err != nil {
			return domain.BuildConfig{}, err
		}
	}

	if dubArgs != "" {
		if cfg.DubArgs, err = shlex.Split(dubArgs); err != nil {
			return domain.BuildConfig{}, zerr.With(errors.Join(domain.ErrInvalidFlags, err), "dub_args", dubArgs)
		}
	}

	return domain.NewBuildConfig(cfg), nil
}
