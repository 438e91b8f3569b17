package domain

import (
	"maps"
	"slices"
	"strings"
)

const (
	// DefaultCompiler is the D compiler handed to the build tool when none is requested.
	DefaultCompiler = "dmd"

	// DefaultPydVersion is the minimum version constraint for the pyd binding library.
	DefaultPydVersion = ">=0.9.7"

	// DefaultPpydVersion is the version constraint for the ppyd registration helper.
	DefaultPpydVersion = ">=0.1.3"
)

// BuildConfig describes a single cell invocation: the snippet and everything that influences its build.
// It is treated as immutable once constructed; NewBuildConfig returns an independent copy.
type BuildConfig struct {
	// Source is the raw cell body as supplied by the host.
	Source string
	// FlagLine is the raw magic flag line as supplied by the host.
	FlagLine string

	ModuleName  string
	CompileArgs []string
	LinkArgs    []string
	IncludeDirs []string
	LibraryDirs []string
	Libraries   []string
	Compiler    string
	PydVersion  string
	DubArgs     []string
	Overrides   map[string]any
	Force       bool
	PrintOutput bool
}

// NewBuildConfig returns a copy of cfg with defaults applied and all slices and maps cloned,
// so later changes to the caller's values cannot leak into an invocation.
func NewBuildConfig(cfg BuildConfig) BuildConfig {
	out := cfg
	out.CompileArgs = slices.Clone(cfg.CompileArgs)
	out.LinkArgs = slices.Clone(cfg.LinkArgs)
	out.IncludeDirs = slices.Clone(cfg.IncludeDirs)
	out.LibraryDirs = slices.Clone(cfg.LibraryDirs)
	out.Libraries = slices.Clone(cfg.Libraries)
	out.DubArgs = slices.Clone(cfg.DubArgs)
	out.Overrides = cloneTree(cfg.Overrides)

	if out.Compiler == "" {
		out.Compiler = DefaultCompiler
	}
	if out.PydVersion == "" {
		out.PydVersion = DefaultPydVersion
	}
	return out
}

// NormalizedSource returns the cell text terminated by exactly one newline.
// Trailing newlines are collapsed rather than only appended when missing, so
// "x=1\n\n" and "x=1\n" share a fingerprint. Nothing else is touched.
func (c BuildConfig) NormalizedSource() string {
	return strings.TrimRight(c.Source, "\n") + "\n"
}

func cloneTree(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := maps.Clone(m)
	for k, v := range out {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return cloneTree(val)
	case []any:
		res := make([]any, len(val))
		for i, item := range val {
			res[i] = cloneValue(item)
		}
		return res
	default:
		return v
	}
}
