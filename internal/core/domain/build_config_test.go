package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/dcell/internal/core/domain"
)

func TestNewBuildConfig_Defaults(t *testing.T) {
	cfg := domain.NewBuildConfig(domain.BuildConfig{Source: "int f() { return 1; }"})

	assert.Equal(t, domain.DefaultCompiler, cfg.Compiler)
	assert.Equal(t, domain.DefaultPydVersion, cfg.PydVersion)
}

func TestNewBuildConfig_CopiesInputs(t *testing.T) {
	args := []string{"-O"}
	overrides := map[string]any{"libs": []any{"m"}}

	cfg := domain.NewBuildConfig(domain.BuildConfig{
		CompileArgs: args,
		Overrides:   overrides,
		Compiler:    "ldc2",
	})

	args[0] = "-g"
	overrides["libs"].([]any)[0] = "z"

	assert.Equal(t, []string{"-O"}, cfg.CompileArgs)
	assert.Equal(t, []any{"m"}, cfg.Overrides["libs"])
	assert.Equal(t, "ldc2", cfg.Compiler)
}

func TestBuildConfig_NormalizedSource(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected string
	}{
		{"appends newline", "int x;", "int x;\n"},
		{"keeps single newline", "int x;\n", "int x;\n"},
		{"collapses trailing newlines", "int x;\n\n\n", "int x;\n"},
		{"keeps inner whitespace", "  int x;\n\n  int y;  ", "  int x;\n\n  int y;  \n"},
		{"empty source", "", "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := domain.BuildConfig{Source: tt.source}
			assert.Equal(t, tt.expected, cfg.NormalizedSource())
		})
	}
}
