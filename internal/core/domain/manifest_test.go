package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dcell/internal/core/domain"
)

func TestMergeManifest(t *testing.T) {
	tests := []struct {
		name     string
		base     map[string]any
		override map[string]any
		expected map[string]any
	}{
		{
			name:     "empty list receives override entries",
			base:     map[string]any{"libs": []any{}},
			override: map[string]any{"libs": []any{"fftw3"}},
			expected: map[string]any{"libs": []any{"fftw3"}},
		},
		{
			name:     "lists concatenate without duplicates",
			base:     map[string]any{"sourceFiles": []any{"a.d"}},
			override: map[string]any{"sourceFiles": []any{"b.d", "a.d"}},
			expected: map[string]any{"sourceFiles": []any{"a.d", "b.d"}},
		},
		{
			name:     "scalar override wins",
			base:     map[string]any{"targetType": "dynamicLibrary"},
			override: map[string]any{"targetType": "staticLibrary"},
			expected: map[string]any{"targetType": "staticLibrary"},
		},
		{
			name: "nested objects merge recursively",
			base: map[string]any{
				"dependencies": map[string]any{"pyd": ">=0.9.7", "ppyd": ">=0.1.3"},
			},
			override: map[string]any{
				"dependencies": map[string]any{"mir": "~>3.2"},
			},
			expected: map[string]any{
				"dependencies": map[string]any{"pyd": ">=0.9.7", "ppyd": ">=0.1.3", "mir": "~>3.2"},
			},
		},
		{
			name:     "kind mismatch replaces base",
			base:     map[string]any{"libs": []any{"m"}},
			override: map[string]any{"libs": "m"},
			expected: map[string]any{"libs": "m"},
		},
		{
			name:     "new keys are added",
			base:     map[string]any{"name": "x"},
			override: map[string]any{"buildRequirements": []any{"allowWarnings"}},
			expected: map[string]any{"name": "x", "buildRequirements": []any{"allowWarnings"}},
		},
		{
			name:     "nil override returns copy of base",
			base:     map[string]any{"name": "x"},
			override: nil,
			expected: map[string]any{"name": "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.MergeManifest(tt.base, tt.override)
			assert.Equal(t, tt.expected, map[string]any(got))
		})
	}
}

func TestMergeManifest_DoesNotMutateInputs(t *testing.T) {
	base := map[string]any{
		"libs":         []any{"a"},
		"dependencies": map[string]any{"pyd": "1"},
	}
	override := map[string]any{
		"libs":         []any{"b"},
		"dependencies": map[string]any{"pyd": "2"},
	}

	got := domain.MergeManifest(base, override)
	got["libs"] = append(got["libs"].([]any), "c")
	got["dependencies"].(map[string]any)["extra"] = "x"

	assert.Equal(t, []any{"a"}, base["libs"])
	assert.Equal(t, map[string]any{"pyd": "1"}, base["dependencies"])
	assert.Equal(t, []any{"b"}, override["libs"])
	assert.Equal(t, map[string]any{"pyd": "2"}, override["dependencies"])
}

func TestManifest_SourceFiles(t *testing.T) {
	m := domain.Manifest{domain.ManifestKeySourceFiles: []any{"cell.d"}}

	m.AppendSourceFiles("boilerplate.d", "so_ctor.o", "pydmain.d")

	require.Equal(t, []string{"cell.d", "boilerplate.d", "so_ctor.o", "pydmain.d"}, m.SourceFiles())
}

func TestManifest_AppendSourceFilesToEmpty(t *testing.T) {
	m := domain.Manifest{}

	m.AppendSourceFiles("a.d")

	assert.Equal(t, []string{"a.d"}, m.SourceFiles())
}
