package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/dcell/internal/core/domain"
)

func TestLibraryFileName(t *testing.T) {
	tests := []struct {
		goos     string
		expected string
	}{
		{"windows", "mod.dll"},
		{"darwin", "libmod.dylib"},
		{"linux", "libmod.so"},
		{"freebsd", "libmod.so"},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.LibraryFileName("mod", tt.goos))
		})
	}
}

func TestSourceFileName(t *testing.T) {
	assert.Equal(t, "mod.d", domain.SourceFileName("mod"))
}

func TestDefaultCacheRoot(t *testing.T) {
	root := domain.DefaultCacheRoot()

	assert.Equal(t, domain.PydDirName, filepath.Base(root))
	assert.Equal(t, domain.AppDirName, filepath.Base(filepath.Dir(root)))
}

func TestSettings_WithDefaults(t *testing.T) {
	s := domain.Settings{Dub: "/opt/dub", CC: ""}.WithDefaults()

	assert.Equal(t, "/opt/dub", s.Dub)
	assert.Equal(t, domain.DefaultPythonExecutable, s.Python)
	assert.Equal(t, domain.DefaultCompiler, s.Compiler)
	assert.Equal(t, domain.DefaultPpydVersion, s.PpydVersion)
	assert.Empty(t, s.CC)
}
