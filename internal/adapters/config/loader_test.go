package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dcell/internal/adapters/config"
	"go.trai.ch/dcell/internal/core/domain"
	"go.trai.ch/dcell/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func noEnv(string) string { return "" }

func TestLoad_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	content := `
version: "1"
cache_dir: /var/cache/cells
dub: /opt/dlang/dub
cc: clang
python: /usr/bin/python3.12
compiler: ldc2
pyd_version: "~>0.14"
`
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))

	loader := config.NewLoader(mocks.NewMockLogger(ctrl))
	loader.SetGetenv(noEnv)

	settings, err := loader.Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "/var/cache/cells", settings.CacheDir)
	assert.Equal(t, "/opt/dlang/dub", settings.Dub)
	assert.Equal(t, "clang", settings.CC)
	assert.Equal(t, "/usr/bin/python3.12", settings.Python)
	assert.Equal(t, "ldc2", settings.Compiler)
	assert.Equal(t, "~>0.14", settings.PydVersion)
	assert.Equal(t, domain.DefaultPpydVersion, settings.PpydVersion)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := config.NewLoader(mocks.NewMockLogger(ctrl))
	loader.SetGetenv(noEnv)

	settings, err := loader.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestLoad_EnvOverridesCacheDir(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("cache_dir: /from/file\n"), 0o600))

	envDir := t.TempDir()
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))
	loader.SetGetenv(func(key string) string {
		if key == domain.CacheDirEnv {
			return envDir
		}
		return ""
	})

	settings, err := loader.Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, envDir, settings.CacheDir)
}

func TestLoad_InvalidYAML(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("dub: [unterminated\n"), 0o600))

	loader := config.NewLoader(mocks.NewMockLogger(ctrl))
	loader.SetGetenv(noEnv)

	_, err := loader.Load(configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrConfigParseFailed.Error())
}

func TestLoad_DirectoryIsReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := config.NewLoader(mocks.NewMockLogger(ctrl))
	loader.SetGetenv(noEnv)

	_, err := loader.Load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrConfigReadFailed.Error())
	assert.False(t, errors.Is(err, os.ErrNotExist))
}

func TestPathFromContext(t *testing.T) {
	ctx := config.WithPath(context.Background(), "/etc/dcell.yaml")
	assert.Equal(t, "/etc/dcell.yaml", config.PathFromContext(ctx))
	assert.Equal(t, domain.DefaultConfigPath(), config.PathFromContext(context.Background()))
}
