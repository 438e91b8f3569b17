// Package config provides the settings loader for dcell.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/dcell/internal/core/domain"
	"go.trai.ch/dcell/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	getenv func(string) string
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, getenv: os.Getenv}
}

// Load reads the settings file at path and applies defaults and environment overrides.
// An empty path or a missing file yields the defaults.
func (l *Loader) Load(path string) (domain.Settings, error) {
	var file Configfile
	if path != "" {
		if err := readConfigfile(filepath.Clean(path), &file); err != nil {
			return domain.Settings{}, err
		}
	}

	settings := domain.Settings{
		CacheDir:    file.CacheDir,
		Dub:         file.Dub,
		CC:          file.CC,
		Python:      file.Python,
		Compiler:    file.Compiler,
		PydVersion:  file.PydVersion,
		PpydVersion: file.PpydVersion,
	}

	if dir := l.getenv(domain.CacheDirEnv); dir != "" {
		settings.CacheDir = dir
	}
	if settings.CacheDir != "" && !filepath.IsAbs(settings.CacheDir) {
		abs, err := filepath.Abs(settings.CacheDir)
		if err != nil {
			return domain.Settings{}, zerr.With(zerr.Wrap(err, "failed to resolve cache directory"), "path", settings.CacheDir)
		}
		settings.CacheDir = abs
	}

	return settings.WithDefaults(), nil
}

func readConfigfile(path string, file *Configfile) error {
	//nolint:gosec // Path is provided by the user via --config
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	if err := yaml.Unmarshal(data, file); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}
	return nil
}
