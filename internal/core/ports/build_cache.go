package ports

import "go.trai.ch/dcell/internal/core/domain"

// BuildCache maps module names to build directories and tracks builds made by this process.
//
//go:generate go run go.uber.org/mock/mockgen -source=build_cache.go -destination=mocks/mock_build_cache.go -package=mocks
type BuildCache interface {
	// Dir returns the build directory of a module. It does not touch the filesystem.
	Dir(name string) string
	// ArtifactPath returns where the build tool writes the module's shared library.
	ArtifactPath(name string) string
	// HasArtifact reports whether the module's shared library exists.
	HasArtifact(name string) (bool, error)
	// Prepare creates the module's build directory if needed and returns it.
	Prepare(name string) (string, error)
	// Record remembers a successful build.
	Record(entry domain.CacheEntry)
	// Lookup returns the entry recorded for a fingerprint.
	Lookup(fp domain.Fingerprint) (domain.CacheEntry, bool)
	// Entries returns every recorded entry.
	Entries() []domain.CacheEntry
	// Modules lists the module names that have a build directory on disk.
	Modules() ([]string, error)
}
