// Package cas implements the build directory layout and the fingerprint index.
package cas

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/dcell/internal/core/domain"
	"go.trai.ch/dcell/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildCache = (*Store)(nil)

// Store implements ports.BuildCache with one directory per module under a root
// and an in-memory index of the builds made by this process.
type Store struct {
	root     string
	goos     string
	verifier ports.Verifier

	mu      sync.RWMutex
	entries map[domain.Fingerprint]domain.CacheEntry
}

// NewStore creates a new Store rooted at root for the running platform.
func NewStore(root string, verifier ports.Verifier) *Store {
	return NewStoreForOS(root, runtime.GOOS, verifier)
}

// NewStoreForOS creates a new Store naming artifacts the way the build tool does on goos.
func NewStoreForOS(root, goos string, verifier ports.Verifier) *Store {
	return &Store{
		root:     filepath.Clean(root),
		goos:     goos,
		verifier: verifier,
		entries:  make(map[domain.Fingerprint]domain.CacheEntry),
	}
}

// Root returns the directory holding every build directory.
func (s *Store) Root() string {
	return s.root
}

// Dir returns the build directory of a module.
func (s *Store) Dir(name string) string {
	return filepath.Join(s.root, name)
}

// ArtifactPath returns the shared library path of a module.
func (s *Store) ArtifactPath(name string) string {
	return filepath.Join(s.Dir(name), domain.LibraryFileName(name, s.goos))
}

// HasArtifact reports whether the module's shared library exists.
func (s *Store) HasArtifact(name string) (bool, error) {
	return s.verifier.VerifyOutputs(s.Dir(name), []string{domain.LibraryFileName(name, s.goos)})
}

// Prepare creates the module's build directory if it does not exist yet.
func (s *Store) Prepare(name string) (string, error) {
	dir := s.Dir(name)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return "", zerr.With(errors.Join(domain.ErrCacheDirCreateFailed, err), "path", dir)
	}
	return dir, nil
}

// Record stores an entry for its fingerprint, replacing any earlier one.
func (s *Store) Record(entry domain.CacheEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[entry.Fingerprint] = entry
}

// Lookup returns the entry recorded for fp.
func (s *Store) Lookup(fp domain.Fingerprint) (domain.CacheEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[fp]
	return entry, ok
}

// Entries returns every recorded entry ordered by timestamp.
func (s *Store) Entries() []domain.CacheEntry {
	s.mu.RLock()
	out := make([]domain.CacheEntry, 0, len(s.entries))
	for _, entry := range s.entries {
		out = append(out, entry)
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b domain.CacheEntry) int {
		if c := a.Timestamp.Compare(b.Timestamp); c != 0 {
			return c
		}
		return strings.Compare(string(a.Fingerprint), string(b.Fingerprint))
	})
	return out
}

// Modules lists the build directories under the cache root in name order.
// A missing root means nothing was built yet.
func (s *Store) Modules() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to list cache"), "path", s.root)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}
