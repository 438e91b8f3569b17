package domain

import (
	"os"
	"path/filepath"
)

const (
	// AppDirName is the name of the application directory under the user cache and config roots.
	AppDirName = "dcell"

	// PydDirName is the name of the build cache directory for pyd cells.
	PydDirName = "pyd"

	// ConfigFileName is the name of the settings file.
	ConfigFileName = "config.yaml"

	// ManifestFileName is the name of the build tool manifest written to every build directory.
	ManifestFileName = "dub.json"

	// LockFileName is the name of the dependency lock file the build tool writes next to the manifest.
	LockFileName = "dub.selections.json"

	// SourceExt is the extension of the generated cell source file.
	SourceExt = ".d"

	// EntryFileName is the name of the generated entry source file.
	EntryFileName = "pydmain.d"

	// ShimObjectName is the name of the compiled C shim object.
	ShimObjectName = "so_ctor.o"

	// CacheDirEnv overrides the cache root when set.
	CacheDirEnv = "DCELL_CACHE_DIR"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCacheRoot returns the default root directory that holds one build directory per module.
// It falls back to the temporary directory when the platform has no user cache location.
func DefaultCacheRoot() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, AppDirName, PydDirName)
}

// DefaultConfigPath returns the default settings file location.
func DefaultConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, AppDirName, ConfigFileName)
}

// LibraryFileName returns the file name the build tool gives a dynamic library for the target OS.
func LibraryFileName(name, goos string) string {
	switch goos {
	case "windows":
		return name + ".dll"
	case "darwin", "ios":
		return "lib" + name + ".dylib"
	default:
		return "lib" + name + ".so"
	}
}

// SourceFileName returns the file name of the generated cell source for a module.
func SourceFileName(name string) string {
	return name + SourceExt
}
