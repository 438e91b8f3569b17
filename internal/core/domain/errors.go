package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidFlags is returned when the magic flag line cannot be parsed.
	ErrInvalidFlags = zerr.New("invalid magic flags")

	// ErrInvalidOverrides is returned when the manifest override text is neither valid JSON nor valid YAML.
	ErrInvalidOverrides = zerr.New("invalid manifest overrides")

	// ErrInvalidModuleName is returned when a module name is not a valid identifier.
	ErrInvalidModuleName = zerr.New("module name must be a valid identifier")

	// ErrInterpreterProbeFailed is returned when the Python interpreter identity cannot be determined.
	ErrInterpreterProbeFailed = zerr.New("failed to probe python interpreter")

	// ErrCacheDirCreateFailed is returned when a build directory cannot be created.
	ErrCacheDirCreateFailed = zerr.New("failed to create build directory")

	// ErrDescribeFailed is returned when the build tool cannot describe the binding package.
	ErrDescribeFailed = zerr.New("failed to describe binding package")

	// ErrBindingNotFound is returned when the binding package is missing from the describe output.
	ErrBindingNotFound = zerr.New("binding package not found in describe output")

	// ErrManifestWriteFailed is returned when a generated file cannot be written to the build directory.
	ErrManifestWriteFailed = zerr.New("failed to write build files")

	// ErrCCompileFailed is returned when the C shim cannot be compiled.
	ErrCCompileFailed = zerr.New("failed to compile C shim")

	// ErrCCompilerNotFound is returned when no C compiler is available.
	ErrCCompilerNotFound = zerr.New("no C compiler found")

	// ErrBuildFailed is returned when the build tool exits with a non-zero status.
	ErrBuildFailed = zerr.New("build failed")

	// ErrLoadFailed is returned when the produced shared library cannot be loaded.
	ErrLoadFailed = zerr.New("failed to load extension module")

	// ErrSessionMergeFailed is returned when symbols cannot be merged into the session namespace.
	ErrSessionMergeFailed = zerr.New("failed to merge symbols into session")

	// ErrConfigReadFailed is returned when the settings file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the settings file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")
)
