package domain

const (
	// DefaultDubExecutable is the build tool looked up on PATH when none is configured.
	DefaultDubExecutable = "dub"
	// DefaultPythonExecutable is the interpreter probed when none is configured.
	DefaultPythonExecutable = "python3"
)

// Settings is the resolved tool configuration shared by every cell of a run.
type Settings struct {
	CacheDir    string
	Dub         string
	CC          string
	Python      string
	Compiler    string
	PydVersion  string
	PpydVersion string
}

// DefaultSettings returns the settings used when no configuration file exists.
func DefaultSettings() Settings {
	return Settings{
		CacheDir:    DefaultCacheRoot(),
		Dub:         DefaultDubExecutable,
		Python:      DefaultPythonExecutable,
		Compiler:    DefaultCompiler,
		PydVersion:  DefaultPydVersion,
		PpydVersion: DefaultPpydVersion,
	}
}

// WithDefaults fills every empty field of s from DefaultSettings.
// CC stays empty so that the C compiler is discovered at build time.
func (s Settings) WithDefaults() Settings {
	def := DefaultSettings()
	if s.CacheDir == "" {
		s.CacheDir = def.CacheDir
	}
	if s.Dub == "" {
		s.Dub = def.Dub
	}
	if s.Python == "" {
		s.Python = def.Python
	}
	if s.Compiler == "" {
		s.Compiler = def.Compiler
	}
	if s.PydVersion == "" {
		s.PydVersion = def.PydVersion
	}
	if s.PpydVersion == "" {
		s.PpydVersion = def.PpydVersion
	}
	return s
}

// ManifestRequest carries everything the generator needs to populate a build directory.
type ManifestRequest struct {
	ModuleName  string
	BuildDir    string
	Config      BuildConfig
	Interpreter InterpreterIdentity
}
