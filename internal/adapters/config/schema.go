package config

// Configfile represents the structure of the config.yaml settings file.
type Configfile struct {
	Version     string `yaml:"version"`
	CacheDir    string `yaml:"cache_dir"`
	Dub         string `yaml:"dub"`
	CC          string `yaml:"cc"`
	Python      string `yaml:"python"`
	Compiler    string `yaml:"compiler"`
	PydVersion  string `yaml:"pyd_version"`
	PpydVersion string `yaml:"ppyd_version"`
}
