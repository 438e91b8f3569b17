package config

// SetGetenv replaces the environment lookup used by the loader.
func (l *Loader) SetGetenv(fn func(string) string) {
	l.getenv = fn
}
