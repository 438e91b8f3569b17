package shell

// Export for testing.
var (
	ResolveEnvironment = resolveEnvironment
	LookPath           = lookPath
)
