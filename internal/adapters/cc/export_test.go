package cc

// SetEnvironment replaces the environment and PATH lookups used to discover the compiler.
func (c *Compiler) SetEnvironment(getenv func(string) string, lookPath func(string) (string, error)) {
	c.getenv = getenv
	c.lookPath = lookPath
}
