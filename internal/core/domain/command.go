package domain

import "go.trai.ch/zerr"

// OutputKey is the error metadata key holding a failed command's combined output.
const OutputKey = "output"

// Command is a single external process invocation.
type Command struct {
	// Name is the executable, resolved against PATH when not absolute.
	Name string
	Args []string
	// Dir is the working directory; empty means the current directory.
	Dir string
	// Env holds extra "KEY=VALUE" entries layered over the process environment.
	Env []string
}

// Argv returns the full argument vector including the executable.
func (c Command) Argv() []string {
	return append([]string{c.Name}, c.Args...)
}

// CommandOutput returns the output captured by the first failed command found in err's chain,
// following joined errors as well as wrapped ones.
func CommandOutput(err error) string {
	if err == nil {
		return ""
	}
	if z, ok := err.(*zerr.Error); ok {
		if out, ok := z.Metadata()[OutputKey].(string); ok {
			return out
		}
	}

	switch u := err.(type) {
	case interface{ Unwrap() []error }:
		for _, e := range u.Unwrap() {
			if out := CommandOutput(e); out != "" {
				return out
			}
		}
	case interface{ Unwrap() error }:
		return CommandOutput(u.Unwrap())
	}
	return ""
}
