package domain

import "fmt"

// InterpreterIdentity identifies the Python interpreter that will host the extension module.
type InterpreterIdentity struct {
	Major      int    `json:"major"`
	Minor      int    `json:"minor"`
	Micro      int    `json:"micro"`
	Executable string `json:"executable"`
	// ExtSuffix is the interpreter's preferred extension module suffix (e.g. ".cpython-312-x86_64-linux-gnu.so").
	ExtSuffix string `json:"ext_suffix"`
	// Library is the path of the shared libpython used to embed the interpreter.
	Library string `json:"library"`
}

// Version returns the dotted version tuple.
func (i InterpreterIdentity) Version() string {
	return fmt.Sprintf("%d.%d.%d", i.Major, i.Minor, i.Micro)
}

// SubConfiguration returns the pyd build configuration matching the interpreter's major.minor version.
func (i InterpreterIdentity) SubConfiguration() string {
	return fmt.Sprintf("python%d%d", i.Major, i.Minor)
}
