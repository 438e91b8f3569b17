package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/dcell/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Verifier = (*Verifier)(nil)

// Verifier provides functionality to verify the existence of files.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// VerifyOutputs checks if all output files exist in the given root directory.
// It returns true if all outputs exist as regular files, false otherwise.
func (v *Verifier) VerifyOutputs(root string, outputs []string) (bool, error) {
	for _, output := range outputs {
		path := filepath.Join(root, output)
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				return false, nil
			}
			return false, zerr.With(zerr.Wrap(err, "failed to stat output"), "path", path)
		}
		if info.IsDir() {
			return false, nil
		}
	}
	return true, nil
}
