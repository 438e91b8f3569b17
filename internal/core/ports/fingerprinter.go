package ports

import "go.trai.ch/dcell/internal/core/domain"

// Fingerprinter derives the build identity of a cell.
//
//go:generate go run go.uber.org/mock/mockgen -source=fingerprinter.go -destination=mocks/mock_fingerprinter.go -package=mocks
type Fingerprinter interface {
	// Fingerprint digests the flag line, the normalized source and the interpreter identity.
	// Two calls with equal inputs return equal fingerprints unless cfg.Force is set.
	Fingerprint(cfg domain.BuildConfig, id domain.InterpreterIdentity) (domain.Fingerprint, error)
}
