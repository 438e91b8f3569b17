package domain

import (
	"regexp"

	"go.trai.ch/zerr"
)

// SyntheticModulePrefix prefixes module names derived from a fingerprint.
const SyntheticModulePrefix = "_pyd_magic_"

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Fingerprint is a content-derived digest identifying a cell build. It is never decoded.
type Fingerprint string

// String returns the digest text.
func (f Fingerprint) String() string {
	return string(f)
}

// ModuleName returns the synthetic module name derived from the fingerprint.
func (f Fingerprint) ModuleName() string {
	return SyntheticModulePrefix + string(f)
}

// ValidateModuleName checks that name can be used both as a directory and as an extension module name.
func ValidateModuleName(name string) error {
	if !identifierPattern.MatchString(name) {
		return zerr.With(zerr.Wrap(ErrInvalidModuleName, "cannot use module name"), "module", name)
	}
	return nil
}

// ResolveModuleName returns the explicit module name from cfg when set, otherwise the fingerprint's synthetic name.
func ResolveModuleName(cfg BuildConfig, fp Fingerprint) (string, error) {
	if cfg.ModuleName == "" {
		return fp.ModuleName(), nil
	}
	if err := ValidateModuleName(cfg.ModuleName); err != nil {
		return "", err
	}
	return cfg.ModuleName, nil
}
