// Package fs provides fingerprinting and filesystem checks for build artifacts.
package fs

import (
	"fmt"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/dcell/internal/core/domain"
	"go.trai.ch/dcell/internal/core/ports"
)

var _ ports.Fingerprinter = (*Hasher)(nil)

// Clock returns the current time.
type Clock func() time.Time

// Hasher derives cell fingerprints with XXHash.
type Hasher struct {
	now Clock
}

// NewHasher creates a new Hasher using the wall clock.
func NewHasher() *Hasher {
	return NewHasherWithClock(time.Now)
}

// NewHasherWithClock creates a new Hasher reading forced-build timestamps from now.
func NewHasherWithClock(now Clock) *Hasher {
	return &Hasher{now: now}
}

// Fingerprint computes the digest of the flag line, the normalized source, the interpreter
// version and the interpreter executable, each followed by a zero byte.
// When cfg.Force is set the current time is mixed in so that the result is never reused.
func (h *Hasher) Fingerprint(cfg domain.BuildConfig, id domain.InterpreterIdentity) (domain.Fingerprint, error) {
	hasher := xxhash.New()

	writeField(hasher, cfg.FlagLine)
	writeField(hasher, cfg.NormalizedSource())
	writeField(hasher, id.Version())
	writeField(hasher, id.Executable)

	if cfg.Force {
		writeField(hasher, strconv.FormatInt(h.now().UnixNano(), 10))
	}

	return domain.Fingerprint(fmt.Sprintf("%016x", hasher.Sum64())), nil
}

func writeField(hasher *xxhash.Digest, value string) {
	_, _ = hasher.WriteString(value)
	_, _ = hasher.Write([]byte{0})
}
