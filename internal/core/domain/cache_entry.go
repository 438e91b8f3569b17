package domain

import "time"

// CacheEntry records a successful build of a fingerprint during the current process.
// The on-disk artifact stays authoritative; entries are advisory.
type CacheEntry struct {
	Fingerprint Fingerprint `json:"fingerprint"`
	ModuleName  string      `json:"module_name"`
	BuildDir    string      `json:"build_dir"`
	Timestamp   time.Time   `json:"timestamp,omitzero"`
}
