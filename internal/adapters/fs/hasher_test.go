package fs_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dcell/internal/adapters/fs"
	"go.trai.ch/dcell/internal/core/domain"
)

var testInterpreter = domain.InterpreterIdentity{
	Major:      3,
	Minor:      12,
	Micro:      1,
	Executable: "/usr/bin/python3",
}

func fingerprint(t *testing.T, h *fs.Hasher, cfg domain.BuildConfig, id domain.InterpreterIdentity) domain.Fingerprint {
	t.Helper()
	fp, err := h.Fingerprint(cfg, id)
	require.NoError(t, err)
	return fp
}

func TestHasher_Deterministic(t *testing.T) {
	h := fs.NewHasher()
	cfg := domain.BuildConfig{FlagLine: "-n mod", Source: "int f() { return 1; }"}

	first := fingerprint(t, h, cfg, testInterpreter)
	second := fingerprint(t, fs.NewHasher(), cfg, testInterpreter)

	assert.Equal(t, first, second)
	assert.Len(t, first.String(), 16)
}

func TestHasher_TrailingNewlinesCollapse(t *testing.T) {
	h := fs.NewHasher()

	a := fingerprint(t, h, domain.BuildConfig{Source: "int x;"}, testInterpreter)
	b := fingerprint(t, h, domain.BuildConfig{Source: "int x;\n"}, testInterpreter)
	c := fingerprint(t, h, domain.BuildConfig{Source: "int x;\n\n"}, testInterpreter)

	assert.Equal(t, a, b)
	assert.Equal(t, b, c)
}

func TestHasher_InputsChangeDigest(t *testing.T) {
	h := fs.NewHasher()
	base := domain.BuildConfig{FlagLine: "-n mod", Source: "int x;"}
	want := fingerprint(t, h, base, testInterpreter)

	otherFlags := base
	otherFlags.FlagLine = "-n mod -c -O"

	otherSource := base
	otherSource.Source = "int  x;"

	otherVersion := testInterpreter
	otherVersion.Micro = 2

	otherExecutable := testInterpreter
	otherExecutable.Executable = "/opt/python/bin/python3"

	assert.NotEqual(t, want, fingerprint(t, h, otherFlags, testInterpreter))
	assert.NotEqual(t, want, fingerprint(t, h, otherSource, testInterpreter))
	assert.NotEqual(t, want, fingerprint(t, h, base, otherVersion))
	assert.NotEqual(t, want, fingerprint(t, h, base, otherExecutable))
}

func TestHasher_FieldSeparation(t *testing.T) {
	h := fs.NewHasher()

	a := fingerprint(t, h, domain.BuildConfig{FlagLine: "ab", Source: "c"}, testInterpreter)
	b := fingerprint(t, h, domain.BuildConfig{FlagLine: "a", Source: "bc"}, testInterpreter)

	assert.NotEqual(t, a, b)
}

func TestHasher_ForceUsesClock(t *testing.T) {
	tick := time.Unix(1700000000, 0)
	h := fs.NewHasherWithClock(func() time.Time {
		tick = tick.Add(time.Nanosecond)
		return tick
	})
	cfg := domain.BuildConfig{Source: "int x;", Force: true}

	first := fingerprint(t, h, cfg, testInterpreter)
	second := fingerprint(t, h, cfg, testInterpreter)
	unforced := fingerprint(t, h, domain.BuildConfig{Source: "int x;"}, testInterpreter)

	assert.NotEqual(t, first, second)
	assert.NotEqual(t, first, unforced)
}

func TestHasher_ForceWithFrozenClock(t *testing.T) {
	frozen := time.Unix(1700000000, 42)
	h := fs.NewHasherWithClock(func() time.Time { return frozen })
	cfg := domain.BuildConfig{Source: "int x;", Force: true}

	assert.Equal(t, fingerprint(t, h, cfg, testInterpreter), fingerprint(t, h, cfg, testInterpreter))
}
