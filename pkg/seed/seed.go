// Package seed provides the reproducible random source behind every render.
//
// A [Seed] is a 64-bit value. [Seed.Rand] derives a PCG-DXSM generator from
// it, so the stream of draws (and with it every crop, scale, palette and color
// choice) is a pure function of the seed and the order of draws:
//
//	rng := seed.New(1).Rand()
//	tx, _ := seed.Uniform(rng, 0, 500)
//	heads := seed.Coin(rng)
//
// Seeds print as 16 lower-case hex digits and parse back from the same form.
package seed

import (
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/topo/pkg/errors"
)

// Seed is the 64-bit value a render's random stream is derived from.
type Seed uint64

// New wraps an explicit seed value.
func New(v uint64) Seed {
	return Seed(v)
}

// Default returns a seed derived from the wall clock. It is not reproducible
// and is only used when the caller does not pin a seed.
func Default() Seed {
	return Seed(uint64(time.Now().UnixNano()))
}

// Parse parses a hex seed. A "0x" prefix is accepted.
func Parse(s string) (Seed, error) {
	h := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "0x")
	v, err := strconv.ParseUint(h, 16, 64)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeParse, err, "invalid seed: %q", s)
	}
	return Seed(v), nil
}

// Uint64 returns the raw seed value.
func (s Seed) Uint64() uint64 {
	return uint64(s)
}

// String returns the canonical 16-digit lower-case hex form.
func (s Seed) String() string {
	const digits = "0000000000000000"
	h := strconv.FormatUint(uint64(s), 16)
	return digits[len(h):] + h
}

// Rand returns a new generator whose output is fully determined by s.
func (s Seed) Rand() *rand.Rand {
	v := uint64(s)
	return rand.New(rand.NewPCG(v, v^0xdeadbeef))
}

// Set implements pflag.Value.
func (s *Seed) Set(v string) error {
	parsed, err := Parse(v)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Type implements pflag.Value.
func (s *Seed) Type() string { return "seed" }

// MarshalText implements encoding.TextMarshaler.
func (s Seed) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Seed) UnmarshalText(b []byte) error {
	return s.Set(string(b))
}

// Uniform draws a value from [lo, hi) consuming exactly one Float64 from rng.
// When lo == hi the draw is still consumed and lo is returned. An inverted
// or NaN interval fails with a RANGE_ERROR without drawing.
func Uniform(rng *rand.Rand, lo, hi float64) (float64, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) || hi < lo {
		return 0, errors.New(errors.ErrCodeRange, "empty range [%g, %g)", lo, hi)
	}
	f := rng.Float64()
	if lo == hi {
		return lo, nil
	}
	// The conversion rules out fused multiply-add, keeping results identical
	// across architectures.
	return lo + float64(f*(hi-lo)), nil
}

// Coin draws one fair boolean from the top bit of a Uint64.
func Coin(rng *rand.Rand) bool {
	return rng.Uint64()>>63 == 1
}

// Batch returns n seeds drawn in order from a generator seeded by s. The
// k-th seed depends only on s and k.
func (s Seed) Batch(n int) []Seed {
	rng := s.Rand()
	out := make([]Seed, n)
	for i := range out {
		out[i] = Seed(rng.Uint64())
	}
	return out
}
