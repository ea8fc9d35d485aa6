package geom

import (
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/topo/pkg/errors"
)

// Range is the half-open interval [Start, End).
type Range struct {
	Start float64
	End   float64
}

// ParseRange parses "start-end", e.g. "1-8" or "-2-2.5".
func ParseRange(s string) (Range, error) {
	s = strings.TrimSpace(s)
	sep := separatorIndex(s)
	if sep < 0 {
		return Range{}, errors.New(errors.ErrCodeParse, "invalid range: %q", s)
	}
	start, err := strconv.ParseFloat(s[:sep], 64)
	if err != nil {
		return Range{}, errors.Wrap(errors.ErrCodeParse, err, "invalid range start: %q", s)
	}
	end, err := strconv.ParseFloat(s[sep+1:], 64)
	if err != nil {
		return Range{}, errors.Wrap(errors.ErrCodeParse, err, "invalid range end: %q", s)
	}
	return Range{Start: start, End: end}, nil
}

// separatorIndex finds the '-' between the bounds, skipping a sign on the
// start bound and exponent signs such as "1e-3".
func separatorIndex(s string) int {
	for i := 1; i < len(s); i++ {
		if s[i] != '-' {
			continue
		}
		if prev := s[i-1]; prev == 'e' || prev == 'E' {
			continue
		}
		return i
	}
	return -1
}

// String returns the "start-end" form accepted by ParseRange.
func (r Range) String() string {
	return formatFloat(r.Start) + "-" + formatFloat(r.End)
}

// Len returns End - Start.
func (r Range) Len() float64 {
	return r.End - r.Start
}

// Valid reports whether r is a non-empty, finite interval (Start < End).
func (r Range) Valid() bool {
	return r.Start < r.End && !math.IsInf(r.Start, 0) && !math.IsInf(r.End, 0)
}

// Contains reports whether v lies in [Start, End).
func (r Range) Contains(v float64) bool {
	return v >= r.Start && v < r.End
}

// Set implements pflag.Value.
func (r *Range) Set(v string) error {
	parsed, err := ParseRange(v)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Type implements pflag.Value.
func (r *Range) Type() string { return "range" }

// MarshalText implements encoding.TextMarshaler.
func (r Range) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Range) UnmarshalText(b []byte) error {
	return r.Set(string(b))
}
