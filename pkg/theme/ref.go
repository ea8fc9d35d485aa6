package theme

import (
	"math/rand/v2"
	"regexp"
	"strconv"

	"github.com/matzehuels/topo/pkg/errors"
)

var refPattern = regexp.MustCompile(`^(.*):(\d+)$`)

// Ref points at a theme file and optionally pins one theme in it.
type Ref struct {
	Path  string
	Index int
	Fixed bool
}

// ParseRef parses "path" or "path:index".
func ParseRef(s string) (Ref, error) {
	if m := refPattern.FindStringSubmatch(s); m != nil {
		idx, err := strconv.Atoi(m[2])
		if err != nil {
			return Ref{}, errors.Wrap(errors.ErrCodeParse, err, "invalid theme index in %q", s)
		}
		if m[1] == "" {
			return Ref{}, errors.New(errors.ErrCodeParse, "theme reference %q has no path", s)
		}
		return Ref{Path: m[1], Index: idx, Fixed: true}, nil
	}
	if s == "" {
		return Ref{}, errors.New(errors.ErrCodeParse, "empty theme reference")
	}
	return Ref{Path: s}, nil
}

// String returns the form accepted by ParseRef.
func (r Ref) String() string {
	if r.Fixed {
		return r.Path + ":" + strconv.Itoa(r.Index)
	}
	return r.Path
}

// Pick opens the referenced file and returns the pinned theme, or a random one
// drawn from rng when no index is pinned. A pinned index consumes no draws.
func (r Ref) Pick(rng *rand.Rand) (int, Palette, error) {
	s, err := Open(r.Path)
	if err != nil {
		return 0, Palette{}, err
	}
	defer s.Close()

	if r.Fixed {
		p, err := s.Get(r.Index)
		return r.Index, p, err
	}
	return s.Pick(rng)
}

// Set implements pflag.Value.
func (r *Ref) Set(v string) error {
	parsed, err := ParseRef(v)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Type implements pflag.Value.
func (r *Ref) Type() string { return "theme" }

// MarshalText implements encoding.TextMarshaler.
func (r Ref) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Ref) UnmarshalText(b []byte) error {
	return r.Set(string(b))
}
