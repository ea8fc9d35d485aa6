package geom

import (
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/topo/pkg/errors"
)

// Size is the width and height of a canvas or crop window.
type Size struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// ParseSize parses "WxH" or a bare "N" meaning a square N×N.
func ParseSize(s string) (Size, error) {
	ws, hs, found := strings.Cut(strings.TrimSpace(s), "x")
	if !found {
		hs = ws
	}
	w, err := parseDimension(ws)
	if err != nil {
		return Size{}, errors.Wrap(errors.ErrCodeParse, err, "invalid size: %q", s)
	}
	h, err := parseDimension(hs)
	if err != nil {
		return Size{}, errors.Wrap(errors.ErrCodeParse, err, "invalid size: %q", s)
	}
	return Size{W: w, H: h}, nil
}

func parseDimension(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if v < 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, errors.New(errors.ErrCodeParse, "dimension must be finite and non-negative")
	}
	return v, nil
}

// String returns the "WxH" form accepted by ParseSize.
func (s Size) String() string {
	return formatFloat(s.W) + "x" + formatFloat(s.H)
}

// Contains reports whether a window of size o fits inside s.
func (s Size) Contains(o Size) bool {
	return o.W <= s.W && o.H <= s.H
}

// Set implements pflag.Value so a Size can be bound to a command-line flag.
func (s *Size) Set(v string) error {
	parsed, err := ParseSize(v)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Type implements pflag.Value.
func (s *Size) Type() string { return "size" }

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
