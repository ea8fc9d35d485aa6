package geom

import (
	"strconv"
	"strings"

	"github.com/matzehuels/topo/pkg/errors"
)

// Op is a path command.
type Op uint8

const (
	MoveTo Op = iota // "M": start a new subpath
	LineTo           // "L": straight segment from the previous point
)

// String returns the single-letter command used in path text.
func (o Op) String() string {
	switch o {
	case MoveTo:
		return "M"
	case LineTo:
		return "L"
	default:
		return "?"
	}
}

func parseOp(tok string) (Op, bool) {
	switch tok {
	case "M":
		return MoveTo, true
	case "L":
		return LineTo, true
	}
	return 0, false
}

// Segment is one command of a Path together with its end point.
type Segment struct {
	Op Op
	P  Point
}

// Path is an ordered list of segments. A well-formed non-empty path starts
// with a MoveTo; this is up to the producer and not enforced.
type Path []Segment

// ParsePath parses the whitespace separated "CMD x y" token stream, e.g.
// "M 0 0 L 10 5 L 20 0".
func ParsePath(s string) (Path, error) {
	toks := strings.Fields(s)
	p := make(Path, 0, len(toks)/3)
	for i := 0; i < len(toks); i += 3 {
		op, ok := parseOp(toks[i])
		if !ok {
			return nil, errors.New(errors.ErrCodeParse, "unknown path command %q", toks[i])
		}
		x, err := parseCoord(toks, i+1, op, "x")
		if err != nil {
			return nil, err
		}
		y, err := parseCoord(toks, i+2, op, "y")
		if err != nil {
			return nil, err
		}
		p = append(p, Segment{Op: op, P: Pt(x, y)})
	}
	return p, nil
}

func parseCoord(toks []string, i int, op Op, name string) (float64, error) {
	if i >= len(toks) {
		return 0, errors.New(errors.ErrCodeParse, "missing %s coordinate after %s", name, op)
	}
	v, err := strconv.ParseFloat(toks[i], 64)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeParse, err, "invalid %s coordinate %q after %s", name, toks[i], op)
	}
	return v, nil
}

// MoveTo appends a MoveTo segment.
func (p *Path) MoveTo(pt Point) {
	*p = append(*p, Segment{Op: MoveTo, P: pt})
}

// LineTo appends a LineTo segment.
func (p *Path) LineTo(pt Point) {
	*p = append(*p, Segment{Op: LineTo, P: pt})
}

// String returns the token stream accepted by ParsePath.
func (p Path) String() string {
	var b strings.Builder
	for i, s := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s.Op.String())
		b.WriteByte(' ')
		b.WriteString(formatFloat(s.P.X))
		b.WriteByte(' ')
		b.WriteString(formatFloat(s.P.Y))
	}
	return b.String()
}

// Transform returns a copy of p with f applied to every point.
func (p Path) Transform(f func(Point) Point) Path {
	out := make(Path, len(p))
	for i, s := range p {
		out[i] = Segment{Op: s.Op, P: f(s.P)}
	}
	return out
}

// TransformInPlace applies f to every point of p, overwriting it.
func (p Path) TransformInPlace(f func(Point) Point) {
	for i := range p {
		p[i].P = f(p[i].P)
	}
}

// Bounds returns the bounding box of all points in p. For an empty path it
// returns EmptyRect, which callers must treat as "no bounds".
func (p Path) Bounds() Rect {
	r := EmptyRect()
	for _, s := range p {
		r = r.Extend(s.P)
	}
	return r
}

// Dedupe returns p without LineTo segments that end closer than eps to the
// previous point. MoveTo segments are always kept.
func (p Path) Dedupe(eps float64) Path {
	out := make(Path, 0, len(p))
	for _, s := range p {
		if s.Op == LineTo && len(out) > 0 && out[len(out)-1].P.Distance(s.P) < eps {
			continue
		}
		out = append(out, s)
	}
	return out
}

// MarshalText implements encoding.TextMarshaler.
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Path) UnmarshalText(b []byte) error {
	parsed, err := ParsePath(string(b))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
