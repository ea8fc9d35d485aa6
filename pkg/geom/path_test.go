package geom

import (
	"encoding/json"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/topo/pkg/errors"
)

func TestParsePath(t *testing.T) {
	p, err := ParsePath("M 1.5 2.5 L 3 4")
	if err != nil {
		t.Fatal(err)
	}
	want := Path{{MoveTo, Pt(1.5, 2.5)}, {LineTo, Pt(3, 4)}}
	if !slices.Equal(p, want) {
		t.Errorf("ParsePath = %v, want %v", p, want)
	}
	if got := p.String(); got != "M 1.5 2.5 L 3 4" {
		t.Errorf("String() = %q", got)
	}
}

func TestParsePathRoundTrip(t *testing.T) {
	tests := []string{
		"",
		"M 0 0",
		"M 0 0 L 10 5 L 20 0",
		"M -1.25 3e+10 L 0.001 -7",
	}
	for _, in := range tests {
		p, err := ParsePath(in)
		if err != nil {
			t.Fatalf("ParsePath(%q): %v", in, err)
		}
		if got := p.String(); got != in {
			t.Errorf("round trip %q -> %q", in, got)
		}
	}
}

func TestParsePathErrors(t *testing.T) {
	tests := []struct {
		in       string
		contains string
	}{
		{"C 1 2", `"C"`},
		{"M 1", "missing y"},
		{"M", "missing x"},
		{"M 0 0 L", "missing x coordinate after L"},
		{"M a 0", `"a"`},
		{"M 0 0 Z 1 1", `"Z"`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := ParsePath(tt.in)
			if !errors.Is(err, errors.ErrCodeParse) {
				t.Fatalf("error = %v, want PARSE_ERROR", err)
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("error %q does not mention %s", err, tt.contains)
			}
		})
	}
}

func TestPathBounds(t *testing.T) {
	p := Path{{MoveTo, Pt(1, 5)}, {LineTo, Pt(-2, 3)}, {LineTo, Pt(4, 9)}}
	b := p.Bounds()
	if b.Min != Pt(-2, 3) || b.Max != Pt(4, 9) {
		t.Errorf("Bounds = %v", b)
	}
	if !(Path{}).Bounds().Empty() {
		t.Error("empty path bounds should be empty")
	}
}

func TestPathTransform(t *testing.T) {
	p := Path{{MoveTo, Pt(10, 20)}, {LineTo, Pt(30, 40)}}
	shift := func(q Point) Point { return q.Sub(Pt(10, 20)).Mul(2) }

	out := p.Transform(shift)
	if !slices.Equal(out, Path{{MoveTo, Pt(0, 0)}, {LineTo, Pt(40, 40)}}) {
		t.Errorf("Transform = %v", out)
	}
	if p[0].P != Pt(10, 20) {
		t.Error("Transform mutated its receiver")
	}

	p.TransformInPlace(shift)
	if !slices.Equal(p, out) {
		t.Errorf("TransformInPlace = %v, want %v", p, out)
	}
}

func TestPathDedupe(t *testing.T) {
	p := Path{
		{MoveTo, Pt(0, 0)},
		{LineTo, Pt(0, 0.00001)},
		{LineTo, Pt(1, 1)},
		{MoveTo, Pt(1, 1)},
		{LineTo, Pt(1, 1)},
	}
	got := p.Dedupe(0.0001)
	want := Path{{MoveTo, Pt(0, 0)}, {LineTo, Pt(1, 1)}, {MoveTo, Pt(1, 1)}}
	if !slices.Equal(got, want) {
		t.Errorf("Dedupe = %v, want %v", got, want)
	}
}

func TestPathJSON(t *testing.T) {
	in := []Path{{{MoveTo, Pt(0, 0)}, {LineTo, Pt(10, 5)}}}
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `["M 0 0 L 10 5"]` {
		t.Errorf("Marshal = %s", b)
	}
	var out []Path
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || !slices.Equal(out[0], in[0]) {
		t.Errorf("Unmarshal = %v", out)
	}
}
