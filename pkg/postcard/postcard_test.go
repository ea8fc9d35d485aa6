package postcard

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"testing"

	"github.com/matzehuels/topo/pkg/dataset"
	"github.com/matzehuels/topo/pkg/errors"
	"github.com/matzehuels/topo/pkg/geo"
	"github.com/matzehuels/topo/pkg/geom"
	"github.com/matzehuels/topo/pkg/render"
	"github.com/matzehuels/topo/pkg/seed"
	"github.com/matzehuels/topo/pkg/theme"
)

var (
	black = theme.Color{}
	white = theme.Color{R: 255, G: 255, B: 255}
	mid   = theme.Color{R: 128, G: 128, B: 128}
	red   = theme.Color{R: 255}
	blue  = theme.Color{B: 255}
)

func writeThemes(t *testing.T, palettes ...theme.Palette) string {
	t.Helper()
	var buf []byte
	for _, p := range palettes {
		for _, c := range p {
			buf = binary.BigEndian.AppendUint32(buf, c.Word())
		}
	}
	path := filepath.Join(t.TempDir(), "themes.bin")
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func mustPath(t *testing.T, s string) geom.Path {
	t.Helper()
	p, err := geom.ParsePath(s)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

// scenario returns the 1000x1000 reference dataset and a 500x500 render
// configuration for seed 1.
func scenario(t *testing.T) (*dataset.Dataset, Options) {
	t.Helper()
	ds := &dataset.Dataset{
		Size: geom.Size{W: 1000, H: 1000},
		Region: geo.Rect{
			NW: geo.LatLng{Lat: 35.64643, Lng: -80.04998},
			SE: geo.LatLng{Lat: 35.48879, Lng: -79.85005},
		},
		Paths: []geom.Path{
			mustPath(t, "M 450 330 L 500 360 L 520 400"),
			mustPath(t, "M 0 0 L 10 10"),
		},
	}
	themes := writeThemes(t,
		theme.Palette{red, red, red, red, red},
		theme.Palette{blue, blue, blue, blue, blue},
		theme.Palette{mid, black, white, red, blue},
	)
	return ds, Options{
		Seed:           seed.New(1),
		Size:           geom.Size{W: 500, H: 500},
		ScaleRange:     geom.Range{Start: 1, End: 8},
		LineWidthRange: geom.Range{Start: 2, End: 4},
		Theme:          theme.Ref{Path: themes},
	}
}

// Reference values from the PCG-DXSM stream of seed 1: draws 0.8951243863415647,
// 0.6414550291775556 and 0.6500111709725805, then IntN(3) = 2 and a heads coin.
func TestNewPlanScenario(t *testing.T) {
	ds, opts := scenario(t)
	p, err := NewPlan(ds, opts)
	if err != nil {
		t.Fatal(err)
	}

	if p.Offset.X != 447.56219317078234 {
		t.Errorf("tx = %v", p.Offset.X)
	}
	if p.Offset.Y != 320.7275145887778 {
		t.Errorf("ty = %v", p.Offset.Y)
	}
	if p.Scale != 5.550078196808064 {
		t.Errorf("scale = %v", p.Scale)
	}
	if p.ThemeIndex != 2 {
		t.Errorf("theme = %d, want 2", p.ThemeIndex)
	}
	if p.Background != black || p.Foreground != white {
		t.Errorf("colors = %v/%v, want black/white", p.Background, p.Foreground)
	}
	if p.Label != "35°32′22″N 079°57′38″W" {
		t.Errorf("label = %q", p.Label)
	}
	if want := 3.3000223419451613; p.LineWidth < want-1e-12 || p.LineWidth > want+1e-12 {
		t.Errorf("line width = %v, want %v", p.LineWidth, want)
	}
	if p.Seed != seed.New(1) {
		t.Errorf("seed = %v", p.Seed)
	}
}

func TestRenderDeterministic(t *testing.T) {
	ds, opts := scenario(t)
	opts.Seed = seed.New(0xfeedface)

	a, b := render.NewRecorder(nil), render.NewRecorder(nil)
	pa, err := Render(a, ds, opts)
	if err != nil {
		t.Fatal(err)
	}
	pb, err := Render(b, ds, opts)
	if err != nil {
		t.Fatal(err)
	}
	if pa != pb {
		t.Errorf("plans differ:\n%+v\n%+v", pa, pb)
	}
	if !reflect.DeepEqual(a.Commands, b.Commands) {
		t.Error("command streams differ")
	}

	opts.Seed = seed.New(0xfeedfacf)
	pc, err := NewPlan(ds, opts)
	if err != nil {
		t.Fatal(err)
	}
	if pc.Offset == pa.Offset {
		t.Error("different seeds produced the same crop")
	}
}

func TestNewPlanFullCanvas(t *testing.T) {
	ds, opts := scenario(t)
	opts.Size = ds.Size

	p, err := NewPlan(ds, opts)
	if err != nil {
		t.Fatal(err)
	}
	if p.Offset != (geom.Point{}) {
		t.Errorf("offset = %v, want origin", p.Offset)
	}
	// The degenerate draws still advance the stream.
	if p.Scale != 5.550078196808064 {
		t.Errorf("scale = %v", p.Scale)
	}
	if p.Label != ds.Region.At(0, 0).DMS() {
		t.Errorf("label = %q", p.Label)
	}
}

func TestNewPlanFixedTheme(t *testing.T) {
	ds, opts := scenario(t)
	opts.Theme.Index = 1
	opts.Theme.Fixed = true

	p, err := NewPlan(ds, opts)
	if err != nil {
		t.Fatal(err)
	}
	if p.ThemeIndex != 1 || p.Background != blue || p.Foreground != blue {
		t.Errorf("plan = %+v", p)
	}
	if p.Offset.X != 447.56219317078234 {
		t.Errorf("tx = %v", p.Offset.X)
	}
}

func TestNewPlanErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Options)
		code   errors.Code
	}{
		{"canvas too wide", func(o *Options) { o.Size = geom.Size{W: 1001, H: 10} }, errors.ErrCodeRange},
		{"canvas too tall", func(o *Options) { o.Size = geom.Size{W: 10, H: 2000} }, errors.ErrCodeRange},
		{"empty canvas", func(o *Options) { o.Size = geom.Size{} }, errors.ErrCodeRange},
		{"inverted scale", func(o *Options) { o.ScaleRange = geom.Range{Start: 8, End: 1} }, errors.ErrCodeRange},
		{"empty line width", func(o *Options) { o.LineWidthRange = geom.Range{Start: 2, End: 2} }, errors.ErrCodeRange},
		{"theme index", func(o *Options) { o.Theme.Index, o.Theme.Fixed = 3, true }, errors.ErrCodeRange},
		{"missing themes", func(o *Options) { o.Theme.Path += ".missing" }, errors.ErrCodeIO},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, opts := scenario(t)
			tt.modify(&opts)
			rec := render.NewRecorder(nil)
			_, err := Render(rec, ds, opts)
			if !errors.Is(err, tt.code) {
				t.Fatalf("error = %v, want %s", err, tt.code)
			}
			if len(rec.Commands) != 0 {
				t.Errorf("%d commands drawn before failing", len(rec.Commands))
			}
		})
	}
}

func TestDraw(t *testing.T) {
	ds := &dataset.Dataset{
		Size: geom.Size{W: 1000, H: 1000},
		Paths: []geom.Path{
			mustPath(t, "M 10 10 L 20 20"),
			mustPath(t, "M 500 500 L 600 600"),
			{},
			mustPath(t, "M 0 15 L 60 15"),
		},
	}
	before := make([]geom.Path, len(ds.Paths))
	for i, p := range ds.Paths {
		before[i] = slices.Clone(p)
	}

	opts := Options{Size: geom.Size{W: 100, H: 50}}
	plan := Plan{
		Offset:     geom.Pt(10, 10),
		Scale:      2,
		LineWidth:  3,
		Background: black,
		Foreground: white,
		Label:      "AB",
	}
	rec := render.NewRecorder(nil)
	Draw(rec, ds, plan, opts)

	if len(rec.Commands) != 4 {
		t.Fatalf("commands = %+v", rec.Commands)
	}

	bg := rec.Commands[0]
	if bg.Kind != render.KindFillRect || bg.Rect != geom.RectXYWH(0, 0, 100, 50) || bg.Color != black {
		t.Errorf("background = %+v", bg)
	}

	st := rec.Commands[1]
	if st.Kind != render.KindStroke || st.Width != 3 || st.Color != white {
		t.Errorf("stroke = %+v", st)
	}
	var got []string
	for _, p := range st.Paths {
		got = append(got, p.String())
	}
	want := []string{"M 0 0 L 20 20", "M -20 10 L 100 10"}
	if !slices.Equal(got, want) {
		t.Errorf("stroked paths = %q, want %q", got, want)
	}

	// "AB" measures 20x20 with the recorder's box metrics.
	box := rec.Commands[2]
	if box.Kind != render.KindFillRect || box.Rect != geom.RectXYWH(50, 0, 40, 40) || box.Color != black {
		t.Errorf("label box = %+v", box)
	}
	text := rec.Commands[3]
	if text.Kind != render.KindFillText || text.At != geom.Pt(60, 30) || text.Text != "AB" || text.Color != white {
		t.Errorf("label = %+v", text)
	}

	if !reflect.DeepEqual(ds.Paths, before) {
		t.Error("Draw modified the dataset")
	}
}

func TestDrawSeparatesContours(t *testing.T) {
	ds := &dataset.Dataset{
		Size: geom.Size{W: 1000, H: 1000},
		Paths: []geom.Path{
			mustPath(t, "M 10 10 L 20 20"),
			mustPath(t, "L 300 300 L 400 400"),
		},
	}
	plan := Plan{Scale: 1, LineWidth: 1}
	rec := render.NewRecorder(nil)
	Draw(rec, ds, plan, Options{Size: geom.Size{W: 500, H: 500}, HideLocation: true})

	if rec.Count(render.KindStroke) != 1 {
		t.Fatalf("commands = %+v", rec.Commands)
	}
	var got []string
	for _, p := range rec.Commands[1].Paths {
		got = append(got, p.String())
	}
	want := []string{"M 10 10 L 20 20", "M 300 300 L 400 400"}
	if !slices.Equal(got, want) {
		t.Errorf("stroked paths = %q, want %q", got, want)
	}
}

func TestDrawHideLocation(t *testing.T) {
	ds, opts := scenario(t)
	opts.HideLocation = true

	rec := render.NewRecorder(nil)
	if _, err := Render(rec, ds, opts); err != nil {
		t.Fatal(err)
	}
	if rec.Count(render.KindFillText) != 0 || rec.Count(render.KindFillRect) != 1 {
		t.Errorf("commands = %+v", rec.Commands)
	}
}

func TestPlanSummary(t *testing.T) {
	p := Plan{Seed: seed.New(1), Offset: geom.Pt(447.562, 320.7271), Scale: 5.5501, ThemeIndex: 2}
	want := "theme = 2, origin = (447.56, 320.73), scale = 5.55, seed = 0000000000000001"
	if got := p.Summary(); got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}
