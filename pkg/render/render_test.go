package render

import (
	"image/color"
	"testing"

	"github.com/matzehuels/topo/pkg/geom"
)

var _ Surface = (*Recorder)(nil)

func TestPathBuilder(t *testing.T) {
	var b PathBuilder
	b.LineTo(geom.Pt(1, 1)) // no current point: starts a subpath
	b.LineTo(geom.Pt(2, 2))
	b.MoveTo(geom.Pt(5, 5))
	b.LineTo(geom.Pt(6, 6))

	sp := b.Take()
	if len(sp) != 2 {
		t.Fatalf("subpaths = %d, want 2", len(sp))
	}
	if got := sp[0].String(); got != "M 1 1 L 2 2" {
		t.Errorf("subpath 0 = %q", got)
	}
	if got := sp[1].String(); got != "M 5 5 L 6 6" {
		t.Errorf("subpath 1 = %q", got)
	}
	if len(b.Take()) != 0 {
		t.Error("Take should clear the builder")
	}
}

func TestRecorder(t *testing.T) {
	r := NewRecorder(nil)
	r.FillRect(geom.RectXYWH(0, 0, 10, 10), color.Black)
	r.MoveTo(geom.Pt(0, 0))
	r.LineTo(geom.Pt(3, 4))
	r.Stroke(2, color.White)
	r.FillText(geom.Pt(1, 2), "abc", color.White)

	if len(r.Commands) != 3 {
		t.Fatalf("commands = %d, want 3", len(r.Commands))
	}
	if r.Count(KindStroke) != 1 || r.Count(KindFillRect) != 1 || r.Count(KindFillText) != 1 {
		t.Errorf("counts = %d %d %d", r.Count(KindStroke), r.Count(KindFillRect), r.Count(KindFillText))
	}
	st := r.Commands[1]
	if st.Width != 2 || len(st.Paths) != 1 || st.Paths[0].String() != "M 0 0 L 3 4" {
		t.Errorf("stroke = %+v", st)
	}

	ext := r.TextExtents("abc")
	if ext.Width != 30 || ext.YBearing != -20 || ext.Height != 20 {
		t.Errorf("extents = %+v", ext)
	}
}
