package fonts

import (
	"encoding/base64"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestNewFace(t *testing.T) {
	face, err := NewFace(DefaultSize)
	if err != nil {
		t.Fatal(err)
	}
	defer face.Close()

	m := face.Metrics()
	if m.Ascent <= 0 || m.Height <= 0 {
		t.Errorf("metrics = %+v", m)
	}
}

func TestMeasure(t *testing.T) {
	face, err := NewFace(DefaultSize)
	if err != nil {
		t.Fatal(err)
	}
	defer face.Close()

	ext := Measure(face, "35°38′47″N 080°03′00″W")
	if ext.Width <= 0 || ext.Height <= 0 {
		t.Fatalf("extents = %+v", ext)
	}
	if ext.YBearing >= 0 {
		t.Errorf("YBearing = %v, want negative (ink above baseline)", ext.YBearing)
	}
	if ext.Height > 2*DefaultSize {
		t.Errorf("Height = %v is implausible for %vpt", ext.Height, DefaultSize)
	}

	short := Measure(face, "00")
	if short.Width >= ext.Width {
		t.Errorf("short label width %v >= long label width %v", short.Width, ext.Width)
	}

	empty := Measure(face, "")
	if empty.Width != 0 || empty.XAdvance != 0 {
		t.Errorf("empty extents = %+v", empty)
	}
}

func TestRegularTTFBase64(t *testing.T) {
	s := RegularTTFBase64()
	if s != RegularTTFBase64() {
		t.Error("base64 should be cached")
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != len(goregular.TTF) {
		t.Errorf("decoded %d bytes, want %d", len(b), len(goregular.TTF))
	}
}
