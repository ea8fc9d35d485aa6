package render

import (
	"image/color"

	"github.com/matzehuels/topo/pkg/geom"
)

// Kind identifies a recorded command.
type Kind string

const (
	KindFillRect Kind = "fill_rect"
	KindStroke   Kind = "stroke"
	KindFillText Kind = "fill_text"
)

// Command is one recorded drawing operation. Path building is folded into
// the Stroke command that consumes it.
type Command struct {
	Kind  Kind        `json:"kind"`
	Rect  geom.Rect   `json:"rect,omitzero"`
	Paths []geom.Path `json:"paths,omitempty"`
	Width float64     `json:"width,omitempty"`
	At    geom.Point  `json:"at,omitzero"`
	Text  string      `json:"text,omitempty"`
	Color color.Color `json:"color"`
}

// Measurer computes text extents for a Recorder.
type Measurer func(s string) TextExtents

// Recorder is a Surface that records commands instead of drawing them.
type Recorder struct {
	PathBuilder
	Commands []Command
	measure  Measurer
}

// NewRecorder returns a Recorder measuring text with m. If m is nil, every
// glyph is treated as a 10x20 box sitting on the baseline.
func NewRecorder(m Measurer) *Recorder {
	if m == nil {
		m = boxMeasurer
	}
	return &Recorder{measure: m}
}

func boxMeasurer(s string) TextExtents {
	w := 10 * float64(len([]rune(s)))
	return TextExtents{YBearing: -20, Width: w, Height: 20, XAdvance: w}
}

func (r *Recorder) FillRect(rect geom.Rect, c color.Color) {
	r.Commands = append(r.Commands, Command{Kind: KindFillRect, Rect: rect, Color: c})
}

func (r *Recorder) Stroke(width float64, c color.Color) {
	r.Commands = append(r.Commands, Command{Kind: KindStroke, Paths: r.Take(), Width: width, Color: c})
}

func (r *Recorder) TextExtents(s string) TextExtents {
	return r.measure(s)
}

func (r *Recorder) FillText(at geom.Point, s string, c color.Color) {
	r.Commands = append(r.Commands, Command{Kind: KindFillText, At: at, Text: s, Color: c})
}

// Count returns the number of recorded commands of kind k.
func (r *Recorder) Count(k Kind) int {
	n := 0
	for _, c := range r.Commands {
		if c.Kind == k {
			n++
		}
	}
	return n
}
