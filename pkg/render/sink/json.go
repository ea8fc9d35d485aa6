package sink

import (
	"encoding/json"

	"github.com/matzehuels/topo/pkg/errors"
	"github.com/matzehuels/topo/pkg/geom"
	"github.com/matzehuels/topo/pkg/postcard"
	"github.com/matzehuels/topo/pkg/render"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	size geom.Size
	rec  *render.Recorder
}

// WithJSONSize records the canvas size.
func WithJSONSize(s geom.Size) JSONOption { return func(r *jsonRenderer) { r.size = s } }

// WithJSONRecorder adds stroke statistics and the label box from a recorded
// render of the plan.
func WithJSONRecorder(rec *render.Recorder) JSONOption {
	return func(r *jsonRenderer) { r.rec = rec }
}

type jsonOutput struct {
	postcard.Plan
	Width    float64 `json:"width,omitempty"`
	Height   float64 `json:"height,omitempty"`
	Paths    int     `json:"paths,omitempty"`
	Segments int        `json:"segments,omitempty"`
	LabelBox *geom.Rect `json:"label_box,omitempty"`
	Summary  string     `json:"summary"`
}

// RenderJSON encodes a render plan. The plan alone is enough to reproduce
// the render given the same dataset and theme file.
func RenderJSON(p postcard.Plan, opts ...JSONOption) ([]byte, error) {
	var r jsonRenderer
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Plan:    p,
		Width:   r.size.W,
		Height:  r.size.H,
		Summary: p.Summary(),
	}
	if r.rec != nil {
		fills := 0
		for _, c := range r.rec.Commands {
			switch c.Kind {
			case render.KindStroke:
				out.Paths += len(c.Paths)
				for _, sp := range c.Paths {
					out.Segments += len(sp)
				}
			case render.KindFillRect:
				// The first fill is the background.
				if fills++; fills == 2 {
					box := c.Rect
					out.LabelBox = &box
				}
			}
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode plan")
	}
	return append(data, '\n'), nil
}
