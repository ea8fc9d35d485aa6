package cache

import "github.com/matzehuels/topo/pkg/seed"

// Keyer builds cache keys.
type Keyer interface {
	// DatasetKey identifies a dataset extracted from a source chart.
	DatasetKey(sourceHash string, opts DatasetKeyOpts) string

	// ArtifactKey identifies one rendered output of a dataset.
	ArtifactKey(datasetHash string, opts ArtifactKeyOpts) string
}

// DatasetKeyOpts lists every extraction option that changes a dataset.
type DatasetKeyOpts struct {
	Stroke      string  `json:"stroke"`
	Fill        string  `json:"fill"`
	StrokeWidth string  `json:"stroke_width"`
	Region      string  `json:"region"`
	Epsilon     float64 `json:"epsilon"`
}

// ArtifactKeyOpts lists every option that changes a rendered artifact.
type ArtifactKeyOpts struct {
	Format         string    `json:"format"`
	Seed           seed.Seed `json:"seed"`
	Width          float64   `json:"width"`
	Height         float64   `json:"height"`
	ScaleRange     string    `json:"scale_range"`
	LineWidthRange string    `json:"line_width_range"`
	Theme          string    `json:"theme"`
	ThemeHash      string    `json:"theme_hash"`
	HideLocation   bool      `json:"hide_location,omitempty"`
	FontSize       float64   `json:"font_size,omitempty"`
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// DatasetKey returns "dataset:<sha256(sourceHash, opts)>".
func (DefaultKeyer) DatasetKey(sourceHash string, opts DatasetKeyOpts) string {
	return hashKey("dataset", sourceHash, opts)
}

// ArtifactKey returns "artifact:<sha256(datasetHash, opts)>".
func (DefaultKeyer) ArtifactKey(datasetHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", datasetHash, opts)
}

var _ Keyer = DefaultKeyer{}
