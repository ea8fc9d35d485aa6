package dataset

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/topo/pkg/errors"
)

// WriteJSON encodes d as indented JSON and writes it to w. The output can be
// read back with [ReadJSON].
func WriteJSON(d *Dataset, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "encode dataset")
	}
	return nil
}

// ExportJSON writes d to a JSON file at path.
func ExportJSON(d *Dataset, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
	}
	if err := WriteJSON(d, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "close %s", path)
	}
	return nil
}
