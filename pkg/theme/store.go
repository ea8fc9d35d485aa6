package theme

import (
	"encoding/binary"
	"math/rand/v2"

	"golang.org/x/exp/mmap"

	"github.com/matzehuels/topo/pkg/errors"
)

const (
	// PaletteSize is the number of colors in a theme.
	PaletteSize = 5
	// RecordSize is the byte length of one theme record.
	RecordSize = PaletteSize * 4
)

// Store is a read-only, memory-mapped theme file.
type Store struct {
	path string
	r    *mmap.ReaderAt
}

// Open maps the theme file at path. The caller must Close the store.
func Open(path string) (*Store, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open theme file %s", path)
	}
	if n := r.Len(); n%RecordSize != 0 {
		r.Close()
		return nil, errors.New(errors.ErrCodeFormat,
			"theme file %s: size %d is not a multiple of %d", path, n, RecordSize)
	}
	return &Store{path: path, r: r}, nil
}

// Path returns the file the store was opened from.
func (s *Store) Path() string { return s.path }

// Len returns the number of themes in the store.
func (s *Store) Len() int {
	return s.r.Len() / RecordSize
}

// Get returns the palette at index i.
func (s *Store) Get(i int) (Palette, error) {
	if i < 0 || i >= s.Len() {
		return Palette{}, errors.New(errors.ErrCodeRange,
			"theme index %d out of range [0, %d) in %s", i, s.Len(), s.path)
	}
	var rec [RecordSize]byte
	if _, err := s.r.ReadAt(rec[:], int64(i)*RecordSize); err != nil {
		return Palette{}, errors.Wrap(errors.ErrCodeIO, err, "read theme %d from %s", i, s.path)
	}
	return decodeRecord(rec), nil
}

// Pick draws a uniform index with rng.IntN and returns it with its palette.
// It consumes exactly one IntN draw.
func (s *Store) Pick(rng *rand.Rand) (int, Palette, error) {
	n := s.Len()
	if n == 0 {
		return 0, Palette{}, errors.New(errors.ErrCodeFormat, "theme file %s contains no themes", s.path)
	}
	i := rng.IntN(n)
	p, err := s.Get(i)
	return i, p, err
}

// Close unmaps the file.
func (s *Store) Close() error {
	return s.r.Close()
}

func decodeRecord(rec [RecordSize]byte) Palette {
	var p Palette
	for i := range p {
		p[i] = FromWord(binary.BigEndian.Uint32(rec[i*4:]))
	}
	return p
}
