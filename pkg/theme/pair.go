package theme

import (
	"math/rand/v2"

	"github.com/matzehuels/topo/pkg/seed"
)

// Extremes returns the indices of the darkest and the brightest color in p.
// Ties go to the lowest index.
func Extremes(p Palette) (lo, hi int) {
	for i, c := range p {
		l := c.Luminance()
		if l < p[lo].Luminance() {
			lo = i
		}
		if l > p[hi].Luminance() {
			hi = i
		}
	}
	return lo, hi
}

// SelectPair returns the (background, foreground) colors for p: its
// luminance extremes, ordered by one coin flip. On heads the darkest color
// becomes the background.
func SelectPair(rng *rand.Rand, p Palette) (bg, fg Color) {
	lo, hi := Extremes(p)
	if seed.Coin(rng) {
		return p[lo], p[hi]
	}
	return p[hi], p[lo]
}
