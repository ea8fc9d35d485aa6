// Package theme reads five-color palettes from a flat binary theme file and
// picks the background/foreground pair a postcard is drawn with.
//
// # File format
//
// A theme file is a headerless array of 20-byte records. Each record holds
// five colors as big-endian 32-bit words laid out 0xRRGGBB??, where the low
// byte is padding. The file size must be a multiple of 20.
//
// # Usage
//
//	ref, _ := theme.ParseRef("themes.bin:12")
//	idx, palette, err := ref.Pick(rng) // fixed index, no draw consumed
//	bg, fg := theme.SelectPair(rng, palette)
//
// A [Store] memory-maps the file and is meant to be opened, queried and
// closed within a single render.
package theme
