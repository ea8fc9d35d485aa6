// Package geo maps crop offsets onto geographic coordinates and formats them
// as degrees, minutes and seconds.
package geo

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/matzehuels/topo/pkg/errors"
	"github.com/matzehuels/topo/pkg/geom"
)

// Lerp returns r.Start·(1−v) + r.End·v. v is not clamped.
func Lerp(r geom.Range, v float64) float64 {
	return float64(r.Start*(1-v)) + float64(r.End*v)
}

// InvLerp returns the position of v within r, the inverse of Lerp. r must not
// be degenerate.
func InvLerp(r geom.Range, v float64) float64 {
	return (v - r.Start) / (r.End - r.Start)
}

// LatLng is a geographic coordinate in signed decimal degrees.
type LatLng struct {
	Lat, Lng float64
}

// DMS formats l as "DD°MM′SS″H DDD°MM′SS″H" with seconds rounded to the
// nearest integer.
func (l LatLng) DMS() string {
	latD, latM, latS := toDMS(l.Lat)
	lngD, lngM, lngS := toDMS(l.Lng)
	return fmt.Sprintf("%02d°%02d′%02d″%c %03d°%02d′%02d″%c",
		latD, latM, latS, hemisphere(l.Lat, 'N', 'S'),
		lngD, lngM, lngS, hemisphere(l.Lng, 'E', 'W'))
}

// String implements fmt.Stringer.
func (l LatLng) String() string {
	return l.DMS()
}

func hemisphere(v float64, pos, neg rune) rune {
	if v < 0 {
		return neg
	}
	return pos
}

func toDMS(v float64) (d, m, s int) {
	v = math.Abs(v)
	d = int(v)
	v -= float64(d)
	m = int(v * 60)
	v -= float64(m) / 60
	s = int(math.Round(v * 3600))
	if s == 60 {
		s = 0
		m++
	}
	if m == 60 {
		m = 0
		d++
	}
	return d, m, s
}

var dmsPattern = regexp.MustCompile(
	`^(\d+)°(\d+)[′'](\d+)[″"]([NS])\s+(\d+)°(\d+)[′'](\d+)[″"]([EW])$`)

// ParseLatLng parses the DMS form produced by LatLng.DMS, or a decimal
// "lat,lng" pair.
func ParseLatLng(s string) (LatLng, error) {
	s = strings.TrimSpace(s)
	if m := dmsPattern.FindStringSubmatch(s); m != nil {
		lat, err := fromDMS(m[1], m[2], m[3], m[4] == "S", 90)
		if err != nil {
			return LatLng{}, errors.Wrap(errors.ErrCodeParse, err, "invalid latitude in %q", s)
		}
		lng, err := fromDMS(m[5], m[6], m[7], m[8] == "W", 180)
		if err != nil {
			return LatLng{}, errors.Wrap(errors.ErrCodeParse, err, "invalid longitude in %q", s)
		}
		return LatLng{Lat: lat, Lng: lng}, nil
	}

	latS, lngS, ok := strings.Cut(s, ",")
	if !ok {
		return LatLng{}, errors.New(errors.ErrCodeParse, "invalid coordinate: %q", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latS), 64)
	if err != nil {
		return LatLng{}, errors.Wrap(errors.ErrCodeParse, err, "invalid latitude in %q", s)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(lngS), 64)
	if err != nil {
		return LatLng{}, errors.Wrap(errors.ErrCodeParse, err, "invalid longitude in %q", s)
	}
	if math.Abs(lat) > 90 || math.Abs(lng) > 180 {
		return LatLng{}, errors.New(errors.ErrCodeParse, "coordinate out of range: %q", s)
	}
	return LatLng{Lat: lat, Lng: lng}, nil
}

func fromDMS(ds, ms, ss string, neg bool, limit int) (float64, error) {
	d, err := strconv.Atoi(ds)
	if err != nil {
		return 0, err
	}
	m, err := strconv.Atoi(ms)
	if err != nil {
		return 0, err
	}
	s, err := strconv.Atoi(ss)
	if err != nil {
		return 0, err
	}
	if m >= 60 || s >= 60 || d > limit {
		return 0, fmt.Errorf("%d°%d′%d″ out of range", d, m, s)
	}
	v := float64(d) + float64(m)/60 + float64(s)/3600
	if neg {
		v = -v
	}
	return v, nil
}

// Set implements pflag.Value.
func (l *LatLng) Set(v string) error {
	parsed, err := ParseLatLng(v)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Type implements pflag.Value.
func (l *LatLng) Type() string { return "latlng" }

// MarshalText implements encoding.TextMarshaler using the DMS form.
func (l LatLng) MarshalText() ([]byte, error) {
	return []byte(l.DMS()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *LatLng) UnmarshalText(b []byte) error {
	return l.Set(string(b))
}

// Rect is a geographic bounding box given by its northwest and southeast
// corners.
type Rect struct {
	NW LatLng `json:"nw"`
	SE LatLng `json:"se"`
}

// String implements fmt.Stringer.
func (r Rect) String() string {
	return "(" + r.NW.DMS() + ")-(" + r.SE.DMS() + ")"
}

// At returns the coordinate shown for a crop whose top-left corner sits at
// fraction (fx, fy) of the dataset canvas. Latitude runs south to north
// while canvas y grows downward.
func (r Rect) At(fx, fy float64) LatLng {
	return LatLng{
		Lat: Lerp(geom.Range{Start: r.SE.Lat, End: r.NW.Lat}, fy),
		Lng: Lerp(geom.Range{Start: r.NW.Lng, End: r.SE.Lng}, fx),
	}
}
