package geo_test

import (
	"fmt"

	"github.com/matzehuels/topo/pkg/geo"
	"github.com/matzehuels/topo/pkg/geom"
)

func ExampleLatLng_DMS() {
	fmt.Println(geo.LatLng{Lat: 46.5, Lng: 7.25}.DMS())
	// Output: 46°30′00″N 007°15′00″E
}

func ExampleLerp() {
	widths := geom.Range{Start: 2, End: 4}
	scales := geom.Range{Start: 1, End: 8}
	fmt.Println(geo.Lerp(widths, geo.InvLerp(scales, 4.5)))
	// Output: 3
}
