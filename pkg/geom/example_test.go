package geom_test

import (
	"fmt"

	"github.com/matzehuels/topo/pkg/geom"
)

func ExampleParsePath() {
	p, err := geom.ParsePath("M 0 0 L 10 5 L 10 5.00001")
	if err != nil {
		panic(err)
	}
	scaled := p.Dedupe(0.0001).Transform(func(q geom.Point) geom.Point {
		return geom.Pt(q.X*2, q.Y*2)
	})
	fmt.Println(scaled)
	// Output: M 0 0 L 20 10
}

func ExampleParseRange() {
	r, err := geom.ParseRange("-2-2.5")
	if err != nil {
		panic(err)
	}
	fmt.Println(r.Start, r.End, r.Len())
	// Output: -2 2.5 4.5
}
