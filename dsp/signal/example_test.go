package signal_test

import (
	"fmt"

	"github.com/cwbudde/algo-smooth/dsp/core"
	"github.com/cwbudde/algo-smooth/dsp/geom"
	"github.com/cwbudde/algo-smooth/dsp/signal"
)

func ExampleGenerator_Circle() {
	g := signal.NewGenerator(core.WithFrameRate(4))
	pts, err := g.Circle(geom.Pt(0, 0), 10, 1, 4)
	if err != nil {
		panic(err)
	}
	for _, p := range pts {
		fmt.Println(p.Pair())
	}

	// Output:
	// [10 0]
	// [0 10]
	// [-10 0]
	// [0 -10]
}

func ExampleDrift() {
	d := signal.NewDrift()
	d.SetEnabled(true)
	d.SetSpeed(30)

	for i := 0; i < 30; i++ {
		d.Advance(1.0 / 60)
	}
	off, _ := d.Offset().Get()
	fmt.Printf("%.1f %.1f\n", off.X, off.Y)

	// Output:
	// 15.0 0.0
}
