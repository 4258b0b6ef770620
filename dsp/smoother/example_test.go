package smoother_test

import (
	"fmt"

	"github.com/cwbudde/algo-smooth/dsp/core"
	"github.com/cwbudde/algo-smooth/dsp/geom"
	"github.com/cwbudde/algo-smooth/dsp/smoother"
)

func ExampleSmoother_AddSample() {
	s, err := smoother.New(smoother.Config{
		Capacity:   3,
		WindowSize: 2,
		Alpha:      0.5,
		MinWindow:  1,
		MinAlpha:   0.01,
		MaxAlpha:   1,
	})
	if err != nil {
		panic(err)
	}

	for _, x := range []float64{0, 10, 20, 30} {
		out := s.AddSample(x, 0, true, core.None[geom.Point]())
		ma, _ := out.MovingAverage.Get()
		fmt.Printf("raw=%.0f ma=%.1f exp=%.2f\n", out.Raw.X, ma.X, out.Exponential.X)
	}

	out := s.AddSample(10, 10, true, core.Some(geom.Pt(2, 3)))
	d, _ := out.DriftCorrected.Get()
	fmt.Printf("drift=(%.0f,%.0f) traced=%d\n", d.X, d.Y, s.RawTrace().Len())

	// Output:
	// raw=0 ma=0.0 exp=0.00
	// raw=10 ma=5.0 exp=5.00
	// raw=20 ma=15.0 exp=12.50
	// raw=30 ma=25.0 exp=21.25
	// drift=(8,7) traced=3
}

func ExampleSmoother_ChangeWindow() {
	s, err := smoother.New(smoother.DefaultConfig())
	if err != nil {
		panic(err)
	}

	s.ChangeWindow(-100)
	s.ChangeAlpha(10)
	fmt.Println(s.WindowSize(), s.Alpha())

	s.Reset()
	fmt.Println(s.WindowSize(), s.Alpha())

	// Output:
	// 1 1
	// 10 0.2
}
